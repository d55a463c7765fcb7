package ai

import (
	"fmt"
	"strings"
)

const generateBasePrompt = `Você é um especialista em contratos jurídicos brasileiros. Gere um contrato completo e profissional seguindo as normas do direito brasileiro.

Estruture o contrato com:
1. TÍTULO do contrato
2. PARTES envolvidas (qualificação completa)
3. CLÁUSULAS numeradas e organizadas
4. DISPOSIÇÕES GERAIS
5. FORO e legislação aplicável
6. Local e data
7. ASSINATURAS

Use linguagem jurídica apropriada, seja claro e completo. Inclua cláusulas essenciais para o tipo de contrato solicitado.`

const improveSystemPrompt = `Você é um especialista em contratos jurídicos. Melhore a cláusula fornecida tornando-a mais clara, completa e juridicamente robusta. Mantenha o mesmo sentido, mas aprimore a redação.`

const analyzeSystemPrompt = `Você é um especialista em análise de contratos jurídicos. Analise o contrato fornecido e identifique:
1. Cláusulas faltantes importantes
2. Pontos de risco ou ambiguidade
3. Sugestões de melhoria
4. Conformidade legal básica

Forneça uma análise clara e objetiva.`

var typeFocus = map[ContractType]string{
	ContractTypeCompraVenda:       "Foque em: objeto da venda, preço, forma de pagamento, entrega, garantias, vícios ocultos.",
	ContractTypeLocacao:           "Foque em: imóvel, prazo, aluguel, reajustes, benfeitorias, rescisão, fiador/seguro.",
	ContractTypePrestacaoServicos: "Foque em: serviços, prazo, remuneração, responsabilidades, entrega, confidencialidade.",
	ContractTypeSociedade:         "Foque em: capital social, quotas, administração, distribuição lucros, retirada sócios.",
	ContractTypeTrabalho:          "Foque em: função, salário, jornada, benefícios, confidencialidade, rescisão.",
	ContractTypeGeral:             "Adapte conforme o tipo de contrato solicitado.",
}

func generateSystemPrompt(t ContractType) string {
	focus, ok := typeFocus[t]
	if !ok {
		focus = typeFocus[ContractTypeGeral]
	}
	return generateBasePrompt + "\n\n" + focus
}

func buildGeneratePrompt(p Prompt) string {
	return fmt.Sprintf(`Gere um contrato com as seguintes especificações:

Descrição: %s

Partes envolvidas: %s

Tipo de contrato: %s

Gere um contrato completo, profissional e juridicamente sólido.`,
		p.Description,
		strings.Join(p.Parties, " e "),
		strings.ReplaceAll(string(p.Type), "_", " "))
}

func buildImprovePrompt(clause, docContext string) string {
	return fmt.Sprintf("Contexto do contrato: %s\n\nCláusula a melhorar: %s", docContext, clause)
}

func buildAnalyzePrompt(text string) string {
	return fmt.Sprintf("Analise este contrato:\n\n%s", text)
}

var blankLines = strings.NewReplacer("\n\n", "\n")

// formatContent normalizes generated text for the editor: collapses blank
// lines and strips leading indentation.
func formatContent(s string) string {
	s = blankLines.Replace(s)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
