// Package ai is the text-generation collaborator: contract generation,
// clause improvement and contract analysis. All operations are fallible
// network calls that report failure through the Response value — they never
// return an error to the caller.
package ai

import "context"

// ContractType selects the prompt profile used for generation.
type ContractType string

const (
	ContractTypeCompraVenda       ContractType = "compra_venda"
	ContractTypeLocacao           ContractType = "locacao"
	ContractTypePrestacaoServicos ContractType = "prestacao_servicos"
	ContractTypeSociedade         ContractType = "sociedade"
	ContractTypeTrabalho          ContractType = "trabalho"
	ContractTypeGeral             ContractType = "geral"
)

// Prompt describes a contract-generation request.
type Prompt struct {
	Description string
	Parties     []string
	Type        ContractType
}

// Response is the outcome of one collaborator call. On failure Success is
// false, Err carries a user-facing message and Content holds the fallback
// (the original input for improvements, empty otherwise).
type Response struct {
	Content string
	Success bool
	Err     string
}

// Service is consumed by the document session.
type Service interface {
	GenerateContract(ctx context.Context, p Prompt) Response
	ImproveClause(ctx context.Context, clause, docContext string) Response
	AnalyzeContract(ctx context.Context, text string) Response
}
