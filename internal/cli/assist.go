package cli

import (
	"context"
	"os"
	"strings"

	"contractpad/internal/ai"
)

// Generate asks the AI collaborator for a full contract and creates a new
// document from the result.
func (a *App) Generate(ctx context.Context) error {
	description, err := GetMultiline(a.reader, "Describe the contract", os.Stdout)
	if err != nil {
		return err
	}
	partiesRaw, err := GetSimpleText(a.reader, "Parties (comma separated)", os.Stdout)
	if err != nil {
		return err
	}
	ctype, err := GetSimpleText(a.reader, "Type (compra_venda, locacao, prestacao_servicos, sociedade, trabalho, geral)", os.Stdout)
	if err != nil {
		return err
	}

	var parties []string
	for _, p := range strings.Split(partiesRaw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parties = append(parties, p)
		}
	}

	printlnFn("Generating...")
	doc, err := a.session.GenerateFromPrompt(ctx, ai.Prompt{
		Description: description,
		Parties:     parties,
		Type:        ai.ContractType(ctype),
	})
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	printlnFn("Generated", doc.Title, "("+doc.ID+")")
	return nil
}

// Improve rewrites a clause through the AI collaborator and prints the result.
func (a *App) Improve(ctx context.Context) error {
	clause, err := GetMultiline(a.reader, "Clause to improve", os.Stdout)
	if err != nil {
		return err
	}

	printlnFn(a.session.ImproveText(ctx, clause))
	return nil
}

// Analyze runs the AI analysis over the current contract.
func (a *App) Analyze(ctx context.Context) error {
	printlnFn(a.session.AnalyzeContract(ctx))
	return nil
}
