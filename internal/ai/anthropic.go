package ai

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"contractpad/internal/logging"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-sonnet-4-20250514"

// AnthropicService implements Service on the Anthropic Messages API.
type AnthropicService struct {
	client anthropic.Client
	model  anthropic.Model
	log    logging.Logger
}

// NewAnthropicService builds a Service using the given API key and model id.
func NewAnthropicService(apiKey, model string, log logging.Logger) *AnthropicService {
	if model == "" {
		model = DefaultModel
	}
	return &AnthropicService{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropic.Model(model),
		log:    log.With("component", "ai"),
	}
}

func (s *AnthropicService) complete(ctx context.Context, system, user string, maxTokens int64, temperature float64) (string, error) {
	msg, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       s.model,
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(temperature),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String(), nil
}

// GenerateContract implements Service.
func (s *AnthropicService) GenerateContract(ctx context.Context, p Prompt) Response {
	out, err := s.complete(ctx, generateSystemPrompt(p.Type), buildGeneratePrompt(p), 4096, 0.7)
	if err != nil {
		s.log.Error(ctx, "contract generation failed", "error", err)
		return Response{Err: "Erro ao gerar contrato. Tente novamente."}
	}
	return Response{Content: formatContent(out), Success: true}
}

// ImproveClause implements Service. On failure the original clause comes
// back as the content, so callers can fall through to it.
func (s *AnthropicService) ImproveClause(ctx context.Context, clause, docContext string) Response {
	out, err := s.complete(ctx, improveSystemPrompt, buildImprovePrompt(clause, docContext), 1024, 0.5)
	if err != nil {
		s.log.Error(ctx, "clause improvement failed", "error", err)
		return Response{Content: clause, Err: "Erro ao melhorar cláusula."}
	}
	return Response{Content: out, Success: true}
}

// AnalyzeContract implements Service.
func (s *AnthropicService) AnalyzeContract(ctx context.Context, text string) Response {
	out, err := s.complete(ctx, analyzeSystemPrompt, buildAnalyzePrompt(text), 2048, 0.3)
	if err != nil {
		s.log.Error(ctx, "contract analysis failed", "error", err)
		return Response{Err: "Erro ao analisar contrato."}
	}
	return Response{Content: out, Success: true}
}
