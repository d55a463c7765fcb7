package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HeadingAndEmptyParagraph(t *testing.T) {
	doc := Default("Contrato de Locação")

	require.Equal(t, TypeDoc, doc.Type)
	require.Len(t, doc.Content, 2)

	h := doc.Content[0]
	assert.Equal(t, TypeHeading, h.Type)
	require.NotNil(t, h.Attrs)
	assert.Equal(t, 1, h.Attrs.Level)
	assert.Equal(t, "Contrato de Locação", PlainText(h))

	p := doc.Content[1]
	assert.Equal(t, TypeParagraph, p.Type)
	assert.Equal(t, "", PlainText(p))
}

func TestDefault_EmptyTitleFallsBack(t *testing.T) {
	doc := Default("")
	assert.Equal(t, "CONTRATO", PlainText(doc.Content[0]))
}

func TestFromText_LineClassification(t *testing.T) {
	text := "CONTRATO DE PRESTAÇÃO DE SERVIÇOS\n" +
		"\n" +
		"CLÁUSULA PRIMEIRA - DO OBJETO\n" +
		"O presente contrato tem por objeto a prestação de serviços.\n" +
		"DISPOSIÇÕES GERAIS\n"

	doc := FromText(text)
	require.Equal(t, TypeDoc, doc.Type)
	require.Len(t, doc.Content, 4)

	assert.Equal(t, TypeHeading, doc.Content[0].Type)
	assert.Equal(t, 1, doc.Content[0].Attrs.Level)
	assert.Equal(t, TypeHeading, doc.Content[1].Type)
	assert.Equal(t, 2, doc.Content[1].Attrs.Level)
	assert.Equal(t, TypeParagraph, doc.Content[2].Type)
	assert.Equal(t, TypeHeading, doc.Content[3].Type)
	assert.Equal(t, 2, doc.Content[3].Attrs.Level)
}

func TestFromText_CaseInsensitive(t *testing.T) {
	doc := FromText("cláusula segunda")
	require.Len(t, doc.Content, 1)
	assert.Equal(t, TypeHeading, doc.Content[0].Type)
}

func TestFromText_NoMatchKeepsWholeText(t *testing.T) {
	doc := FromText("   ")
	require.Len(t, doc.Content, 1)
	assert.Equal(t, TypeParagraph, doc.Content[0].Type)
}

func TestPlainText_JoinsBlocks(t *testing.T) {
	doc := FromText("CONTRATO\nprimeira linha\nsegunda linha")
	assert.Equal(t, "CONTRATO\nprimeira linha\nsegunda linha", PlainText(doc))
}

func TestClone_DoesNotAlias(t *testing.T) {
	doc := Default("Original")
	cp := Clone(doc)

	cp.Content[0].Content[0].Text = "Changed"
	cp.Content[0].Attrs.Level = 3

	assert.Equal(t, "Original", doc.Content[0].Content[0].Text)
	assert.Equal(t, 1, doc.Content[0].Attrs.Level)
}

func TestTitleFromPrompt(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"empty", "", DefaultTitle},
		{"short", "contrato de aluguel", "contrato de aluguel"},
		{"exactly eight", "um dois três quatro cinco seis sete oito", "um dois três quatro cinco seis sete oito"},
		{"truncated", "um dois três quatro cinco seis sete oito nove", "um dois três quatro cinco seis sete oito..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleFromPrompt(tt.prompt))
		})
	}
}

func TestNode_JSONRoundTrip(t *testing.T) {
	doc := FromText("CONTRATO\ncorpo do contrato")

	b, err := json.Marshal(doc)
	require.NoError(t, err)

	var back Node
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, doc, back)
}
