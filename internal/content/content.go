// Package content models the structured document snapshot: a tree of typed
// nodes (doc -> heading/paragraph -> text). The tree is persisted as an opaque
// JSON blob by both the local and the remote store; only the editing layer
// interprets it.
package content

import (
	"regexp"
	"strings"
)

// Node types used in snapshots.
const (
	TypeDoc       = "doc"
	TypeHeading   = "heading"
	TypeParagraph = "paragraph"
	TypeText      = "text"
)

// Attrs carries node attributes. Currently only heading levels.
type Attrs struct {
	Level int `json:"level,omitempty"`
}

// Node is one node of a document snapshot tree.
type Node struct {
	Type    string `json:"type"`
	Attrs   *Attrs `json:"attrs,omitempty"`
	Text    string `json:"text,omitempty"`
	Content []Node `json:"content,omitempty"`
}

func text(s string) Node {
	return Node{Type: TypeText, Text: s}
}

func heading(level int, s string) Node {
	return Node{Type: TypeHeading, Attrs: &Attrs{Level: level}, Content: []Node{text(s)}}
}

func paragraph(s string) Node {
	return Node{Type: TypeParagraph, Content: []Node{text(s)}}
}

// DefaultTitle is used when a document is created without a title.
const DefaultTitle = "Novo Contrato"

// Default builds the initial snapshot for a fresh document: a level-1 heading
// with the title followed by one empty paragraph.
func Default(title string) Node {
	if title == "" {
		title = "CONTRATO"
	}
	return Node{Type: TypeDoc, Content: []Node{
		heading(1, title),
		paragraph(""),
	}}
}

var (
	titleLine  = regexp.MustCompile(`(?i)^(CONTRATO|TÍTULO)`)
	clauseLine = regexp.MustCompile(`(?i)^(CLÁUSULA|PARTE|DISPOSIÇÕES)`)
)

// FromText converts generated plain text into a snapshot using a line
// classification heuristic: title-like lines become level-1 headings,
// clause-like lines become level-2 headings, every other non-blank line
// becomes a paragraph. If nothing classifies, the whole text is kept as a
// single paragraph.
func FromText(s string) Node {
	var blocks []Node
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case titleLine.MatchString(line):
			blocks = append(blocks, heading(1, line))
		case clauseLine.MatchString(line):
			blocks = append(blocks, heading(2, line))
		default:
			blocks = append(blocks, paragraph(line))
		}
	}
	if len(blocks) == 0 {
		blocks = []Node{paragraph(s)}
	}
	return Node{Type: TypeDoc, Content: blocks}
}

// PlainText extracts the concatenated text of a snapshot, one line per
// top-level block.
func PlainText(n Node) string {
	if n.Type == TypeDoc {
		lines := make([]string, 0, len(n.Content))
		for _, child := range n.Content {
			lines = append(lines, PlainText(child))
		}
		return strings.Join(lines, "\n")
	}

	var b strings.Builder
	var walk func(Node)
	walk = func(n Node) {
		if n.Type == TypeText {
			b.WriteString(n.Text)
		}
		for _, child := range n.Content {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}

// Clone returns a deep copy of the snapshot. Version snapshots must never
// alias the live document tree.
func Clone(n Node) Node {
	out := n
	if n.Attrs != nil {
		attrs := *n.Attrs
		out.Attrs = &attrs
	}
	if n.Content != nil {
		out.Content = make([]Node, len(n.Content))
		for i, child := range n.Content {
			out.Content[i] = Clone(child)
		}
	}
	return out
}

// TitleFromPrompt derives a document title from a generation prompt: the
// first 8 words, with an ellipsis when the prompt was truncated.
func TitleFromPrompt(description string) string {
	words := strings.Fields(strings.TrimSpace(description))
	if len(words) == 0 {
		return DefaultTitle
	}
	if len(words) <= 8 {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:8], " ") + "..."
}
