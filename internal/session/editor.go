package session

import (
	"sync"

	"contractpad/internal/content"
)

// Editor is the live editing surface the session mediates for. The CLI and
// the tests use the in-memory Buffer; a real rich-text surface would satisfy
// the same interface.
type Editor interface {
	// Snapshot returns the surface's current content.
	Snapshot() content.Node

	// SetContent replaces the surface's content.
	SetContent(n content.Node)
}

// Buffer is a minimal in-memory editor.
type Buffer struct {
	mu  sync.Mutex
	doc content.Node
}

func NewBuffer() *Buffer {
	return &Buffer{doc: content.Node{Type: content.TypeDoc}}
}

func (b *Buffer) Snapshot() content.Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	return content.Clone(b.doc)
}

func (b *Buffer) SetContent(n content.Node) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.doc = content.Clone(n)
}
