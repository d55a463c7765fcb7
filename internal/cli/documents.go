package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"contractpad/internal/content"
)

// New creates a document and makes it current.
func (a *App) New(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Document title", os.Stdout)
	if err != nil {
		return err
	}

	doc, err := a.session.CreateDocument(ctx, title, nil)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	printlnFn("Created", doc.ID)
	return nil
}

// Open loads a document by id and makes it current.
func (a *App) Open(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Document id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.LoadDocument(ctx, id); err != nil {
		printlnFn("Error:", err)
		return err
	}
	if cur := a.session.Current(); cur != nil && cur.ID == id {
		printlnFn("Opened", cur.Title)
	} else {
		printlnFn("Document not found:", id)
	}
	return nil
}

// List prints the user's documents, most recently updated first.
func (a *App) List(ctx context.Context) error {
	uid, ok := a.auth.CurrentUserID()
	if !ok {
		printlnFn("Not logged in")
		return nil
	}

	docs, err := a.store.ListDocumentsForUser(ctx, uid)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	for _, d := range docs {
		mark := " "
		if d.Synced {
			mark = "*"
		}
		printlnFn(fmt.Sprintf("%s %s  v%d  %s  %s", mark, d.ID, d.VersionNumber, d.UpdatedAt.Format(time.RFC3339), d.Title))
	}
	return nil
}

// Edit replaces the buffer content with freshly entered text and arms the
// debounced auto-save.
func (a *App) Edit(ctx context.Context) error {
	text, err := GetMultiline(a.reader, "Enter document text", os.Stdout)
	if err != nil {
		return err
	}

	a.editor.SetContent(content.FromText(text))
	a.session.OnEdit()
	printlnFn("Buffer updated, auto-save pending")
	return nil
}

// Show prints the buffer content as plain text.
func (a *App) Show(ctx context.Context) error {
	printlnFn(content.PlainText(a.editor.Snapshot()))
	return nil
}

// Save persists the current document immediately.
func (a *App) Save(ctx context.Context) error {
	if err := a.session.SaveDocument(ctx); err != nil {
		printlnFn("Error:", err)
		return err
	}
	if t, ok := a.session.LastSaved(); ok {
		printlnFn("Saved at", t.Format(time.RFC3339))
	}
	return nil
}

// SaveVersion snapshots the buffer as the next version.
func (a *App) SaveVersion(ctx context.Context) error {
	if err := a.session.SaveVersion(ctx, a.editor.Snapshot()); err != nil {
		printlnFn("Error:", err)
		return err
	}
	if cur := a.session.Current(); cur != nil {
		printlnFn("Saved version", cur.VersionNumber)
	}
	return nil
}

// Versions lists the current document's snapshots.
func (a *App) Versions(ctx context.Context) error {
	for _, v := range a.session.Versions() {
		printlnFn(fmt.Sprintf("v%d  %s  %s", v.VersionNumber, v.CreatedAt.Format(time.RFC3339), v.CreatedBy))
	}
	return nil
}

// LoadVersion puts a stored snapshot on the buffer.
func (a *App) LoadVersion(ctx context.Context) error {
	raw, err := GetSimpleText(a.reader, "Version number", os.Stdout)
	if err != nil {
		return err
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		printlnFn("Not a version number:", raw)
		return err
	}

	a.session.LoadVersion(n)
	printlnFn("On version", a.session.CurrentVersion())
	return nil
}
