// Package session owns the editing session: the current document, version
// creation, debounced auto-save and the AI-assisted editing operations. It
// mediates every mutation between the editing surface and the local store.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"contractpad/internal/ai"
	"contractpad/internal/common"
	"contractpad/internal/content"
	"contractpad/internal/identity"
	"contractpad/internal/logging"
	"contractpad/internal/models"
)

// DefaultQuietWindow is the auto-save debounce period.
const DefaultQuietWindow = 2 * time.Second

// LocalStore is the slice of the local store the session needs.
// *store.Store satisfies it.
type LocalStore interface {
	SaveDocument(ctx context.Context, doc *models.Document) error
	SaveVersion(ctx context.Context, v *models.Version) error
	GetDocument(ctx context.Context, id string) (*models.Document, error)
	ListVersions(ctx context.Context, documentID string) ([]models.Version, error)
}

// Session drives one user's editing session. Methods are safe for the
// occasional concurrent caller (the auto-save timer fires on its own
// goroutine), but the session is designed for one interactive user.
type Session struct {
	local    LocalStore
	ai       ai.Service
	identity identity.Provider
	editor   Editor
	sched    Scheduler
	log      logging.Logger

	quiet time.Duration
	now   func() time.Time

	mu             sync.Mutex
	current        *models.Document
	versions       []models.Version
	currentVersion int64
	saving         bool
	lastSaved      time.Time
}

// New builds a session. quiet <= 0 selects DefaultQuietWindow.
func New(local LocalStore, aiSvc ai.Service, ident identity.Provider, editor Editor, sched Scheduler, quiet time.Duration, log logging.Logger) *Session {
	if quiet <= 0 {
		quiet = DefaultQuietWindow
	}
	return &Session{
		local:    local,
		ai:       aiSvc,
		identity: ident,
		editor:   editor,
		sched:    sched,
		log:      log.With("component", "session"),
		quiet:    quiet,
		now:      time.Now,
	}
}

// CreateDocument creates a new document for the current actor, persists it
// and its first version snapshot, and makes it the session's current
// document. With initial == nil the document starts with the default
// heading-plus-empty-paragraph content.
func (s *Session) CreateDocument(ctx context.Context, title string, initial *content.Node) (*models.Document, error) {
	actor, ok := s.identity.CurrentUserID()
	if !ok {
		return nil, common.ErrAuthRequired
	}

	if title == "" {
		title = content.DefaultTitle
	}
	var snapshot content.Node
	if initial != nil {
		snapshot = content.Clone(*initial)
	} else {
		snapshot = content.Default(title)
	}

	now := s.now()
	doc := &models.Document{
		ID:            uuid.NewString(),
		Title:         title,
		Content:       snapshot,
		OwnerID:       actor,
		CreatedAt:     now,
		UpdatedAt:     now,
		VersionNumber: 1,
	}
	if err := s.local.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	v := &models.Version{
		ID:            uuid.NewString(),
		DocumentID:    doc.ID,
		Content:       content.Clone(snapshot),
		VersionNumber: 1,
		CreatedAt:     now,
		CreatedBy:     actor,
	}
	if err := s.local.SaveVersion(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to create initial version: %w", err)
	}

	s.mu.Lock()
	s.current = doc
	s.versions = []models.Version{*v}
	s.currentVersion = 1
	s.mu.Unlock()

	if s.editor != nil {
		s.editor.SetContent(snapshot)
	}
	return doc, nil
}

// LoadDocument makes the stored document the session's current one and
// resets the editing surface to its snapshot. An unknown id leaves the
// session untouched; only storage failures are reported.
func (s *Session) LoadDocument(ctx context.Context, id string) error {
	doc, err := s.local.GetDocument(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	vers, err := s.local.ListVersions(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load versions: %w", err)
	}

	s.mu.Lock()
	s.current = doc
	s.versions = vers
	s.currentVersion = doc.VersionNumber
	s.mu.Unlock()

	if s.editor != nil {
		s.editor.SetContent(doc.Content)
	}
	return nil
}

// SaveDocument captures the editing surface snapshot and persists the
// current document. Without a current document, an editor, or an actor it
// does nothing.
func (s *Session) SaveDocument(ctx context.Context) error {
	s.mu.Lock()
	if s.current == nil || s.editor == nil {
		s.mu.Unlock()
		return nil
	}
	if _, ok := s.identity.CurrentUserID(); !ok {
		s.mu.Unlock()
		return nil
	}

	s.current.Content = s.editor.Snapshot()
	s.current.UpdatedAt = s.now()
	s.current.Synced = false
	doc := s.current
	s.saving = true
	s.mu.Unlock()

	err := s.local.SaveDocument(ctx, doc)

	s.mu.Lock()
	s.saving = false
	if err == nil {
		s.lastSaved = s.now()
	}
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// SaveVersion snapshots the given content as the next version of the current
// document, bumps the document to match, and refreshes the cached version
// list. Without a current document or an actor it does nothing.
func (s *Session) SaveVersion(ctx context.Context, snapshot content.Node) error {
	actor, ok := s.identity.CurrentUserID()
	if !ok {
		return nil
	}

	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil
	}
	doc := s.current
	next := doc.VersionNumber + 1
	s.mu.Unlock()

	now := s.now()
	v := &models.Version{
		ID:            uuid.NewString(),
		DocumentID:    doc.ID,
		Content:       content.Clone(snapshot),
		VersionNumber: next,
		CreatedAt:     now,
		CreatedBy:     actor,
	}
	if err := s.local.SaveVersion(ctx, v); err != nil {
		return fmt.Errorf("failed to save version: %w", err)
	}

	s.mu.Lock()
	doc.VersionNumber = next
	doc.UpdatedAt = now
	doc.Synced = false
	s.mu.Unlock()

	if err := s.local.SaveDocument(ctx, doc); err != nil {
		return fmt.Errorf("failed to update document version: %w", err)
	}

	vers, err := s.local.ListVersions(ctx, doc.ID)
	if err != nil {
		return fmt.Errorf("failed to refresh versions: %w", err)
	}

	s.mu.Lock()
	s.versions = vers
	s.currentVersion = next
	s.mu.Unlock()
	return nil
}

// LoadVersion puts the snapshot of the given version number on the editing
// surface. Unknown version numbers are ignored.
func (s *Session) LoadVersion(versionNumber int64) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	var found *models.Version
	for i := range s.versions {
		if s.versions[i].VersionNumber == versionNumber {
			found = &s.versions[i]
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		return
	}
	snapshot := content.Clone(found.Content)
	s.currentVersion = versionNumber
	s.mu.Unlock()

	if s.editor != nil {
		s.editor.SetContent(snapshot)
	}
}

// GenerateFromPrompt asks the AI collaborator for a full contract, converts
// the text into structured content and creates a new document from it. The
// document title is derived from the prompt description.
func (s *Session) GenerateFromPrompt(ctx context.Context, p ai.Prompt) (*models.Document, error) {
	if _, ok := s.identity.CurrentUserID(); !ok {
		return nil, common.ErrAuthRequired
	}

	resp := s.ai.GenerateContract(ctx, p)
	if !resp.Success {
		return nil, errors.New(resp.Err)
	}

	title := content.TitleFromPrompt(p.Description)
	node := content.FromText(resp.Content)
	return s.CreateDocument(ctx, title, &node)
}

// ImproveText asks the AI collaborator for a better wording of a clause,
// using the current document's title as context. On failure the input comes
// back unchanged.
func (s *Session) ImproveText(ctx context.Context, text string) string {
	s.mu.Lock()
	docContext := ""
	if s.current != nil {
		docContext = s.current.Title
	}
	s.mu.Unlock()

	resp := s.ai.ImproveClause(ctx, text, docContext)
	if !resp.Success {
		return text
	}
	return resp.Content
}

// AnalyzeContract runs the AI analysis over the current document's plain
// text. Failures come back as a message string, never an error.
func (s *Session) AnalyzeContract(ctx context.Context) string {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return "Nenhum contrato aberto para analisar."
	}
	snapshot := s.current.Content
	s.mu.Unlock()

	if s.editor != nil {
		snapshot = s.editor.Snapshot()
	}

	resp := s.ai.AnalyzeContract(ctx, content.PlainText(snapshot))
	if !resp.Success {
		return resp.Err
	}
	return resp.Content
}

// OnEdit notifies the session that the editing surface changed. Each call
// re-arms the debounced auto-save, so a burst of edits collapses into one
// save after the quiet window.
func (s *Session) OnEdit() {
	s.sched.Schedule(s.quiet, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.SaveDocument(ctx); err != nil {
			s.log.Error(ctx, "auto-save failed", "error", err)
		}
	})
}

// Close cancels any pending auto-save.
func (s *Session) Close() {
	s.sched.CancelPending()
}

// Current returns the session's current document, or nil.
func (s *Session) Current() *models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Versions returns the cached version list of the current document.
func (s *Session) Versions() []models.Version {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.versions
}

// CurrentVersion returns the version number shown on the editing surface.
func (s *Session) CurrentVersion() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentVersion
}

// Saving reports whether a save is in flight.
func (s *Session) Saving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saving
}

// LastSaved returns the time of the last successful save; ok is false when
// the document has not been saved in this session yet.
func (s *Session) LastSaved() (t time.Time, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved, !s.lastSaved.IsZero()
}
