package editor

import (
	"context"
	"sync"
	"time"

	"go-resume-builder/internal/domain"
)

// Session holds the sole mutable copy of an open document. Mutations
// are serialized by the session mutex, mirroring the one-event-at-a-time
// discipline of the editing UI; the persisted copy is whatever snapshot
// was last saved.
type Session struct {
	mu       sync.Mutex
	resumeID string
	userID   string
	title    string
	doc      domain.ResumeContent
	status   *StatusTracker
	repo     domain.ResumeRepository
}

func (s *Session) ResumeID() string { return s.resumeID }
func (s *Session) UserID() string   { return s.userID }

// Snapshot returns the current title and document value.
func (s *Session) Snapshot() (string, domain.ResumeContent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title, s.doc
}

func (s *Session) Status() SaveStatus {
	return s.status.Status()
}

func (s *Session) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
}

// Apply runs an infallible mutation against the current document and
// installs the result.
func (s *Session) Apply(mutate func(domain.ResumeContent) domain.ResumeContent) domain.ResumeContent {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = mutate(s.doc)
	return s.doc
}

// Update runs a fallible mutation. On error the document is left
// exactly as it was.
func (s *Session) Update(mutate func(domain.ResumeContent) (domain.ResumeContent, error)) (domain.ResumeContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := mutate(s.doc)
	if err != nil {
		return s.doc, err
	}
	s.doc = next
	return s.doc, nil
}

// Save serializes the full current document (never a diff) and pushes
// it to the repository. The session lock is released during the I/O so
// edits keep flowing while a save is outstanding; a save that started
// earlier simply wrote an earlier full snapshot, so last response wins
// without corrupting anything. On failure the in-memory document is
// untouched and the status drops back to idle.
func (s *Session) Save(ctx context.Context) (*domain.ResumeSummary, error) {
	s.mu.Lock()
	title := s.title
	// Content is version-stamped at save time so legacy documents get
	// upgraded on their next write.
	doc := s.doc
	doc.SchemaVersion = domain.SchemaVersion
	s.mu.Unlock()

	s.status.Begin()
	summary, err := s.repo.Update(ctx, s.resumeID, s.userID, doc, title)
	if err != nil {
		s.status.Fail()
		return nil, err
	}
	if summary == nil {
		s.status.Fail()
		return nil, domain.ErrNotFound
	}
	s.status.Succeed()
	return summary, nil
}

// Manager tracks the open editor session per resume id. A resume has at
// most one session; there is no cross-session conflict resolution, the
// last save wins. Sessions live until Close or resume deletion; there
// is no idle eviction.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	repo     domain.ResumeRepository
	reset    time.Duration
}

func NewManager(repo domain.ResumeRepository, savedReset time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		repo:     repo,
		reset:    savedReset,
	}
}

// Open returns the live session for a resume, loading the persisted
// snapshot on first access. A resume owned by someone else behaves as
// absent.
func (m *Manager) Open(ctx context.Context, resumeID, userID string) (*Session, error) {
	m.mu.Lock()
	if s, ok := m.sessions[resumeID]; ok {
		m.mu.Unlock()
		if s.userID != userID {
			return nil, domain.ErrNotFound
		}
		return s, nil
	}
	m.mu.Unlock()

	resume, err := m.repo.GetByID(ctx, resumeID, userID)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, domain.ErrNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[resumeID]; ok {
		// Lost the race to another open; reuse the winner.
		if s.userID != userID {
			return nil, domain.ErrNotFound
		}
		return s, nil
	}
	s := &Session{
		resumeID: resumeID,
		userID:   userID,
		title:    resume.Title,
		doc:      resume.Content,
		status:   NewStatusTracker(m.reset),
		repo:     m.repo,
	}
	m.sessions[resumeID] = s
	return s, nil
}

// Close discards the in-memory session without saving. Unsaved edits
// are lost by design.
func (m *Manager) Close(resumeID, userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[resumeID]; ok && s.userID == userID {
		delete(m.sessions, resumeID)
	}
}
