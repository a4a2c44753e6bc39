package editor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-resume-builder/internal/domain"
	"go-resume-builder/internal/editor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Create(ctx context.Context, userID string) (*domain.Resume, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) GetByID(ctx context.Context, id, userID string) (*domain.Resume, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) ListByUser(ctx context.Context, userID string) ([]domain.ResumeSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResumeSummary), args.Error(1)
}

func (m *MockResumeRepo) Update(ctx context.Context, id, userID string, content domain.ResumeContent, title string) (*domain.ResumeSummary, error) {
	args := m.Called(ctx, id, userID, content, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResumeSummary), args.Error(1)
}

func (m *MockResumeRepo) Delete(ctx context.Context, id, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

func storedResume(id, userID string) *domain.Resume {
	return &domain.Resume{
		ID:      id,
		UserID:  userID,
		Title:   "Untitled Resume",
		Status:  domain.StatusDraft,
		Content: domain.DefaultContent(),
	}
}

func TestManagerOpen(t *testing.T) {
	t.Run("Should load the persisted snapshot on first open", func(t *testing.T) {
		repo := new(MockResumeRepo)
		repo.On("GetByID", mock.Anything, "r1", "user1").Return(storedResume("r1", "user1"), nil).Once()

		m := editor.NewManager(repo, time.Hour)
		s, err := m.Open(context.Background(), "r1", "user1")
		assert.NoError(t, err)
		title, _ := s.Snapshot()
		assert.Equal(t, "Untitled Resume", title)

		// Second open reuses the live session, no repository hit.
		again, err := m.Open(context.Background(), "r1", "user1")
		assert.NoError(t, err)
		assert.Same(t, s, again)
		repo.AssertExpectations(t)
	})

	t.Run("Should treat a foreign-owned resume as absent", func(t *testing.T) {
		repo := new(MockResumeRepo)
		repo.On("GetByID", mock.Anything, "r1", "intruder").Return(nil, nil)

		m := editor.NewManager(repo, time.Hour)
		_, err := m.Open(context.Background(), "r1", "intruder")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Should not hand an open session to another user", func(t *testing.T) {
		repo := new(MockResumeRepo)
		repo.On("GetByID", mock.Anything, "r1", "user1").Return(storedResume("r1", "user1"), nil)

		m := editor.NewManager(repo, time.Hour)
		_, err := m.Open(context.Background(), "r1", "user1")
		assert.NoError(t, err)

		_, err = m.Open(context.Background(), "r1", "intruder")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSessionSave(t *testing.T) {
	openSession := func(repo *MockResumeRepo) *editor.Session {
		repo.On("GetByID", mock.Anything, "r1", "user1").Return(storedResume("r1", "user1"), nil).Once()
		m := editor.NewManager(repo, time.Hour)
		s, err := m.Open(context.Background(), "r1", "user1")
		assert.NotNil(t, s)
		assert.NoError(t, err)
		return s
	}

	t.Run("Should persist the full snapshot with the schema version stamped", func(t *testing.T) {
		repo := new(MockResumeRepo)
		s := openSession(repo)

		s.Apply(func(doc domain.ResumeContent) domain.ResumeContent {
			out, _, _ := editor.AddSection(doc, domain.SectionSkills)
			return out
		})

		repo.On("Update", mock.Anything, "r1", "user1", mock.AnythingOfType("domain.ResumeContent"), "Untitled Resume").
			Return(&domain.ResumeSummary{ID: "r1", Title: "Untitled Resume"}, nil).
			Run(func(args mock.Arguments) {
				content := args.Get(3).(domain.ResumeContent)
				assert.Equal(t, domain.SchemaVersion, content.SchemaVersion)
				assert.Len(t, content.Sections, 1)
			})

		summary, err := s.Save(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "r1", summary.ID)
		assert.Equal(t, editor.StatusSaved, s.Status())
	})

	t.Run("Should leave the document and drop to idle when the save fails", func(t *testing.T) {
		repo := new(MockResumeRepo)
		s := openSession(repo)

		s.Apply(func(doc domain.ResumeContent) domain.ResumeContent {
			out, _, _ := editor.AddSection(doc, domain.SectionProjects)
			return out
		})

		repo.On("Update", mock.Anything, "r1", "user1", mock.Anything, mock.Anything).
			Return(nil, errors.New("connection reset"))

		_, err := s.Save(context.Background())
		assert.Error(t, err)
		assert.Equal(t, editor.StatusIdle, s.Status())

		// Edits survive the failed save.
		_, doc := s.Snapshot()
		assert.Len(t, doc.Sections, 1)
	})

	t.Run("Should surface ErrNotFound when the row vanished", func(t *testing.T) {
		repo := new(MockResumeRepo)
		s := openSession(repo)

		repo.On("Update", mock.Anything, "r1", "user1", mock.Anything, mock.Anything).
			Return(nil, nil)

		_, err := s.Save(context.Background())
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, editor.StatusIdle, s.Status())
	})
}

func TestSessionUpdate(t *testing.T) {
	repo := new(MockResumeRepo)
	repo.On("GetByID", mock.Anything, "r1", "user1").Return(storedResume("r1", "user1"), nil)
	m := editor.NewManager(repo, time.Hour)
	s, _ := m.Open(context.Background(), "r1", "user1")

	t.Run("Should leave the document untouched when the mutation errors", func(t *testing.T) {
		boom := errors.New("boom")
		doc, err := s.Update(func(doc domain.ResumeContent) (domain.ResumeContent, error) {
			out, _, _ := editor.AddSection(doc, domain.SectionSkills)
			return out, boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, doc.Sections)
	})
}
