package usecase

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"go-resume-builder/internal/domain"
	"go-resume-builder/internal/editor"
	"go-resume-builder/pkg/apperror"
	"go-resume-builder/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume.schema.json
var schemaFS embed.FS

// ResumeUsecase is the application surface for resume CRUD and the
// open-editor operations. Editor operations route through the session
// manager so every mutation goes through the engine against the live
// in-memory document.
type ResumeUsecase interface {
	CreateResume(ctx context.Context) (*domain.Resume, error)
	GetResume(ctx context.Context, id string) (*domain.Resume, error)
	ListResumes(ctx context.Context) ([]domain.ResumeSummary, error)
	UpdateResume(ctx context.Context, id string, content domain.ResumeContent, title string) (*domain.ResumeSummary, error)
	DeleteResume(ctx context.Context, id string) error
	ImportResume(ctx context.Context, title string, content json.RawMessage) (*domain.Resume, error)

	AddSection(ctx context.Context, id string, t domain.SectionType) (domain.ResumeContent, string, bool, error)
	DeleteSection(ctx context.Context, id, sectionID string) (domain.ResumeContent, error)
	AddItem(ctx context.Context, id, sectionID string) (domain.ResumeContent, error)
	SetSectionItems(ctx context.Context, id, sectionID string, rawItems []json.RawMessage) (domain.ResumeContent, error)
	UpdatePersonalDetails(ctx context.Context, id string, patch editor.PersonalDetailPatch) (domain.ResumeContent, error)
	Reorder(ctx context.Context, id string, ev editor.DropEvent) (domain.ResumeContent, error)
	SetResumeTitle(ctx context.Context, id, title string) error
	SaveResume(ctx context.Context, id string) (*domain.ResumeSummary, error)
	EditorStatus(ctx context.Context, id string) (editor.SaveStatus, error)
	CloseEditor(ctx context.Context, id string) error
}

type resumeUsecase struct {
	repo     domain.ResumeRepository
	sessions *editor.Manager
	validate *validator.Validate
	schema   *gojsonschema.Schema
}

func NewResumeUsecase(repo domain.ResumeRepository, sessions *editor.Manager, validate *validator.Validate) (ResumeUsecase, error) {
	schemaBytes, err := schemaFS.ReadFile("schema/resume.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read resume schema: %w", err)
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to compile resume schema: %w", err)
	}

	return &resumeUsecase{
		repo:     repo,
		sessions: sessions,
		validate: validate,
		schema:   schema,
	}, nil
}

// ownerFromCtx extracts the authenticated user id; every repository
// call is scoped by it, never by an implicit global.
func ownerFromCtx(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return "", apperror.Unauthorized("User not authenticated")
	}
	return userID, nil
}

func (u *resumeUsecase) CreateResume(ctx context.Context) (*domain.Resume, error) {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return u.repo.Create(ctx, userID)
}

func (u *resumeUsecase) GetResume(ctx context.Context, id string) (*domain.Resume, error) {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	resume, err := u.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, apperror.NotFound("Resume not found")
	}
	return resume, nil
}

func (u *resumeUsecase) ListResumes(ctx context.Context) ([]domain.ResumeSummary, error) {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByUser(ctx, userID)
}

func (u *resumeUsecase) UpdateResume(ctx context.Context, id string, content domain.ResumeContent, title string) (*domain.ResumeSummary, error) {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := u.validate.Var(title, "max=200"); err != nil {
		return nil, apperror.BadRequest("Title must be at most 200 characters")
	}

	content.SchemaVersion = domain.SchemaVersion
	summary, err := u.repo.Update(ctx, id, userID, content, title)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, apperror.NotFound("Resume not found")
	}
	return summary, nil
}

func (u *resumeUsecase) DeleteResume(ctx context.Context, id string) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	// Drop any open editor state first; unsaved edits die with the resume.
	u.sessions.Close(id, userID)

	if err := u.repo.Delete(ctx, id, userID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Resume not found")
		}
		return err
	}
	return nil
}

func (u *resumeUsecase) ImportResume(ctx context.Context, title string, content json.RawMessage) (*domain.Resume, error) {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := u.validate.Var(title, "max=200"); err != nil {
		return nil, apperror.BadRequest("Title must be at most 200 characters")
	}

	result, err := u.schema.Validate(gojsonschema.NewBytesLoader(content))
	if err != nil {
		return nil, apperror.BadRequest("Content is not valid JSON")
	}
	if !result.Valid() {
		msg := "Content does not match the resume schema"
		if errs := result.Errors(); len(errs) > 0 {
			msg = fmt.Sprintf("%s: %s", msg, errs[0].String())
		}
		return nil, apperror.UnprocessableEntity(msg)
	}

	var parsed domain.ResumeContent
	if err := json.Unmarshal(content, &parsed); err != nil {
		return nil, apperror.BadRequest("Content could not be decoded")
	}

	resume, err := u.repo.Create(ctx, userID)
	if err != nil {
		return nil, err
	}
	if title == "" {
		title = resume.Title
	}
	summary, err := u.repo.Update(ctx, resume.ID, userID, parsed, title)
	if err != nil {
		// Roll back the freshly created row so a failed import does not
		// leave an empty default resume behind.
		if delErr := u.repo.Delete(ctx, resume.ID, userID); delErr != nil {
			logger.Log.Error("Import rollback failed", "resume_id", resume.ID, "error", delErr)
		}
		return nil, err
	}
	if summary == nil {
		return nil, apperror.NotFound("Resume not found")
	}

	resume.Title = summary.Title
	resume.Content = parsed
	resume.UpdatedAt = summary.UpdatedAt
	logger.Log.Info("Resume imported", "resume_id", resume.ID, "sections", len(parsed.Sections))
	return resume, nil
}

func (u *resumeUsecase) openSession(ctx context.Context, id string) (*editor.Session, error) {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	session, err := u.sessions.Open(ctx, id, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Resume not found")
		}
		return nil, err
	}
	return session, nil
}

func (u *resumeUsecase) AddSection(ctx context.Context, id string, t domain.SectionType) (domain.ResumeContent, string, bool, error) {
	if !t.Valid() {
		return domain.ResumeContent{}, "", false, apperror.BadRequest("Unknown section type")
	}
	session, err := u.openSession(ctx, id)
	if err != nil {
		return domain.ResumeContent{}, "", false, err
	}

	var sectionID string
	var added bool
	doc := session.Apply(func(doc domain.ResumeContent) domain.ResumeContent {
		next, sid, ok := editor.AddSection(doc, t)
		sectionID, added = sid, ok
		return next
	})
	return doc, sectionID, added, nil
}

func (u *resumeUsecase) DeleteSection(ctx context.Context, id, sectionID string) (domain.ResumeContent, error) {
	session, err := u.openSession(ctx, id)
	if err != nil {
		return domain.ResumeContent{}, err
	}
	doc := session.Apply(func(doc domain.ResumeContent) domain.ResumeContent {
		return editor.DeleteSection(doc, sectionID)
	})
	return doc, nil
}

func (u *resumeUsecase) AddItem(ctx context.Context, id, sectionID string) (domain.ResumeContent, error) {
	session, err := u.openSession(ctx, id)
	if err != nil {
		return domain.ResumeContent{}, err
	}
	doc, err := session.Update(func(doc domain.ResumeContent) (domain.ResumeContent, error) {
		for _, s := range doc.Sections {
			if s.ID == sectionID {
				items := editor.AppendItem(s.Items, editor.NewItem(s.Type))
				return editor.SetSectionItems(doc, sectionID, items)
			}
		}
		return doc, editor.ErrSectionNotFound
	})
	if err != nil {
		return domain.ResumeContent{}, apperror.NotFound("Section not found")
	}
	return doc, nil
}

func (u *resumeUsecase) SetSectionItems(ctx context.Context, id, sectionID string, rawItems []json.RawMessage) (domain.ResumeContent, error) {
	session, err := u.openSession(ctx, id)
	if err != nil {
		return domain.ResumeContent{}, err
	}

	doc, err := session.Update(func(doc domain.ResumeContent) (domain.ResumeContent, error) {
		for _, s := range doc.Sections {
			if s.ID == sectionID {
				items, err := domain.DecodeItems(s.Type, rawItems)
				if err != nil {
					return doc, apperror.BadRequest("Items do not match the section type")
				}
				return editor.SetSectionItems(doc, sectionID, items)
			}
		}
		return doc, editor.ErrSectionNotFound
	})
	if err != nil {
		if appErr, ok := err.(*apperror.AppError); ok {
			return domain.ResumeContent{}, appErr
		}
		return domain.ResumeContent{}, apperror.NotFound("Section not found")
	}
	return doc, nil
}

func (u *resumeUsecase) UpdatePersonalDetails(ctx context.Context, id string, patch editor.PersonalDetailPatch) (domain.ResumeContent, error) {
	session, err := u.openSession(ctx, id)
	if err != nil {
		return domain.ResumeContent{}, err
	}
	doc := session.Apply(func(doc domain.ResumeContent) domain.ResumeContent {
		return editor.UpdatePersonalDetail(doc, patch)
	})
	return doc, nil
}

func (u *resumeUsecase) Reorder(ctx context.Context, id string, ev editor.DropEvent) (domain.ResumeContent, error) {
	session, err := u.openSession(ctx, id)
	if err != nil {
		return domain.ResumeContent{}, err
	}
	doc := session.Apply(func(doc domain.ResumeContent) domain.ResumeContent {
		intent, ok := editor.DecodeDrop(ev)
		if !ok {
			// Cancelled drop; nothing moves.
			return doc
		}
		return editor.ApplyReorder(doc, intent)
	})
	return doc, nil
}

func (u *resumeUsecase) SetResumeTitle(ctx context.Context, id, title string) error {
	if err := u.validate.Var(title, "max=200"); err != nil {
		return apperror.BadRequest("Title must be at most 200 characters")
	}
	session, err := u.openSession(ctx, id)
	if err != nil {
		return err
	}
	session.SetTitle(title)
	return nil
}

func (u *resumeUsecase) SaveResume(ctx context.Context, id string) (*domain.ResumeSummary, error) {
	session, err := u.openSession(ctx, id)
	if err != nil {
		return nil, err
	}
	summary, err := session.Save(ctx)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Resume not found")
		}
		logger.Log.Error("Resume save failed", "resume_id", id, "error", err)
		return nil, err
	}
	return summary, nil
}

func (u *resumeUsecase) EditorStatus(ctx context.Context, id string) (editor.SaveStatus, error) {
	session, err := u.openSession(ctx, id)
	if err != nil {
		return editor.StatusIdle, err
	}
	return session.Status(), nil
}

func (u *resumeUsecase) CloseEditor(ctx context.Context, id string) error {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	u.sessions.Close(id, userID)
	return nil
}
