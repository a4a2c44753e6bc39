package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) Create(ctx context.Context, userID string) (*domain.Resume, error) {
	content := domain.DefaultContent()
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default content: %w", err)
	}

	resume := &domain.Resume{
		ID:      uuid.NewString(),
		UserID:  userID,
		Title:   "Untitled Resume",
		Status:  domain.StatusDraft,
		Content: content,
	}

	query := `
		INSERT INTO resumes (id, user_id, title, status, content, section_types, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at`

	err = r.db.QueryRow(ctx, query,
		resume.ID, resume.UserID, resume.Title, resume.Status, contentJSON, pq.Array([]string{}),
	).Scan(&resume.CreatedAt, &resume.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert resume: %w", err)
	}
	return resume, nil
}

func (r *resumeRepo) GetByID(ctx context.Context, id, userID string) (*domain.Resume, error) {
	query := `
		SELECT id, user_id, title, status, content, created_at, updated_at
		FROM resumes WHERE id = $1 AND user_id = $2`

	var resume domain.Resume
	var contentJSON []byte

	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&resume.ID, &resume.UserID, &resume.Title, &resume.Status,
		&contentJSON, &resume.CreatedAt, &resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	// Legacy rows may predate the schema version and current item
	// shapes; unknown fields simply drop out on decode.
	if err := json.Unmarshal(contentJSON, &resume.Content); err != nil {
		return nil, fmt.Errorf("failed to decode resume content: %w", err)
	}
	return &resume, nil
}

func (r *resumeRepo) ListByUser(ctx context.Context, userID string) ([]domain.ResumeSummary, error) {
	query := `
		SELECT id, title, status, COALESCE(section_types, '{}'), created_at, updated_at
		FROM resumes WHERE user_id = $1
		ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []domain.ResumeSummary{}
	for rows.Next() {
		var s domain.ResumeSummary
		var sectionTypes []string
		if err := rows.Scan(&s.ID, &s.Title, &s.Status, pq.Array(&sectionTypes), &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.SectionTypes = sectionTypes
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *resumeRepo) Update(ctx context.Context, id, userID string, content domain.ResumeContent, title string) (*domain.ResumeSummary, error) {
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal content: %w", err)
	}

	query := `
		UPDATE resumes
		SET content = $1, title = $2, section_types = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5
		RETURNING id, title, status, COALESCE(section_types, '{}'), created_at, updated_at`

	var s domain.ResumeSummary
	var sectionTypes []string
	err = r.db.QueryRow(ctx, query,
		contentJSON, title, pq.Array(content.SectionTypes()), id, userID,
	).Scan(&s.ID, &s.Title, &s.Status, pq.Array(&sectionTypes), &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Missing and foreign-owned rows are indistinguishable on
			// purpose; existence must not leak.
			return nil, nil
		}
		return nil, err
	}
	s.SectionTypes = sectionTypes
	return &s, nil
}

func (r *resumeRepo) Delete(ctx context.Context, id, userID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
