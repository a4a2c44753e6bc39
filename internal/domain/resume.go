package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// SchemaVersion is stamped into every document we create or save so the
// item shapes can evolve later. Documents without a version are treated
// as version 1 data.
const SchemaVersion = 1

// Resume statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Website   string `json:"website,omitempty"`
}

// PersonalDetail is the singleton header block of a document. Nothing is
// enforced as required at the model layer; completeness is a UI concern.
type PersonalDetail struct {
	FullName    string      `json:"fullName"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Headline    string      `json:"headline,omitempty"`
	Address     string      `json:"address,omitempty"`
	PhotoURL    string      `json:"photoUrl,omitempty"`
	SocialLinks SocialLinks `json:"socialLinks"`
}

// ResumeContent is the serialized document body stored as a JSON blob.
type ResumeContent struct {
	SchemaVersion  int             `json:"schemaVersion,omitempty"`
	PersonalDetail PersonalDetail  `json:"personalDetail"`
	Sections       []ResumeSection `json:"sections"`
}

// DefaultContent is the body every new resume starts with.
func DefaultContent() ResumeContent {
	return ResumeContent{
		SchemaVersion: SchemaVersion,
		Sections:      []ResumeSection{},
	}
}

// SectionTypes returns the discriminators present in document order.
// Denormalized into the resumes table for dashboard cards.
func (c ResumeContent) SectionTypes() []string {
	types := make([]string, 0, len(c.Sections))
	for _, s := range c.Sections {
		types = append(types, string(s.Type))
	}
	return types
}

// Resume is the aggregate root keyed by id and owner.
type Resume struct {
	ID        string        `json:"id"`
	UserID    string        `json:"-"`
	Title     string        `json:"title"`
	Status    string        `json:"status"`
	Content   ResumeContent `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ResumeSummary is the list/dashboard shape; content is omitted.
type ResumeSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	SectionTypes []string  `json:"section_types"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ResumeRepository is the persistence contract. Every call is scoped by
// the owning user id; rows owned by someone else behave as absent.
type ResumeRepository interface {
	Create(ctx context.Context, userID string) (*Resume, error)
	GetByID(ctx context.Context, id, userID string) (*Resume, error)
	ListByUser(ctx context.Context, userID string) ([]ResumeSummary, error)
	Update(ctx context.Context, id, userID string, content ResumeContent, title string) (*ResumeSummary, error)
	Delete(ctx context.Context, id, userID string) error
}
