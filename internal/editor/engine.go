// Package editor holds the document mutation engine: pure operations
// that take the current document plus an edit intent and return a new
// document. Inputs are never mutated in place, so callers can keep the
// prior snapshot around (preview diffing, failed-save rollback).
package editor

import (
	"errors"

	"go-resume-builder/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrIndexOutOfRange = errors.New("editor: index out of range")
	ErrSectionNotFound = errors.New("editor: section not found")
)

// AddSection appends a new empty section of the given type. Non-custom
// types are idempotent: if one already exists the document is returned
// unchanged together with the existing section's id and added=false, so
// the caller can focus it instead of duplicating. Custom sections are
// unbounded.
func AddSection(doc domain.ResumeContent, t domain.SectionType) (out domain.ResumeContent, sectionID string, added bool) {
	if !t.Valid() {
		return doc, "", false
	}
	if t != domain.SectionCustom {
		for _, s := range doc.Sections {
			if s.Type == t {
				return doc, s.ID, false
			}
		}
	}

	section := domain.ResumeSection{
		ID:        uuid.NewString(),
		Type:      t,
		Title:     t.DefaultTitle(),
		IsVisible: true,
		Columns:   1,
		Items:     []domain.SectionItem{},
	}

	sections := make([]domain.ResumeSection, 0, len(doc.Sections)+1)
	sections = append(sections, doc.Sections...)
	sections = append(sections, section)
	doc.Sections = sections
	return doc, section.ID, true
}

// DeleteSection removes the section with the given id. Unknown ids are a
// no-op; confirmation of the destructive action is the caller's job.
func DeleteSection(doc domain.ResumeContent, sectionID string) domain.ResumeContent {
	idx := sectionIndex(doc, sectionID)
	if idx < 0 {
		return doc
	}
	sections := make([]domain.ResumeSection, 0, len(doc.Sections)-1)
	sections = append(sections, doc.Sections[:idx]...)
	sections = append(sections, doc.Sections[idx+1:]...)
	doc.Sections = sections
	return doc
}

// ReorderSections moves the section at from to position to. Out-of-range
// indices fail loudly with ErrIndexOutOfRange; the reorder coordinator
// validates drops before calling in.
func ReorderSections(doc domain.ResumeContent, from, to int) (domain.ResumeContent, error) {
	reordered, err := ReorderItems(doc.Sections, from, to)
	if err != nil {
		return doc, err
	}
	doc.Sections = reordered
	return doc, nil
}

// SetSectionItems replaces one section's item array wholesale. This is
// the single channel through which item-level add/delete/edit/reorder
// reach the document.
func SetSectionItems(doc domain.ResumeContent, sectionID string, items []domain.SectionItem) (domain.ResumeContent, error) {
	idx := sectionIndex(doc, sectionID)
	if idx < 0 {
		return doc, ErrSectionNotFound
	}
	if items == nil {
		items = []domain.SectionItem{}
	}
	sections := make([]domain.ResumeSection, len(doc.Sections))
	copy(sections, doc.Sections)
	sections[idx].Items = items
	doc.Sections = sections
	return doc, nil
}

// AppendItem returns a new slice with item added at the end.
func AppendItem[T domain.SectionItem](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	out = append(out, item)
	return out
}

// RemoveItem drops the element at index. An out-of-range index is a
// no-op: deleting an already-deleted entry must not blow up the caller's
// expanded-row bookkeeping.
func RemoveItem[T any](items []T, index int) []T {
	if index < 0 || index >= len(items) {
		return items
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	out = append(out, items[index+1:]...)
	return out
}

// ReorderItems removes the element at from and reinserts it at to,
// returning a fresh slice. The result is always a permutation of the
// input. Out-of-range indices return ErrIndexOutOfRange.
func ReorderItems[T any](items []T, from, to int) ([]T, error) {
	n := len(items)
	if from < 0 || from >= n || to < 0 || to >= n {
		return items, ErrIndexOutOfRange
	}
	out := make([]T, 0, n)
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)
	moved := items[from]
	out = append(out[:to], append([]T{moved}, out[to:]...)...)
	return out, nil
}

func sectionIndex(doc domain.ResumeContent, sectionID string) int {
	for i, s := range doc.Sections {
		if s.ID == sectionID {
			return i
		}
	}
	return -1
}

// NewItem returns a blank item with a fresh id and type-appropriate
// defaults, ready to be appended to a section of the given type.
func NewItem(t domain.SectionType) domain.SectionItem {
	switch t {
	case domain.SectionExperience:
		return domain.ExperienceItem{ID: uuid.NewString(), CurrentlyWorking: false}
	case domain.SectionEducation:
		return domain.EducationItem{ID: uuid.NewString()}
	case domain.SectionSkills:
		return domain.SkillItem{ID: uuid.NewString()}
	case domain.SectionProjects:
		return domain.ProjectItem{ID: uuid.NewString()}
	default:
		return domain.CustomItem{ID: uuid.NewString()}
	}
}
