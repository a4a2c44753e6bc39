package domain

import (
	"encoding/json"
	"strings"
)

// SectionType discriminates the item shape carried by a section.
type SectionType string

const (
	SectionExperience SectionType = "experience"
	SectionEducation  SectionType = "education"
	SectionSkills     SectionType = "skills"
	SectionProjects   SectionType = "projects"
	SectionCustom     SectionType = "custom"
)

// KnownSectionTypes lists every valid discriminator, in the order the
// editor offers them.
var KnownSectionTypes = []SectionType{
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCustom,
}

func (t SectionType) Valid() bool {
	switch t {
	case SectionExperience, SectionEducation, SectionSkills, SectionProjects, SectionCustom:
		return true
	}
	return false
}

// DefaultTitle is the display title a freshly added section starts with.
func (t SectionType) DefaultTitle() string {
	s := string(t)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// SectionItem is the closed set of entry shapes a section can hold.
// Every implementation carries a stable id assigned at creation time.
type SectionItem interface {
	EntityID() string
}

// ResumeSection is a named, typed, orderable container of items.
// Section ids are unique across a document and survive reordering.
type ResumeSection struct {
	ID        string        `json:"id"`
	Type      SectionType   `json:"type"`
	Title     string        `json:"title"`
	IsVisible bool          `json:"isVisible"`
	Columns   int           `json:"columns"`
	Items     []SectionItem `json:"items"`
}

// sectionJSON mirrors ResumeSection with raw items so the concrete item
// type can be picked after the discriminator is known.
type sectionJSON struct {
	ID        string            `json:"id"`
	Type      SectionType       `json:"type"`
	Title     string            `json:"title"`
	IsVisible bool              `json:"isVisible"`
	Columns   int               `json:"columns"`
	Items     []json.RawMessage `json:"items"`
}

// UnmarshalJSON decodes items into the concrete type implied by the
// section's discriminator. Unknown discriminators and unknown item
// fields are tolerated: legacy data decodes into custom items rather
// than failing the whole document.
func (s *ResumeSection) UnmarshalJSON(data []byte) error {
	var raw sectionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.ID = raw.ID
	s.Type = raw.Type
	s.Title = raw.Title
	s.IsVisible = raw.IsVisible
	s.Columns = raw.Columns
	s.Items = make([]SectionItem, 0, len(raw.Items))

	for _, itemRaw := range raw.Items {
		item, err := decodeSectionItem(raw.Type, itemRaw)
		if err != nil {
			return err
		}
		s.Items = append(s.Items, item)
	}
	return nil
}

// DecodeItems parses raw item payloads into the concrete type implied
// by the section discriminator. Used at the API boundary where item
// arrays arrive untyped.
func DecodeItems(t SectionType, raws []json.RawMessage) ([]SectionItem, error) {
	items := make([]SectionItem, 0, len(raws))
	for _, raw := range raws {
		item, err := decodeSectionItem(t, raw)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func decodeSectionItem(t SectionType, data []byte) (SectionItem, error) {
	switch t {
	case SectionExperience:
		var item ExperienceItem
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, err
		}
		return item, nil
	case SectionEducation:
		var item EducationItem
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, err
		}
		return item, nil
	case SectionSkills:
		var item SkillItem
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, err
		}
		return item, nil
	case SectionProjects:
		var item ProjectItem
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, err
		}
		return item, nil
	default:
		// Custom sections and anything we no longer recognize decode
		// into the free-form shape.
		var item CustomItem
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, err
		}
		return item, nil
	}
}
