package editor_test

import (
	"testing"

	"go-resume-builder/internal/domain"
	"go-resume-builder/internal/editor"

	"github.com/stretchr/testify/assert"
)

func docWithSections(types ...domain.SectionType) domain.ResumeContent {
	doc := domain.DefaultContent()
	for _, t := range types {
		doc, _, _ = editor.AddSection(doc, t)
	}
	return doc
}

func sectionTypes(doc domain.ResumeContent) []domain.SectionType {
	out := make([]domain.SectionType, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		out = append(out, s.Type)
	}
	return out
}

func TestAddSection(t *testing.T) {
	t.Run("Should create a visible single-column section with defaults", func(t *testing.T) {
		doc, id, added := editor.AddSection(domain.DefaultContent(), domain.SectionExperience)
		assert.True(t, added)
		assert.NotEmpty(t, id)
		assert.Len(t, doc.Sections, 1)
		s := doc.Sections[0]
		assert.Equal(t, "Experience", s.Title)
		assert.True(t, s.IsVisible)
		assert.Equal(t, 1, s.Columns)
		assert.Empty(t, s.Items)
	})

	t.Run("Should return the existing section instead of adding a duplicate", func(t *testing.T) {
		doc, first, _ := editor.AddSection(domain.DefaultContent(), domain.SectionSkills)
		doc2, second, added := editor.AddSection(doc, domain.SectionSkills)
		assert.False(t, added)
		assert.Equal(t, first, second)
		assert.Len(t, doc2.Sections, 1)
	})

	t.Run("Should allow multiple custom sections", func(t *testing.T) {
		doc, firstID, _ := editor.AddSection(domain.DefaultContent(), domain.SectionCustom)
		doc, secondID, added := editor.AddSection(doc, domain.SectionCustom)
		assert.True(t, added)
		assert.NotEqual(t, firstID, secondID)
		assert.Len(t, doc.Sections, 2)
	})

	t.Run("Should leave the document unchanged for an unknown type", func(t *testing.T) {
		in := docWithSections(domain.SectionExperience)
		out, id, added := editor.AddSection(in, domain.SectionType("hobbies"))
		assert.False(t, added)
		assert.Empty(t, id)
		assert.Equal(t, in, out)
	})

	t.Run("Should not mutate the input document", func(t *testing.T) {
		in := domain.DefaultContent()
		_, _, _ = editor.AddSection(in, domain.SectionEducation)
		assert.Empty(t, in.Sections)
	})
}

func TestDeleteSection(t *testing.T) {
	t.Run("Should remove the section and preserve order of the rest", func(t *testing.T) {
		doc := docWithSections(domain.SectionExperience, domain.SectionEducation, domain.SectionSkills)
		out := editor.DeleteSection(doc, doc.Sections[1].ID)
		assert.Equal(t, []domain.SectionType{domain.SectionExperience, domain.SectionSkills}, sectionTypes(out))
	})

	t.Run("Should be a no-op for an absent id", func(t *testing.T) {
		doc := docWithSections(domain.SectionExperience)
		out := editor.DeleteSection(doc, "missing")
		assert.Equal(t, doc, out)
	})
}

func TestReorderSections(t *testing.T) {
	doc := docWithSections(domain.SectionExperience, domain.SectionEducation, domain.SectionSkills)

	t.Run("Should move the section and keep everything else", func(t *testing.T) {
		out, err := editor.ReorderSections(doc, 0, 2)
		assert.NoError(t, err)
		assert.Equal(t, []domain.SectionType{domain.SectionEducation, domain.SectionSkills, domain.SectionExperience}, sectionTypes(out))
		assert.Len(t, out.Sections, 3)
	})

	t.Run("Should be invertible", func(t *testing.T) {
		moved, err := editor.ReorderSections(doc, 0, 2)
		assert.NoError(t, err)
		back, err := editor.ReorderSections(moved, 2, 0)
		assert.NoError(t, err)
		assert.Equal(t, sectionTypes(doc), sectionTypes(back))
	})

	t.Run("Should error on out-of-range indices", func(t *testing.T) {
		_, err := editor.ReorderSections(doc, 0, 5)
		assert.ErrorIs(t, err, editor.ErrIndexOutOfRange)
		_, err = editor.ReorderSections(doc, -1, 0)
		assert.ErrorIs(t, err, editor.ErrIndexOutOfRange)
	})

	t.Run("Should not mutate the input document", func(t *testing.T) {
		before := sectionTypes(doc)
		_, _ = editor.ReorderSections(doc, 0, 2)
		assert.Equal(t, before, sectionTypes(doc))
	})
}

func TestReorderItems(t *testing.T) {
	items := []domain.SectionItem{
		domain.SkillItem{ID: "a", Name: "Go"},
		domain.SkillItem{ID: "b", Name: "SQL"},
		domain.SkillItem{ID: "c", Name: "Redis"},
	}

	t.Run("Should move the item without loss or duplication", func(t *testing.T) {
		out, err := editor.ReorderItems(items, 2, 0)
		assert.NoError(t, err)
		ids := []string{}
		for _, it := range out {
			ids = append(ids, it.EntityID())
		}
		assert.Equal(t, []string{"c", "a", "b"}, ids)
	})

	t.Run("Should error on out-of-range and leave input untouched", func(t *testing.T) {
		_, err := editor.ReorderItems(items, 0, 3)
		assert.ErrorIs(t, err, editor.ErrIndexOutOfRange)
		assert.Equal(t, "a", items[0].EntityID())
	})
}

func TestRemoveItem(t *testing.T) {
	items := []domain.SectionItem{
		domain.SkillItem{ID: "a"},
		domain.SkillItem{ID: "b"},
	}

	t.Run("Should drop the element at the index", func(t *testing.T) {
		out := editor.RemoveItem(items, 0)
		assert.Len(t, out, 1)
		assert.Equal(t, "b", out[0].EntityID())
		assert.Len(t, items, 2)
	})

	t.Run("Should be a no-op out of range", func(t *testing.T) {
		assert.Len(t, editor.RemoveItem(items, 5), 2)
		assert.Len(t, editor.RemoveItem(items, -1), 2)
	})
}

func TestSetSectionItems(t *testing.T) {
	t.Run("Should replace the item list wholesale", func(t *testing.T) {
		doc := docWithSections(domain.SectionSkills)
		items := []domain.SectionItem{domain.SkillItem{ID: "s1", Name: "Go", Level: domain.SkillExpert}}
		out, err := editor.SetSectionItems(doc, doc.Sections[0].ID, items)
		assert.NoError(t, err)
		assert.Len(t, out.Sections[0].Items, 1)
		assert.Empty(t, doc.Sections[0].Items)
	})

	t.Run("Should store an empty list for nil items", func(t *testing.T) {
		doc := docWithSections(domain.SectionSkills)
		out, err := editor.SetSectionItems(doc, doc.Sections[0].ID, nil)
		assert.NoError(t, err)
		assert.NotNil(t, out.Sections[0].Items)
		assert.Empty(t, out.Sections[0].Items)
	})

	t.Run("Should error when the section is missing", func(t *testing.T) {
		doc := docWithSections(domain.SectionSkills)
		_, err := editor.SetSectionItems(doc, "missing", nil)
		assert.ErrorIs(t, err, editor.ErrSectionNotFound)
	})
}

func TestNewDocumentFlow(t *testing.T) {
	doc := domain.DefaultContent()
	assert.Empty(t, doc.Sections)

	doc, sectionID, added := editor.AddSection(doc, domain.SectionExperience)
	assert.True(t, added)

	item := editor.NewItem(domain.SectionExperience)
	exp, ok := item.(domain.ExperienceItem)
	assert.True(t, ok)
	assert.NotEmpty(t, exp.ID)
	assert.False(t, exp.CurrentlyWorking)
	assert.Empty(t, exp.Company)

	doc, err := editor.SetSectionItems(doc, sectionID, editor.AppendItem(doc.Sections[0].Items, item))
	assert.NoError(t, err)
	assert.Len(t, doc.Sections[0].Items, 1)

	// Reordering a single section onto itself changes nothing.
	same, err := editor.ReorderSections(doc, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, doc, same)
}

func TestUpdatePersonalDetail(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("Should only touch the provided fields", func(t *testing.T) {
		doc := domain.DefaultContent()
		doc.PersonalDetail.FullName = "Ada Lovelace"
		doc.PersonalDetail.Email = "ada@example.com"

		out := editor.UpdatePersonalDetail(doc, editor.PersonalDetailPatch{Headline: str("Engineer")})
		assert.Equal(t, "Engineer", out.PersonalDetail.Headline)
		assert.Equal(t, "Ada Lovelace", out.PersonalDetail.FullName)
		assert.Equal(t, "ada@example.com", out.PersonalDetail.Email)
	})

	t.Run("Should preserve sibling social links when patching one key", func(t *testing.T) {
		doc := domain.DefaultContent()
		doc.PersonalDetail.SocialLinks.GitHub = "https://github.com/ada"
		doc.PersonalDetail.SocialLinks.LinkedIn = "https://linkedin.com/in/ada"

		out := editor.UpdatePersonalDetail(doc, editor.PersonalDetailPatch{
			SocialLinks: &editor.SocialLinksPatch{Twitter: str("https://twitter.com/ada")},
		})
		assert.Equal(t, "https://twitter.com/ada", out.PersonalDetail.SocialLinks.Twitter)
		assert.Equal(t, "https://github.com/ada", out.PersonalDetail.SocialLinks.GitHub)
		assert.Equal(t, "https://linkedin.com/in/ada", out.PersonalDetail.SocialLinks.LinkedIn)
	})

	t.Run("Should allow clearing a field with an empty string", func(t *testing.T) {
		doc := domain.DefaultContent()
		doc.PersonalDetail.Phone = "123"
		out := editor.UpdatePersonalDetail(doc, editor.PersonalDetailPatch{Phone: str("")})
		assert.Empty(t, out.PersonalDetail.Phone)
	})
}
