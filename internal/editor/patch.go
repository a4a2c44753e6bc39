package editor

import "go-resume-builder/internal/domain"

// SocialLinksPatch updates individual link keys. Nil fields leave the
// existing value alone: patching one key must preserve its siblings.
type SocialLinksPatch struct {
	LinkedIn  *string `json:"linkedin"`
	GitHub    *string `json:"github"`
	Portfolio *string `json:"portfolio"`
	Twitter   *string `json:"twitter"`
	Website   *string `json:"website"`
}

// PersonalDetailPatch is a field-level partial update of the header
// block. Nil fields are untouched; the social-links patch merges
// per-key rather than replacing the object wholesale.
type PersonalDetailPatch struct {
	FullName    *string           `json:"fullName"`
	Email       *string           `json:"email"`
	Phone       *string           `json:"phone"`
	Headline    *string           `json:"headline"`
	Address     *string           `json:"address"`
	PhotoURL    *string           `json:"photoUrl"`
	SocialLinks *SocialLinksPatch `json:"socialLinks"`
}

// UpdatePersonalDetail merges a patch into the document's header block.
func UpdatePersonalDetail(doc domain.ResumeContent, patch PersonalDetailPatch) domain.ResumeContent {
	pd := doc.PersonalDetail

	if patch.FullName != nil {
		pd.FullName = *patch.FullName
	}
	if patch.Email != nil {
		pd.Email = *patch.Email
	}
	if patch.Phone != nil {
		pd.Phone = *patch.Phone
	}
	if patch.Headline != nil {
		pd.Headline = *patch.Headline
	}
	if patch.Address != nil {
		pd.Address = *patch.Address
	}
	if patch.PhotoURL != nil {
		pd.PhotoURL = *patch.PhotoURL
	}
	if patch.SocialLinks != nil {
		links := pd.SocialLinks
		if patch.SocialLinks.LinkedIn != nil {
			links.LinkedIn = *patch.SocialLinks.LinkedIn
		}
		if patch.SocialLinks.GitHub != nil {
			links.GitHub = *patch.SocialLinks.GitHub
		}
		if patch.SocialLinks.Portfolio != nil {
			links.Portfolio = *patch.SocialLinks.Portfolio
		}
		if patch.SocialLinks.Twitter != nil {
			links.Twitter = *patch.SocialLinks.Twitter
		}
		if patch.SocialLinks.Website != nil {
			links.Website = *patch.SocialLinks.Website
		}
		pd.SocialLinks = links
	}

	doc.PersonalDetail = pd
	return doc
}

// SetPhotoURL is the single mutation the photo pipeline resolves to on
// a successful upload.
func SetPhotoURL(doc domain.ResumeContent, url string) domain.ResumeContent {
	doc.PersonalDetail.PhotoURL = url
	return doc
}

// ClearPhotoURL removes the photo reference. It never involves the
// upload service.
func ClearPhotoURL(doc domain.ResumeContent) domain.ResumeContent {
	doc.PersonalDetail.PhotoURL = ""
	return doc
}
