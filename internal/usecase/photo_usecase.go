package usecase

import (
	"context"
	"errors"

	"go-resume-builder/internal/domain"
	"go-resume-builder/internal/editor"
	"go-resume-builder/pkg/apperror"
	"go-resume-builder/pkg/imaging"
	"go-resume-builder/pkg/logger"
	"go-resume-builder/pkg/storage"
)

// PhotoUsecase runs the profile-photo pipeline against an open editor
// session. The document is only touched after the processed image has
// been stored; any failure along the way leaves the photo field as it
// was.
type PhotoUsecase interface {
	SetPhoto(ctx context.Context, resumeID string, data []byte, crop imaging.Rect, zoom float64) (domain.ResumeContent, error)
	RemovePhoto(ctx context.Context, resumeID string) (domain.ResumeContent, error)
}

type photoUsecase struct {
	sessions *editor.Manager
	store    storage.Uploader
}

func NewPhotoUsecase(sessions *editor.Manager, store storage.Uploader) PhotoUsecase {
	return &photoUsecase{sessions: sessions, store: store}
}

func (u *photoUsecase) SetPhoto(ctx context.Context, resumeID string, data []byte, crop imaging.Rect, zoom float64) (domain.ResumeContent, error) {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return domain.ResumeContent{}, err
	}

	// Admission checks run before any decode work or storage call.
	if err := imaging.ValidateUpload(data); err != nil {
		if errors.Is(err, imaging.ErrTooLarge) {
			return domain.ResumeContent{}, apperror.PayloadTooLarge("Image exceeds the 5 MB limit")
		}
		return domain.ResumeContent{}, apperror.UnsupportedMedia("Only JPEG, PNG, GIF and WebP images are allowed")
	}
	if err := imaging.ValidateZoom(zoom); err != nil {
		return domain.ResumeContent{}, apperror.BadRequest("Zoom must be between 1 and 3")
	}

	session, err := u.sessions.Open(ctx, resumeID, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return domain.ResumeContent{}, apperror.NotFound("Resume not found")
		}
		return domain.ResumeContent{}, err
	}

	img, err := imaging.Decode(data)
	if err != nil {
		return domain.ResumeContent{}, apperror.UnsupportedMedia("Image could not be decoded")
	}
	cropped, err := imaging.Crop(img, crop)
	if err != nil {
		return domain.ResumeContent{}, apperror.BadRequest("Crop rectangle is outside the image")
	}
	encoded, err := imaging.EncodeJPEG(cropped)
	if err != nil {
		return domain.ResumeContent{}, apperror.Internal(err)
	}

	url, err := u.store.Upload(ctx, encoded, "image/jpeg")
	if err != nil {
		logger.Log.Error("Photo upload failed", "resume_id", resumeID, "error", err)
		return domain.ResumeContent{}, apperror.Internal(err)
	}

	doc := session.Apply(func(doc domain.ResumeContent) domain.ResumeContent {
		return editor.SetPhotoURL(doc, url)
	})
	return doc, nil
}

// RemovePhoto clears the photo field unconditionally. No storage call is
// made; orphaned objects are left for bucket lifecycle rules.
func (u *photoUsecase) RemovePhoto(ctx context.Context, resumeID string) (domain.ResumeContent, error) {
	userID, err := ownerFromCtx(ctx)
	if err != nil {
		return domain.ResumeContent{}, err
	}
	session, err := u.sessions.Open(ctx, resumeID, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return domain.ResumeContent{}, apperror.NotFound("Resume not found")
		}
		return domain.ResumeContent{}, err
	}
	doc := session.Apply(editor.ClearPhotoURL)
	return doc, nil
}
