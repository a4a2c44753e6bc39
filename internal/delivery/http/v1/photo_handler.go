package v1

import (
	"io"
	"net/http"
	"strconv"

	"go-resume-builder/internal/delivery/http/response"
	"go-resume-builder/internal/usecase"
	"go-resume-builder/pkg/imaging"

	"github.com/gin-gonic/gin"
)

type PhotoHandler struct {
	photoUC usecase.PhotoUsecase
}

func NewPhotoHandler(r *gin.RouterGroup, photoUC usecase.PhotoUsecase) {
	handler := &PhotoHandler{photoUC: photoUC}

	photos := r.Group("/resumes/:id/photo")
	{
		photos.POST("", handler.Upload)
		photos.DELETE("", handler.Remove)
	}
}

// Upload godoc
// @Summary      Upload a profile photo
// @Description  Upload, crop and attach a profile photo. The file is validated by magic bytes, cropped server-side and stored as JPEG.
// @Tags         photo
// @Accept       multipart/form-data
// @Produce      json
// @Param        id      path      string  true   "Resume ID"
// @Param        photo   formData  file    true   "Image file (jpeg, png, gif, webp; max 5 MB)"
// @Param        x       formData  int     true   "Crop origin X in source pixels"
// @Param        y       formData  int     true   "Crop origin Y in source pixels"
// @Param        width   formData  int     true   "Crop width in source pixels"
// @Param        height  formData  int     true   "Crop height in source pixels"
// @Param        zoom    formData  number  false  "Zoom level used by the crop UI (1-3)"
// @Success      200     {object}  response.Response{data=domain.ResumeContent}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      413     {object}  response.Response
// @Failure      415     {object}  response.Response
// @Router       /resumes/{id}/photo [post]
// @Security     BearerAuth
func (h *PhotoHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Photo file is required", nil)
		return
	}

	// Cheap reject before reading the body into memory.
	if fileHeader.Size > imaging.MaxUploadBytes {
		response.Error(c, http.StatusRequestEntityTooLarge, "Image exceeds the 5 MB limit", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to read photo file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, imaging.MaxUploadBytes+1))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to read photo file", nil)
		return
	}

	crop, err := cropFromForm(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Crop coordinates must be integers", nil)
		return
	}

	zoom := 1.0
	if zoomStr := c.PostForm("zoom"); zoomStr != "" {
		zoom, err = strconv.ParseFloat(zoomStr, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Zoom must be a number", nil)
			return
		}
	}

	doc, err := h.photoUC.SetPhoto(c, c.Param("id"), data, crop, zoom)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Photo updated", doc)
}

// Remove godoc
// @Summary      Remove the profile photo
// @Description  Clear the photo reference from the document. The stored file is not deleted.
// @Tags         photo
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response{data=domain.ResumeContent}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id}/photo [delete]
// @Security     BearerAuth
func (h *PhotoHandler) Remove(c *gin.Context) {
	doc, err := h.photoUC.RemovePhoto(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Photo removed", doc)
}

func cropFromForm(c *gin.Context) (imaging.Rect, error) {
	var rect imaging.Rect
	var err error

	if rect.X, err = strconv.Atoi(c.PostForm("x")); err != nil {
		return rect, err
	}
	if rect.Y, err = strconv.Atoi(c.PostForm("y")); err != nil {
		return rect, err
	}
	if rect.Width, err = strconv.Atoi(c.PostForm("width")); err != nil {
		return rect, err
	}
	if rect.Height, err = strconv.Atoi(c.PostForm("height")); err != nil {
		return rect, err
	}
	return rect, nil
}
