package v1

import (
	"encoding/json"
	"net/http"

	"go-resume-builder/internal/delivery/http/response"
	"go-resume-builder/internal/domain"
	"go-resume-builder/internal/editor"
	"go-resume-builder/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EditorHandler exposes the open-editor operations. Every route acts on
// the live in-memory session for the resume; nothing here persists until
// an explicit save.
type EditorHandler struct {
	resumeUC usecase.ResumeUsecase
}

func NewEditorHandler(r *gin.RouterGroup, resumeUC usecase.ResumeUsecase) {
	handler := &EditorHandler{resumeUC: resumeUC}

	editorRoutes := r.Group("/resumes/:id")
	{
		editorRoutes.POST("/sections", handler.AddSection)
		editorRoutes.DELETE("/sections/:sectionId", handler.DeleteSection)
		editorRoutes.POST("/sections/:sectionId/items", handler.AddItem)
		editorRoutes.PUT("/sections/:sectionId/items", handler.SetItems)
		editorRoutes.PATCH("/personal-details", handler.UpdatePersonalDetails)
		editorRoutes.POST("/reorder", handler.Reorder)
		editorRoutes.PUT("/title", handler.SetTitle)
		editorRoutes.POST("/save", handler.Save)
		editorRoutes.GET("/status", handler.Status)
		editorRoutes.DELETE("/editor", handler.CloseEditor)
	}
}

type AddSectionRequest struct {
	Type domain.SectionType `json:"type" binding:"required"`
}

// AddSectionResponse reports where the section ended up. When a section
// of the requested type already existed, added is false and sectionId
// points at the existing one so the client can focus it.
type AddSectionResponse struct {
	SectionID string               `json:"sectionId"`
	Added     bool                 `json:"added"`
	Content   domain.ResumeContent `json:"content"`
}

type SetItemsRequest struct {
	Items []json.RawMessage `json:"items"`
}

type SetTitleRequest struct {
	Title string `json:"title"`
}

type EditorStatusResponse struct {
	Status editor.SaveStatus `json:"status"`
}

// AddSection godoc
// @Summary      Add a section
// @Description  Add a section of the given type. Non-custom types are added at most once; the existing section is returned instead.
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        id       path      string             true  "Resume ID"
// @Param        request  body      AddSectionRequest  true  "Section type"
// @Success      200      {object}  response.Response{data=AddSectionResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /resumes/{id}/sections [post]
// @Security     BearerAuth
func (h *EditorHandler) AddSection(c *gin.Context) {
	var req AddSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	doc, sectionID, added, err := h.resumeUC.AddSection(c, c.Param("id"), req.Type)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Section added", AddSectionResponse{
		SectionID: sectionID,
		Added:     added,
		Content:   doc,
	})
}

// DeleteSection godoc
// @Summary      Delete a section
// @Description  Remove a section from the document. Deleting an absent section is a no-op.
// @Tags         editor
// @Produce      json
// @Param        id         path      string  true  "Resume ID"
// @Param        sectionId  path      string  true  "Section ID"
// @Success      200        {object}  response.Response{data=domain.ResumeContent}
// @Failure      401        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /resumes/{id}/sections/{sectionId} [delete]
// @Security     BearerAuth
func (h *EditorHandler) DeleteSection(c *gin.Context) {
	doc, err := h.resumeUC.DeleteSection(c, c.Param("id"), c.Param("sectionId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Section deleted", doc)
}

// AddItem godoc
// @Summary      Add a blank item
// @Description  Append a blank entry to a section, typed by the section's discriminator
// @Tags         editor
// @Produce      json
// @Param        id         path      string  true  "Resume ID"
// @Param        sectionId  path      string  true  "Section ID"
// @Success      200        {object}  response.Response{data=domain.ResumeContent}
// @Failure      401        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /resumes/{id}/sections/{sectionId}/items [post]
// @Security     BearerAuth
func (h *EditorHandler) AddItem(c *gin.Context) {
	doc, err := h.resumeUC.AddItem(c, c.Param("id"), c.Param("sectionId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Item added", doc)
}

// SetItems godoc
// @Summary      Replace a section's items
// @Description  Replace the item list of a section wholesale, as submitted by a section form
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        id         path      string           true  "Resume ID"
// @Param        sectionId  path      string           true  "Section ID"
// @Param        request    body      SetItemsRequest  true  "New items"
// @Success      200        {object}  response.Response{data=domain.ResumeContent}
// @Failure      400        {object}  response.Response
// @Failure      401        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /resumes/{id}/sections/{sectionId}/items [put]
// @Security     BearerAuth
func (h *EditorHandler) SetItems(c *gin.Context) {
	var req SetItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	doc, err := h.resumeUC.SetSectionItems(c, c.Param("id"), c.Param("sectionId"), req.Items)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Items updated", doc)
}

// UpdatePersonalDetails godoc
// @Summary      Patch personal details
// @Description  Merge a partial update into the header block. Omitted fields are untouched; social links merge per key.
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Resume ID"
// @Param        request  body      editor.PersonalDetailPatch  true  "Fields to update"
// @Success      200      {object}  response.Response{data=domain.ResumeContent}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /resumes/{id}/personal-details [patch]
// @Security     BearerAuth
func (h *EditorHandler) UpdatePersonalDetails(c *gin.Context) {
	var patch editor.PersonalDetailPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	doc, err := h.resumeUC.UpdatePersonalDetails(c, c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Personal details updated", doc)
}

// Reorder godoc
// @Summary      Apply a drag-and-drop result
// @Description  Reorder sections or items from a drop event. Cancelled or stale drops leave the document unchanged.
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        id       path      string            true  "Resume ID"
// @Param        request  body      editor.DropEvent  true  "Drop event"
// @Success      200      {object}  response.Response{data=domain.ResumeContent}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /resumes/{id}/reorder [post]
// @Security     BearerAuth
func (h *EditorHandler) Reorder(c *gin.Context) {
	var ev editor.DropEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	doc, err := h.resumeUC.Reorder(c, c.Param("id"), ev)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reorder applied", doc)
}

// SetTitle godoc
// @Summary      Rename a resume
// @Description  Set the resume title in the open editor. Persisted on the next save.
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        id       path      string           true  "Resume ID"
// @Param        request  body      SetTitleRequest  true  "New title"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /resumes/{id}/title [put]
// @Security     BearerAuth
func (h *EditorHandler) SetTitle(c *gin.Context) {
	var req SetTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	if err := h.resumeUC.SetResumeTitle(c, c.Param("id"), req.Title); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Title updated", nil)
}

// Save godoc
// @Summary      Save the open editor
// @Description  Persist the full current document snapshot
// @Tags         editor
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response{data=domain.ResumeSummary}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id}/save [post]
// @Security     BearerAuth
func (h *EditorHandler) Save(c *gin.Context) {
	summary, err := h.resumeUC.SaveResume(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume saved", summary)
}

// Status godoc
// @Summary      Get the save status
// @Description  Report the editor's save indicator: idle, saving, or saved
// @Tags         editor
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response{data=EditorStatusResponse}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id}/status [get]
// @Security     BearerAuth
func (h *EditorHandler) Status(c *gin.Context) {
	status, err := h.resumeUC.EditorStatus(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Editor status", EditorStatusResponse{Status: status})
}

// CloseEditor godoc
// @Summary      Close the editor
// @Description  Discard the in-memory editor session without saving
// @Tags         editor
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /resumes/{id}/editor [delete]
// @Security     BearerAuth
func (h *EditorHandler) CloseEditor(c *gin.Context) {
	if err := h.resumeUC.CloseEditor(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Editor closed", nil)
}
