package v1

import (
	"encoding/json"
	"net/http"

	"go-resume-builder/internal/delivery/http/response"
	"go-resume-builder/internal/domain"
	"go-resume-builder/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC usecase.ResumeUsecase
}

func NewResumeHandler(r *gin.RouterGroup, resumeUC usecase.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resumes := r.Group("/resumes")
	{
		resumes.POST("", handler.Create)
		resumes.GET("", handler.List)
		resumes.POST("/import", handler.Import)
		resumes.GET("/:id", handler.Get)
		resumes.PUT("/:id", handler.Update)
		resumes.DELETE("/:id", handler.Delete)
	}
}

// UpdateResumeRequest is the full-document update payload.
type UpdateResumeRequest struct {
	Title   string               `json:"title"`
	Content domain.ResumeContent `json:"content"`
}

// ImportResumeRequest carries raw content so it can be schema-validated
// before the domain decoder sees it.
type ImportResumeRequest struct {
	Title   string          `json:"title"`
	Content json.RawMessage `json:"content"`
}

// Create godoc
// @Summary      Create a resume
// @Description  Create a new resume with default content for the current user
// @Tags         resumes
// @Produce      json
// @Success      201  {object}  response.Response{data=domain.Resume}
// @Failure      401  {object}  response.Response
// @Router       /resumes [post]
// @Security     BearerAuth
func (h *ResumeHandler) Create(c *gin.Context) {
	resume, err := h.resumeUC.CreateResume(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume created", resume)
}

// List godoc
// @Summary      List resumes
// @Description  List the current user's resumes, most recently updated first
// @Tags         resumes
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ResumeSummary}
// @Failure      401  {object}  response.Response
// @Router       /resumes [get]
// @Security     BearerAuth
func (h *ResumeHandler) List(c *gin.Context) {
	summaries, err := h.resumeUC.ListResumes(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resumes retrieved", summaries)
}

// Get godoc
// @Summary      Get a resume
// @Description  Get a single resume with its full content
// @Tags         resumes
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response{data=domain.Resume}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [get]
// @Security     BearerAuth
func (h *ResumeHandler) Get(c *gin.Context) {
	resume, err := h.resumeUC.GetResume(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume retrieved", resume)
}

// Update godoc
// @Summary      Update a resume
// @Description  Replace a resume's content and title
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Resume ID"
// @Param        request  body      UpdateResumeRequest  true  "New content and title"
// @Success      200      {object}  response.Response{data=domain.ResumeSummary}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /resumes/{id} [put]
// @Security     BearerAuth
func (h *ResumeHandler) Update(c *gin.Context) {
	var req UpdateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	summary, err := h.resumeUC.UpdateResume(c, c.Param("id"), req.Content, req.Title)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume updated", summary)
}

// Delete godoc
// @Summary      Delete a resume
// @Description  Delete a resume and discard any open editor state
// @Tags         resumes
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [delete]
// @Security     BearerAuth
func (h *ResumeHandler) Delete(c *gin.Context) {
	if err := h.resumeUC.DeleteResume(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume deleted", nil)
}

// Import godoc
// @Summary      Import a resume
// @Description  Create a resume from exported content, validated against the document schema
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        request  body      ImportResumeRequest  true  "Title and exported content"
// @Success      201      {object}  response.Response{data=domain.Resume}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /resumes/import [post]
// @Security     BearerAuth
func (h *ResumeHandler) Import(c *gin.Context) {
	var req ImportResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}
	if len(req.Content) == 0 {
		response.Error(c, http.StatusBadRequest, "Content is required", nil)
		return
	}

	resume, err := h.resumeUC.ImportResume(c, req.Title, req.Content)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume imported", resume)
}
