package v1

import (
	"net/http"

	"candidate-search-backend/internal/delivery/http/middleware"
	"candidate-search-backend/internal/delivery/http/response"
	"candidate-search-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FileHandler struct {
	files domain.FileService
}

func NewFileHandler(r *gin.RouterGroup, files domain.FileService) {
	handler := &FileHandler{files: files}

	group := r.Group("/files")
	{
		group.GET("", handler.List)
		group.POST("", handler.Upload)
		group.PUT("/:id", handler.Update)
		group.DELETE("/:id", handler.Delete)
	}
}

// Upload godoc
// @Summary      Upload a file
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        file         formData  file    true   "File content"
// @Param        type         formData  string  false  "File type (Resume, CoverLetter, ProfileAvatar, Certificate, PortfolioWork, Other)"
// @Param        description  formData  string  false  "Description"
// @Success      201  {object}  response.Response{data=domain.FileDTO}
// @Failure      400  {object}  response.Response
// @Router       /files [post]
// @Security     BearerAuth
func (h *FileHandler) Upload(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "A file is required", nil)
		return
	}

	fileType := domain.FileType(c.PostForm("type"))
	if fileType == "" {
		fileType = domain.FileOther
	}

	src, err := header.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Unable to read the uploaded file", nil)
		return
	}
	defer src.Close()

	res, err := h.files.Add(c.Request.Context(), userID, domain.FileUpload{
		Name:        header.Filename,
		Size:        header.Size,
		Type:        fileType,
		Description: c.PostForm("description"),
		Content:     src,
	})
	if err != nil {
		// Upload directory creation failed; the deployment is broken.
		c.Error(err)
		return
	}
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusCreated, "File uploaded", res.Value())
}

// List godoc
// @Summary      List the caller's files
// @Tags         files
// @Produce      json
// @Param        type  query     string  false  "Filter by file type"
// @Success      200   {object}  response.Response{data=[]domain.FileDTO}
// @Router       /files [get]
// @Security     BearerAuth
func (h *FileHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var res = h.files.GetByUserID(c.Request.Context(), userID)
	if fileType := c.Query("type"); fileType != "" {
		res = h.files.GetByUserIDAndType(c.Request.Context(), userID, domain.FileType(fileType))
	}
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "OK", res.Value())
}

// Update godoc
// @Summary      Update file metadata
// @Tags         files
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "File id"
// @Param        body  body      domain.FileUpdate  true  "Metadata; empty name/description stay unchanged"
// @Success      200   {object}  response.Response{data=domain.FileDTO}
// @Failure      404   {object}  response.Response
// @Router       /files/{id} [put]
// @Security     BearerAuth
func (h *FileHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	fileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid file id", nil)
		return
	}

	var update domain.FileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid file payload", err.Error())
		return
	}
	update.ID = fileID

	res := h.files.Update(c.Request.Context(), userID, update)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "File updated", res.Value())
}

// Delete godoc
// @Summary      Soft-delete a file
// @Tags         files
// @Produce      json
// @Param        id   path      string  true  "File id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /files/{id} [delete]
// @Security     BearerAuth
func (h *FileHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	fileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid file id", nil)
		return
	}

	res := h.files.Delete(c.Request.Context(), userID, fileID)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "File deleted", nil)
}
