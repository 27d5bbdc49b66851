package v1

import (
	"net/http"
	"strconv"

	"candidate-search-backend/internal/delivery/http/response"
	"candidate-search-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NewsHandler struct {
	news domain.NewsService
}

// NewNewsHandler registers the public feed routes on r and the management
// routes on admin.
func NewNewsHandler(r *gin.RouterGroup, admin *gin.RouterGroup, news domain.NewsService) {
	handler := &NewsHandler{news: news}

	feed := r.Group("/news")
	{
		feed.GET("", handler.Page)
		feed.GET("/:id", handler.GetByID)
		feed.GET("/:id/page-index", handler.PageIndex)
	}

	manage := admin.Group("/news")
	{
		manage.POST("", handler.Add)
		manage.PUT("/:id", handler.Update)
		manage.DELETE("/:id", handler.Delete)
	}
}

// Page godoc
// @Summary      Get a page of the news feed
// @Tags         news
// @Produce      json
// @Param        page       query     int  false  "1-based page index"
// @Param        page_size  query     int  false  "Page size"
// @Success      200  {object}  response.Response{data=domain.Paged[domain.NewsPostDTO]}
// @Router       /news [get]
func (h *NewsHandler) Page(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	res := h.news.GetPage(c.Request.Context(), page, pageSize)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "OK", res.Value())
}

// GetByID godoc
// @Summary      Get a single news post
// @Tags         news
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  response.Response{data=domain.NewsPostDTO}
// @Failure      404  {object}  response.Response
// @Router       /news/{id} [get]
func (h *NewsHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid news id", nil)
		return
	}

	res := h.news.GetByID(c.Request.Context(), id)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "OK", res.Value())
}

// PageIndex godoc
// @Summary      Find the page a post appears on
// @Description  Returns the 1-based page index that contains the post for the given page size, for deep-linking into the feed.
// @Tags         news
// @Produce      json
// @Param        id         path      string  true   "Post id"
// @Param        page_size  query     int     false  "Page size"
// @Success      200  {object}  response.Response{data=int}
// @Failure      404  {object}  response.Response
// @Router       /news/{id}/page-index [get]
func (h *NewsHandler) PageIndex(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid news id", nil)
		return
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	res := h.news.GetPageIndexContaining(c.Request.Context(), id, pageSize)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "OK", res.Value())
}

// Add godoc
// @Summary      Publish a news post
// @Tags         news
// @Accept       json
// @Produce      json
// @Param        body  body      domain.NewsPostDTO  true  "Post content"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /admin/news [post]
// @Security     BearerAuth
func (h *NewsHandler) Add(c *gin.Context) {
	var dto domain.NewsPostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid news payload", err.Error())
		return
	}

	res := h.news.Add(c.Request.Context(), dto)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusCreated, "News post published", nil)
}

// Update godoc
// @Summary      Update a news post
// @Tags         news
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Post id"
// @Param        body  body      domain.NewsPostDTO  true  "New content"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/news/{id} [put]
// @Security     BearerAuth
func (h *NewsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid news id", nil)
		return
	}

	var dto domain.NewsPostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid news payload", err.Error())
		return
	}
	dto.ID = id

	res := h.news.Update(c.Request.Context(), dto)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "News post updated", nil)
}

// Delete godoc
// @Summary      Delete a news post
// @Tags         news
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  response.Response
// @Router       /admin/news/{id} [delete]
// @Security     BearerAuth
func (h *NewsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid news id", nil)
		return
	}

	res := h.news.Delete(c.Request.Context(), id)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "News post deleted", nil)
}
