package v1

import (
	"net/http"

	"candidate-search-backend/internal/delivery/http/middleware"
	"candidate-search-backend/internal/delivery/http/response"
	"candidate-search-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RecruiterHandler struct {
	recruiters domain.RecruiterProfileService
}

func NewRecruiterHandler(r *gin.RouterGroup, recruiters domain.RecruiterProfileService) {
	handler := &RecruiterHandler{recruiters: recruiters}

	group := r.Group("/recruiters")
	{
		group.GET("/me", handler.GetProfile)
		group.PUT("/me", handler.UpsertProfile)
		group.GET("/me/favorites", handler.ListFavorites)
		group.POST("/me/favorites", handler.AddFavorite)
		group.DELETE("/me/favorites/:candidateId", handler.RemoveFavorite)
	}
}

// GetProfile godoc
// @Summary      Get the caller's recruiter profile
// @Tags         recruiters
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.RecruiterProfile}
// @Failure      404  {object}  response.Response
// @Router       /recruiters/me [get]
// @Security     BearerAuth
func (h *RecruiterHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	res := h.recruiters.GetByUserID(c.Request.Context(), userID)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "OK", res.Value())
}

// UpsertProfile godoc
// @Summary      Create or replace the caller's recruiter profile
// @Tags         recruiters
// @Accept       json
// @Produce      json
// @Param        body  body      domain.RecruiterProfile  true  "Profile"
// @Success      200   {object}  response.Response{data=domain.RecruiterProfile}
// @Failure      400   {object}  response.Response
// @Router       /recruiters/me [put]
// @Security     BearerAuth
func (h *RecruiterHandler) UpsertProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var profile domain.RecruiterProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid profile payload", err.Error())
		return
	}

	res := h.recruiters.Upsert(c.Request.Context(), userID, profile)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "Profile saved", res.Value())
}

// ListFavorites godoc
// @Summary      List bookmarked candidates
// @Tags         recruiters
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Favorite}
// @Router       /recruiters/me/favorites [get]
// @Security     BearerAuth
func (h *RecruiterHandler) ListFavorites(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	res := h.recruiters.ListFavorites(c.Request.Context(), userID)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "OK", res.Value())
}

// AddFavorite godoc
// @Summary      Bookmark a candidate
// @Tags         recruiters
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Favorite  true  "Candidate id and optional notes"
// @Success      201   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /recruiters/me/favorites [post]
// @Security     BearerAuth
func (h *RecruiterHandler) AddFavorite(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var fav domain.Favorite
	if err := c.ShouldBindJSON(&fav); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid favorite payload", err.Error())
		return
	}

	res := h.recruiters.AddFavorite(c.Request.Context(), userID, fav)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusCreated, "Favorite added", nil)
}

// RemoveFavorite godoc
// @Summary      Remove a bookmarked candidate
// @Tags         recruiters
// @Produce      json
// @Param        candidateId  path      string  true  "Candidate profile id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recruiters/me/favorites/{candidateId} [delete]
// @Security     BearerAuth
func (h *RecruiterHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	candidateID, err := uuid.Parse(c.Param("candidateId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid candidate id", nil)
		return
	}

	res := h.recruiters.RemoveFavorite(c.Request.Context(), userID, candidateID)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "Favorite removed", nil)
}
