package v1

import (
	"net/http"

	"candidate-search-backend/internal/delivery/http/middleware"
	"candidate-search-backend/internal/delivery/http/response"
	"candidate-search-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidates domain.CandidateProfileService
}

func NewCandidateHandler(r *gin.RouterGroup, candidates domain.CandidateProfileService) {
	handler := &CandidateHandler{candidates: candidates}

	group := r.Group("/candidates")
	{
		group.GET("/me", handler.GetProfile)
		group.PUT("/me", handler.UpsertProfile)
		group.POST("/me/skill-validations", handler.ValidateSkill)
	}
}

// GetProfile godoc
// @Summary      Get the caller's candidate profile
// @Description  Returns the profile with every owned collection loaded.
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CandidateDetails}
// @Failure      404  {object}  response.Response
// @Router       /candidates/me [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	res := h.candidates.GetByUserID(c.Request.Context(), userID)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "OK", res.Value())
}

// UpsertProfile godoc
// @Summary      Create or replace the caller's candidate profile
// @Description  The payload replaces the profile and its collections wholesale; collection ids are reassigned.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CandidateDetails  true  "Full profile"
// @Success      200   {object}  response.Response{data=domain.CandidateDetails}
// @Failure      400   {object}  response.Response
// @Router       /candidates/me [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpsertProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var details domain.CandidateDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid profile payload", err.Error())
		return
	}

	res := h.candidates.Upsert(c.Request.Context(), userID, details)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "Profile saved", res.Value())
}

// ValidateSkill godoc
// @Summary      Link a skill to a corroborating test result
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      domain.SkillValidation  true  "Skill and test result ids"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /candidates/me/skill-validations [post]
// @Security     BearerAuth
func (h *CandidateHandler) ValidateSkill(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var v domain.SkillValidation
	if err := c.ShouldBindJSON(&v); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}

	res := h.candidates.ValidateSkill(c.Request.Context(), userID, v)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "Skill validated", nil)
}
