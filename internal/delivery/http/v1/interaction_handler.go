package v1

import (
	"net/http"

	"candidate-search-backend/internal/delivery/http/middleware"
	"candidate-search-backend/internal/delivery/http/response"
	"candidate-search-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InteractionHandler struct {
	interactions domain.InteractionService
}

// NewInteractionHandler registers recruiter-side routes on recruiter and
// candidate-side routes on candidate.
func NewInteractionHandler(recruiter, candidate *gin.RouterGroup, interactions domain.InteractionService) {
	handler := &InteractionHandler{interactions: interactions}

	rg := recruiter.Group("/interactions")
	{
		rg.POST("", handler.Create)
		rg.GET("", handler.ListForRecruiter)
		rg.POST("/:id/send", handler.Send)
		rg.POST("/:id/advance", handler.Advance)
	}

	cg := candidate.Group("/invitations")
	{
		cg.GET("", handler.ListForCandidate)
		cg.POST("/:id/respond", handler.Respond)
	}
}

type createInteractionRequest struct {
	CandidateID uuid.UUID `json:"candidate_id" binding:"required"`
	Body        string    `json:"body"`
}

type advanceInteractionRequest struct {
	Status domain.InteractionStatus `json:"status" binding:"required,oneof=InterviewScheduled OfferSent Hired Rejected"`
}

// Create godoc
// @Summary      Draft an invitation to a candidate
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Param        body  body      createInteractionRequest  true  "Candidate and invitation text"
// @Success      201   {object}  response.Response{data=domain.Interaction}
// @Router       /interactions [post]
// @Security     BearerAuth
func (h *InteractionHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var req createInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}

	res := h.interactions.Create(c.Request.Context(), userID, req.CandidateID, req.Body)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusCreated, "Interaction created", res.Value())
}

// Send godoc
// @Summary      Send a drafted invitation
// @Tags         interactions
// @Produce      json
// @Param        id   path      string  true  "Interaction id"
// @Success      200  {object}  response.Response{data=domain.Interaction}
// @Failure      404  {object}  response.Response
// @Router       /interactions/{id}/send [post]
// @Security     BearerAuth
func (h *InteractionHandler) Send(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	interactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid interaction id", nil)
		return
	}

	res := h.interactions.Send(c.Request.Context(), userID, interactionID)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "Invitation sent", res.Value())
}

// Advance godoc
// @Summary      Move an interaction to the next hiring stage
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Interaction id"
// @Param        body  body      advanceInteractionRequest  true  "Target status"
// @Success      200   {object}  response.Response{data=domain.Interaction}
// @Failure      404   {object}  response.Response
// @Router       /interactions/{id}/advance [post]
// @Security     BearerAuth
func (h *InteractionHandler) Advance(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	interactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid interaction id", nil)
		return
	}

	var req advanceInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}

	res := h.interactions.Advance(c.Request.Context(), userID, interactionID, req.Status)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "Interaction updated", res.Value())
}

// ListForRecruiter godoc
// @Summary      List the recruiter's interactions
// @Tags         interactions
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Interaction}
// @Router       /interactions [get]
// @Security     BearerAuth
func (h *InteractionHandler) ListForRecruiter(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	res := h.interactions.ListForRecruiter(c.Request.Context(), userID)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "OK", res.Value())
}

// ListForCandidate godoc
// @Summary      List invitations received by the candidate
// @Tags         interactions
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Interaction}
// @Router       /invitations [get]
// @Security     BearerAuth
func (h *InteractionHandler) ListForCandidate(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	res := h.interactions.ListForCandidate(c.Request.Context(), userID)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "OK", res.Value())
}

// Respond godoc
// @Summary      Respond to a received invitation
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Interaction id"
// @Param        body  body      domain.InteractionResponse  true  "Accept, Decline or AskDetails with an optional reason"
// @Success      200   {object}  response.Response{data=domain.Interaction}
// @Failure      404   {object}  response.Response
// @Router       /invitations/{id}/respond [post]
// @Security     BearerAuth
func (h *InteractionHandler) Respond(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	interactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid interaction id", nil)
		return
	}

	var resp domain.InteractionResponse
	if err := c.ShouldBindJSON(&resp); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}

	res := h.interactions.Respond(c.Request.Context(), userID, interactionID, resp)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "Response recorded", res.Value())
}
