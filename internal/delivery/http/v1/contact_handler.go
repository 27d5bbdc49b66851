package v1

import (
	"net/http"

	"candidate-search-backend/internal/delivery/http/middleware"
	"candidate-search-backend/internal/delivery/http/response"
	"candidate-search-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContactHandler struct {
	contacts domain.ContactService
}

func NewContactHandler(r *gin.RouterGroup, contacts domain.ContactService) {
	handler := &ContactHandler{contacts: contacts}

	group := r.Group("/contacts")
	{
		group.GET("", handler.List)
		group.POST("", handler.Add)
		group.PUT("/:id", handler.Update)
		group.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List the caller's contacts
// @Tags         contacts
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ContactDTO}
// @Router       /contacts [get]
// @Security     BearerAuth
func (h *ContactHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	res := h.contacts.GetByUserID(c.Request.Context(), userID)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "OK", res.Value())
}

// Add godoc
// @Summary      Add a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ContactDTO  true  "Contact; any supplied id is ignored"
// @Success      201   {object}  response.Response{data=domain.ContactDTO}
// @Failure      400   {object}  response.Response
// @Router       /contacts [post]
// @Security     BearerAuth
func (h *ContactHandler) Add(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var dto domain.ContactDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid contact payload", err.Error())
		return
	}

	res := h.contacts.Add(c.Request.Context(), userID, dto)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusCreated, "Contact added", res.Value())
}

// Update godoc
// @Summary      Update a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Contact id"
// @Param        body  body      domain.ContactDTO  true  "New contact values"
// @Success      200   {object}  response.Response{data=domain.ContactDTO}
// @Failure      404   {object}  response.Response
// @Router       /contacts/{id} [put]
// @Security     BearerAuth
func (h *ContactHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid contact id", nil)
		return
	}

	var dto domain.ContactDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid contact payload", err.Error())
		return
	}
	dto.ID = contactID

	res := h.contacts.Update(c.Request.Context(), userID, dto)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "Contact updated", res.Value())
}

// Delete godoc
// @Summary      Delete a contact
// @Tags         contacts
// @Produce      json
// @Param        id   path      string  true  "Contact id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /contacts/{id} [delete]
// @Security     BearerAuth
func (h *ContactHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid contact id", nil)
		return
	}

	res := h.contacts.Delete(c.Request.Context(), userID, contactID)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "Contact deleted", nil)
}
