package v1

import (
	"net/http"

	"candidate-search-backend/internal/delivery/http/middleware"
	"candidate-search-backend/internal/delivery/http/response"
	"candidate-search-backend/internal/domain"
	"candidate-search-backend/pkg/avatar"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accounts domain.AccountService
	files    domain.FileService
}

func NewAccountHandler(r *gin.RouterGroup, accounts domain.AccountService, files domain.FileService) {
	handler := &AccountHandler{accounts: accounts, files: files}

	account := r.Group("/account")
	{
		account.GET("/me", handler.Me)
		account.PUT("/me", handler.Update)
		account.POST("/me/change-password", handler.ChangePassword)
		account.DELETE("/me", handler.Delete)
		account.GET("/me/avatar", handler.Avatar)
	}
}

// Me godoc
// @Summary      Get the authenticated account
// @Tags         account
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.UserDTO}
// @Failure      404  {object}  response.Response
// @Router       /account/me [get]
// @Security     BearerAuth
func (h *AccountHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	res := h.accounts.GetByID(c.Request.Context(), userID)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "OK", res.Value())
}

// Update godoc
// @Summary      Update profile fields
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      domain.UserEdit  true  "Fields to change; omitted fields stay untouched"
// @Success      200   {object}  response.Response{data=domain.UserDTO}
// @Failure      400   {object}  response.Response
// @Router       /account/me [put]
// @Security     BearerAuth
func (h *AccountHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var edit domain.UserEdit
	if err := c.ShouldBindJSON(&edit); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid profile payload", err.Error())
		return
	}

	res := h.accounts.Update(c.Request.Context(), userID, edit)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", res.Value())
}

// ChangePassword godoc
// @Summary      Change the account password
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ChangePasswordForm  true  "Current and new password"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /account/me/change-password [post]
// @Security     BearerAuth
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var form domain.ChangePasswordForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}

	res := h.accounts.ChangePassword(c.Request.Context(), userID, form)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "Password changed", nil)
}

// Delete godoc
// @Summary      Soft-delete the account
// @Tags         account
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /account/me [delete]
// @Security     BearerAuth
func (h *AccountHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	res := h.accounts.Delete(c.Request.Context(), userID)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, "Account deleted", nil)
}

// Avatar godoc
// @Summary      Get the user's avatar
// @Description  Returns the uploaded avatar path, or an initials placeholder SVG when none exists.
// @Tags         account
// @Produce      json
// @Produce      image/svg+xml
// @Success      200
// @Router       /account/me/avatar [get]
// @Security     BearerAuth
func (h *AccountHandler) Avatar(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	filesRes := h.files.GetByUserIDAndType(c.Request.Context(), userID, domain.FileProfileAvatar)
	if filesRes.IsSuccess() && len(filesRes.Value()) > 0 {
		response.Success(c, http.StatusOK, "OK", filesRes.Value()[0])
		return
	}

	userRes := h.accounts.GetByID(c.Request.Context(), userID)
	if userRes.IsFailure() {
		response.Error(c, failureStatus(userRes.Error()), userRes.Error(), nil)
		return
	}

	user := userRes.Value()
	svg := avatar.GenerateInitialsSVG(user.FirstName+" "+user.LastName, avatar.DefaultSize)
	c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}
