package v1

import (
	"net/http"
	"time"

	"candidate-search-backend/config"
	"candidate-search-backend/internal/delivery/http/middleware"
	"candidate-search-backend/internal/delivery/http/response"
	"candidate-search-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	accounts domain.AccountService
	cfg      *config.Config
}

func NewAuthHandler(r *gin.RouterGroup, protected *gin.RouterGroup, accounts domain.AccountService, cfg *config.Config) {
	handler := &AuthHandler{accounts: accounts, cfg: cfg}

	auth := r.Group("/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
	}
	protected.POST("/auth/logout", handler.Logout)
}

// Register godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.RegisterForm  true  "Registration payload"
// @Success      201   {object}  response.Response{data=domain.UserDTO}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var form domain.RegisterForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid registration payload", err.Error())
		return
	}

	res := h.accounts.Register(c.Request.Context(), form)
	if res.IsFailure() {
		response.Error(c, failureStatus(res.Error()), res.Error(), nil)
		return
	}
	response.Success(c, http.StatusCreated, "Account created", res.Value())
}

// Login godoc
// @Summary      Log in and receive the session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.LoginForm  true  "Credentials"
// @Success      200   {object}  response.Response{data=domain.LoginResult}
// @Failure      401   {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var form domain.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid login payload", err.Error())
		return
	}

	res := h.accounts.Login(c.Request.Context(), form)
	if res.IsFailure() {
		response.Error(c, http.StatusUnauthorized, res.Error(), nil)
		return
	}

	login := res.Value()
	maxAge := int(time.Until(login.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, login.Token, maxAge, "/", "", !h.cfg.Debug, true)

	response.Success(c, http.StatusOK, "Logged in", login)
}

// Logout godoc
// @Summary      Log out and clear the session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	if userID, ok := middleware.UserID(c); ok {
		h.accounts.Logout(c.Request.Context(), userID)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, "", -1, "/", "", !h.cfg.Debug, true)
	response.Success(c, http.StatusOK, "Logged out", nil)
}
