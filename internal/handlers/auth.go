package handlers

import (
	"net/http"

	"parkside-realty/internal/flash"
	"parkside-realty/internal/models"
	"parkside-realty/internal/services"
	"parkside-realty/pkg/config"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the registration and login flows. A successful signup
// or login establishes the session by setting the session cookie and
// redirecting; failures render field-level errors and persist nothing.
type AuthHandler struct {
	accounts *services.AccountService
	flashes  flash.Store
	cfg      *config.Config
}

func NewAuthHandler(accounts *services.AccountService, flashes flash.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{accounts: accounts, flashes: flashes, cfg: cfg}
}

func (h *AuthHandler) ClientSignupPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"form":    models.ClientSignupForm{},
		"notices": flash.Consume(c, h.flashes),
	})
}

func (h *AuthHandler) ClientSignup(c *gin.Context) {
	var form models.ClientSignupForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(bindingError(err))
		return
	}

	_, token, err := h.accounts.RegisterClient(c.Request.Context(), &form)
	if err != nil {
		c.Error(err)
		return
	}

	h.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) RealtorSignupPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"form":    models.RealtorSignupForm{},
		"notices": flash.Consume(c, h.flashes),
	})
}

func (h *AuthHandler) RealtorSignup(c *gin.Context) {
	var form models.RealtorSignupForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(bindingError(err))
		return
	}

	_, token, err := h.accounts.RegisterRealtor(c.Request.Context(), &form)
	if err != nil {
		c.Error(err)
		return
	}

	h.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"form":    models.LoginForm{},
		"notices": flash.Consume(c, h.flashes),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(bindingError(err))
		return
	}

	_, token, err := h.accounts.Login(c.Request.Context(), &form)
	if err != nil {
		c.Error(err)
		return
	}

	h.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.cfg.Session.CookieName, "", -1, "/", "", h.cfg.Session.Secure, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(h.cfg.Session.CookieName, token, h.cfg.Session.MaxAge, "/", "", h.cfg.Session.Secure, true)
}
