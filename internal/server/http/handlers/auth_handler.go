package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/vporoshin/solace/internal/domain/errors"
	"github.com/vporoshin/solace/internal/server/http/dto"
	"github.com/vporoshin/solace/internal/server/http/middleware"
)

// Flash texts shown on the account pages.
const (
	msgCredentialsMissing  = "Username and password are required."
	msgCredentialsTooShort = "Username must be at least 3 characters and password at least 6 characters."
	msgUsernameTaken       = "Username already exists."
	msgRegistered          = "Registration successful! Please log in."
	msgInvalidCredentials  = "Invalid username or password."
	msgLoggedOut           = "Logged out successfully."
	msgInternalError       = "Something went wrong. Please try again."
)

// AuthHandler processes registration, login and logout.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// RegisterPage handles GET /register.
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.tmpl", gin.H{"Flash": takeFlash(c)})
}

// Register handles POST /register. Validation failures flash a message and
// re-prompt; success sends the user to the login page.
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.CredentialsForm
	_ = c.ShouldBind(&form)

	err := h.facade.Register(c.Request.Context(), form.Username, form.Password)
	if err == nil {
		setFlash(c, FlashSuccess, msgRegistered)
		c.Redirect(http.StatusSeeOther, loginPath)
		return
	}

	switch {
	case errors.Is(err, domainErrors.ErrCredentialsMissing):
		setFlash(c, FlashError, msgCredentialsMissing)
	case errors.Is(err, domainErrors.ErrCredentialsTooShort):
		setFlash(c, FlashError, msgCredentialsTooShort)
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		setFlash(c, FlashError, msgUsernameTaken)
	default:
		setFlash(c, FlashError, msgInternalError)
	}
	c.Redirect(http.StatusSeeOther, "/register")
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{
		"Flash": takeFlash(c),
		"Next":  c.Query("next"),
	})
}

// Login handles POST /login. Every failure reads the same so the response
// does not reveal whether the username exists.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.CredentialsForm
	_ = c.ShouldBind(&form)

	token, err := h.facade.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			setFlash(c, FlashError, msgInvalidCredentials)
		} else {
			setFlash(c, FlashError, msgInternalError)
		}
		target := loginPath
		if next := c.Query("next"); next != "" {
			target += "?next=" + url.QueryEscape(next)
		}
		c.Redirect(http.StatusSeeOther, target)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.Redirect(http.StatusSeeOther, safeNextTarget(c, c.Query("next")))
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c)
	setFlash(c, FlashSuccess, msgLoggedOut)
	c.Redirect(http.StatusFound, loginPath)
}
