package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harshanad03/ecommerce-sub000/internal/backend"
	"github.com/Harshanad03/ecommerce-sub000/internal/middleware"
)

// WelcomeMailer manda el mail de bienvenida; nil cuando el envío de
// mails no está configurado.
type WelcomeMailer interface {
	SendWelcome(to, name string) error
}

type AuthHandler struct {
	auth *backend.AuthService
	mail WelcomeMailer
}

func NewAuthHandler(auth *backend.AuthService, mail WelcomeMailer) *AuthHandler {
	return &AuthHandler{auth: auth, mail: mail}
}

type registerInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.SignUp(c.Request.Context(), input.Name, input.Email, input.Password)
	switch {
	case errors.Is(err, backend.ErrBackendNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "accounts need a configured backend"})
		return
	case errors.Is(err, backend.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create account"})
		return
	}

	if h.mail != nil {
		if err := h.mail.SendWelcome(user.Email, user.Name); err != nil {
			log.Println("⚠️ auth: sending welcome mail:", err)
		}
	}
	c.JSON(http.StatusCreated, user)
}

// POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.auth.SignIn(c.Request.Context(), input.Email, input.Password)
	switch {
	case errors.Is(err, backend.ErrBackendNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "accounts need a configured backend"})
		return
	case errors.Is(err, backend.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// GET /v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": claims.Email, "role": claims.Role})
}
