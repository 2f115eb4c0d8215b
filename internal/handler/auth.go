package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukshare-max/fastapi-backend/internal/apierror"
	"github.com/edukshare-max/fastapi-backend/internal/dto"
	"github.com/edukshare-max/fastapi-backend/internal/service"
	"github.com/edukshare-max/fastapi-backend/internal/token"
)

// AuthHandler serves the student login and token introspection endpoints.
type AuthHandler struct {
	svc    service.AuthService
	tokens *token.Service
}

func NewAuthHandler(svc service.AuthService, tokens *token.Service) *AuthHandler {
	return &AuthHandler{svc: svc, tokens: tokens}
}

// Login handles POST /auth/login
// Authenticates by email+matricula and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	tokenStr, matricula, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrCredenciales) {
			c.JSON(http.StatusUnauthorized, apierror.New("Credenciales incorrectas"))
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"token":     tokenStr,
		"matricula": matricula,
		"message":   "Login exitoso",
	})
}

// Verify handles POST /auth/verify
// Token introspection, kept for client-side debugging.
func (h *AuthHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if !bindAndValidate(c, &req) {
		return
	}

	claims, err := h.tokens.Verify(req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token inválido"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"valid":     true,
		"matricula": claims.Matricula,
		"iat":       claims.IssuedAt,
		"exp":       claims.ExpiresAt,
	})
}
