package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edukshare-max/fastapi-backend/internal/apierror"
	"github.com/edukshare-max/fastapi-backend/internal/token"
)

const ClaimsKey = "claims"

// JWTAuth is the access gate for every protected route. It extracts the
// Bearer token, verifies it and attaches the decoded claims to the request
// context. Missing or malformed header → 401; failed verification → 403.
// The gate performs no store I/O.
func JWTAuth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token de acceso requerido"))
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Token inválido o expirado"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequirePersonal rejects student tokens on staff-only routes.
func RequirePersonal() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || !claims.EsPersonal() {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Se requiere una cuenta de personal"))
			return
		}
		c.Next()
	}
}

// RequireRol rejects requests whose token role is not in the allowed list.
// Runs after JWTAuth, so the claims are always present.
func RequireRol(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || !allowed[claims.Rol] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("No tienes permisos para este recurso"))
			return
		}
		c.Next()
	}
}

// GetClaims retrieves the typed claims attached by JWTAuth, or nil when the
// route is unprotected.
func GetClaims(c *gin.Context) *token.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*token.Claims)
	return claims
}
