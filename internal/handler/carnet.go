package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukshare-max/fastapi-backend/internal/apierror"
	"github.com/edukshare-max/fastapi-backend/internal/middleware"
	"github.com/edukshare-max/fastapi-backend/internal/service"
)

// CarnetHandler serves the authenticated student's own profile document.
type CarnetHandler struct{ svc service.AuthService }

func NewCarnetHandler(svc service.AuthService) *CarnetHandler {
	return &CarnetHandler{svc: svc}
}

// Get handles GET /me/carnet
func (h *CarnetHandler) Get(c *gin.Context) {
	matricula := matriculaFromClaims(c)
	if matricula == "" {
		return
	}

	carnet, err := h.svc.GetCarnet(c.Request.Context(), matricula)
	if err != nil {
		if errors.Is(err, service.ErrNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Carnet no encontrado"))
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": carnet})
}

// matriculaFromClaims extracts the matricula claim, replying 400 itself
// when the token carries none (a staff token on a student route).
func matriculaFromClaims(c *gin.Context) string {
	claims := middleware.GetClaims(c)
	if claims == nil || claims.Matricula == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Matrícula no encontrada en token"))
		return ""
	}
	return claims.Matricula
}
