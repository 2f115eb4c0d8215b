package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukshare-max/fastapi-backend/internal/apierror"
	"github.com/edukshare-max/fastapi-backend/internal/service"
)

// CitasHandler serves the authenticated student's appointment records.
type CitasHandler struct{ svc service.AuthService }

func NewCitasHandler(svc service.AuthService) *CitasHandler {
	return &CitasHandler{svc: svc}
}

// List handles GET /me/citas
// All citas for the token's matricula, newest first.
func (h *CitasHandler) List(c *gin.Context) {
	matricula := matriculaFromClaims(c)
	if matricula == "" {
		return
	}

	citas, err := h.svc.GetCitas(c.Request.Context(), matricula)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    citas,
		"count":   len(citas),
	})
}

// Get handles GET /me/citas/:id
func (h *CitasHandler) Get(c *gin.Context) {
	matricula := matriculaFromClaims(c)
	if matricula == "" {
		return
	}

	cita, err := h.svc.GetCita(c.Request.Context(), matricula, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Cita no encontrada"))
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": cita})
}
