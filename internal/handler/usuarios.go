package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukshare-max/fastapi-backend/internal/apierror"
	"github.com/edukshare-max/fastapi-backend/internal/dto"
	"github.com/edukshare-max/fastapi-backend/internal/middleware"
	"github.com/edukshare-max/fastapi-backend/internal/service"
)

// UsuariosHandler serves staff login, profile and account management.
type UsuariosHandler struct{ svc service.AdminService }

func NewUsuariosHandler(svc service.AdminService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

// Login handles POST /auth/admin/login
func (h *UsuariosHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCredenciales):
			c.JSON(http.StatusUnauthorized, apierror.New("Credenciales incorrectas"))
		case errors.Is(err, service.ErrUsuarioBloqueado):
			c.JSON(http.StatusForbidden, apierror.New(err.Error()))
		default:
			internalError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me handles GET /auth/me
func (h *UsuariosHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil || claims.UserID == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Usuario no encontrado en token"))
		return
	}

	user, err := h.svc.GetUsuario(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Usuario no encontrado"))
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// Listar handles GET /auth/users?campus=&rol=
func (h *UsuariosHandler) Listar(c *gin.Context) {
	usuarios, err := h.svc.ListUsuarios(c.Request.Context(), c.Query("campus"), c.Query("rol"))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    usuarios,
		"count":   len(usuarios),
	})
}

// Crear handles POST /auth/register
func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}

	actor := middleware.GetClaims(c).Username
	user, err := h.svc.CrearUsuario(c.Request.Context(), req, actor, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsuarioExiste),
			errors.Is(err, service.ErrCampusInvalido),
			errors.Is(err, service.ErrPasswordDebil):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		default:
			internalError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": user})
}

// Actualizar handles PATCH /auth/users/:id
// Partial update; username and id are immutable and absent from the DTO.
func (h *UsuariosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}

	actor := middleware.GetClaims(c).Username
	user, err := h.svc.ActualizarUsuario(c.Request.Context(), c.Param("id"), req, actor, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New("Usuario no encontrado"))
		case errors.Is(err, service.ErrCampusInvalido):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		default:
			internalError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}
