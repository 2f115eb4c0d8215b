package dto

import "github.com/edukshare-max/fastapi-backend/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearUsuarioRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=50"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	NombreCompleto string `json:"nombre_completo" validate:"required,min=3"`
	Rol            string `json:"rol" validate:"required,oneof=admin medico nutricion psicologia odontologia enfermeria recepcion servicios_estudiantiles lectura"`
	Campus         string `json:"campus" validate:"required"`
	Departamento   string `json:"departamento" validate:"required"`
}

// ActualizarUsuarioRequest carries a partial update. Username and id are
// deliberately absent: identity is immutable after creation.
type ActualizarUsuarioRequest struct {
	Email          *string `json:"email" validate:"omitempty,email"`
	NombreCompleto *string `json:"nombre_completo" validate:"omitempty,min=3"`
	Rol            *string `json:"rol" validate:"omitempty,oneof=admin medico nutricion psicologia odontologia enfermeria recepcion servicios_estudiantiles lectura"`
	Campus         *string `json:"campus"`
	Departamento   *string `json:"departamento"`
	Activo         *bool   `json:"activo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UsuarioResponse is the sanitized staff account: password hash and
// lockout bookkeeping never leave the backend.
type UsuarioResponse struct {
	ID             string  `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	NombreCompleto string  `json:"nombre_completo"`
	Rol            string  `json:"rol"`
	Campus         string  `json:"campus"`
	Departamento   string  `json:"departamento"`
	Activo         bool    `json:"activo"`
	FechaCreacion  string  `json:"fecha_creacion"`
	UltimoAcceso   *string `json:"ultimo_acceso"`
}

func NewUsuarioResponse(u *model.UsuarioAdmin) UsuarioResponse {
	return UsuarioResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		NombreCompleto: u.NombreCompleto,
		Rol:            u.Rol,
		Campus:         u.Campus,
		Departamento:   u.Departamento,
		Activo:         u.Activo,
		FechaCreacion:  u.FechaCreacion,
		UltimoAcceso:   u.UltimoAcceso,
	}
}

type AdminLoginResponse struct {
	Success     bool            `json:"success"`
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	User        UsuarioResponse `json:"user"`
}
