package dto

// ─── Student flow ────────────────────────────────────────────────────────────

// LoginRequest authenticates a student by knowledge of both identity
// fields; there is no student password.
type LoginRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Matricula string `json:"matricula" validate:"required"`
}

type VerifyRequest struct {
	Token string `json:"token" validate:"required"`
}

// ─── Staff flow ──────────────────────────────────────────────────────────────

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=8"`
}
