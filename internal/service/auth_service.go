package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/edukshare-max/fastapi-backend/internal/dto"
	"github.com/edukshare-max/fastapi-backend/internal/model"
	"github.com/edukshare-max/fastapi-backend/internal/repository"
	"github.com/edukshare-max/fastapi-backend/internal/sanitize"
	"github.com/edukshare-max/fastapi-backend/internal/token"
)

var (
	// ErrCredenciales keeps "no such record" and "fields don't match"
	// indistinguishable to the caller.
	ErrCredenciales = errors.New("Credenciales incorrectas")
	ErrNoEncontrado = errors.New("no encontrado")
)

// AuthService implements the student flow: login by email+matricula and
// read-only access to the authenticated student's own documents. Every
// document leaves already sanitized.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (tokenStr, matricula string, err error)
	GetCarnet(ctx context.Context, matricula string) (model.Documento, error)
	GetCitas(ctx context.Context, matricula string) ([]model.Documento, error)
	GetCita(ctx context.Context, matricula, id string) (model.Documento, error)
}

type authService struct {
	carnets repository.CarnetRepository
	citas   repository.CitaRepository
	tokens  *token.Service
}

func NewAuthService(carnets repository.CarnetRepository, citas repository.CitaRepository, tokens *token.Service) AuthService {
	return &authService{carnets: carnets, citas: citas, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (string, string, error) {
	carnet, err := s.carnets.FindByCorreoYMatricula(ctx, req.Email, req.Matricula)
	if err != nil {
		return "", "", err
	}
	if carnet == nil {
		return "", "", ErrCredenciales
	}

	// The token carries the stored matricula, not the request's echo
	matricula, _ := carnet["matricula"].(string)
	if matricula == "" {
		matricula = req.Matricula
	}

	tokenStr, err := s.tokens.IssueEstudiante(matricula)
	if err != nil {
		return "", "", err
	}

	log.Info().Str("matricula", matricula).Msg("login exitoso")
	return tokenStr, matricula, nil
}

func (s *authService) GetCarnet(ctx context.Context, matricula string) (model.Documento, error) {
	carnet, err := s.carnets.FindByMatricula(ctx, matricula)
	if err != nil {
		return nil, err
	}
	if carnet == nil {
		return nil, ErrNoEncontrado
	}
	return sanitize.Document(carnet), nil
}

func (s *authService) GetCitas(ctx context.Context, matricula string) ([]model.Documento, error) {
	citas, err := s.citas.FindByMatricula(ctx, matricula)
	if err != nil {
		return nil, err
	}
	return sanitize.Documents(citas), nil
}

func (s *authService) GetCita(ctx context.Context, matricula, id string) (model.Documento, error) {
	cita, err := s.citas.FindByID(ctx, matricula, id)
	if err != nil {
		return nil, err
	}
	if cita == nil {
		return nil, ErrNoEncontrado
	}
	return sanitize.Document(cita), nil
}
