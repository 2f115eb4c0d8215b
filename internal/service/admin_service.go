package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/edukshare-max/fastapi-backend/internal/catalogo"
	"github.com/edukshare-max/fastapi-backend/internal/dto"
	"github.com/edukshare-max/fastapi-backend/internal/model"
	"github.com/edukshare-max/fastapi-backend/internal/repository"
)

var (
	ErrUsuarioBloqueado = errors.New("Usuario bloqueado temporalmente por múltiples intentos fallidos")
	ErrUsuarioExiste    = errors.New("El nombre de usuario ya existe")
	ErrCampusInvalido   = errors.New("Campus no reconocido")
	ErrPasswordDebil    = errors.New("La contraseña debe contener mayúsculas, minúsculas y números")
)

// AuditStats aggregates the most recent audit entries for the panel
// dashboard.
type AuditStats struct {
	Total      int            `json:"total"`
	PorAccion  map[string]int `json:"por_accion"`
	PorUsuario map[string]int `json:"por_usuario"`
}

// AdminService implements the staff flow: password login with lockout,
// account management and the audit trail. Usernames are immutable after
// creation; partial updates may never touch identity.
type AdminService interface {
	Login(ctx context.Context, req dto.AdminLoginRequest, ip string) (*dto.AdminLoginResponse, error)
	GetUsuario(ctx context.Context, id string) (*dto.UsuarioResponse, error)
	ListUsuarios(ctx context.Context, campus, rol string) ([]dto.UsuarioResponse, error)
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest, actor, ip string) (*dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, id string, req dto.ActualizarUsuarioRequest, actor, ip string) (*dto.UsuarioResponse, error)
	ListAuditLogs(ctx context.Context, f repository.AuditFilter) ([]model.AuditLog, error)
	AuditStats(ctx context.Context) (*AuditStats, error)
}

type adminService struct {
	usuarios    repository.UsuarioRepository
	auditoria   repository.AuditRepository
	tokens      tokenIssuer
	maxAttempts int
	lockout     time.Duration
	now         func() time.Time
}

// tokenIssuer is the slice of token.Service the staff flow needs.
type tokenIssuer interface {
	IssuePersonal(u *model.UsuarioAdmin) (string, error)
}

func NewAdminService(usuarios repository.UsuarioRepository, auditoria repository.AuditRepository,
	tokens tokenIssuer, maxAttempts, lockoutMinutes int) AdminService {
	return &adminService{
		usuarios:    usuarios,
		auditoria:   auditoria,
		tokens:      tokens,
		maxAttempts: maxAttempts,
		lockout:     time.Duration(lockoutMinutes) * time.Minute,
		now:         time.Now,
	}
}

func (s *adminService) Login(ctx context.Context, req dto.AdminLoginRequest, ip string) (*dto.AdminLoginResponse, error) {
	user, err := s.usuarios.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Activo {
		s.audit(ctx, req.Username, model.AuditLoginFailed, "", "usuario inexistente o inactivo", ip)
		return nil, ErrCredenciales
	}

	if s.estaBloqueado(user) {
		return nil, ErrUsuarioBloqueado
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		user.IntentosFallidos++
		detalle := fmt.Sprintf("intento fallido %d de %d", user.IntentosFallidos, s.maxAttempts)
		if user.IntentosFallidos >= s.maxAttempts {
			hasta := s.now().UTC().Add(s.lockout).Format(time.RFC3339)
			user.BloqueadoHasta = &hasta
			detalle = fmt.Sprintf("usuario bloqueado por %d intentos fallidos", user.IntentosFallidos)
		}
		if err := s.usuarios.Update(ctx, user); err != nil {
			return nil, err
		}
		s.audit(ctx, user.Username, model.AuditLoginFailed, user.ID, detalle, ip)
		if user.BloqueadoHasta != nil {
			return nil, ErrUsuarioBloqueado
		}
		return nil, ErrCredenciales
	}

	// Reset lockout bookkeeping and stamp the access
	user.IntentosFallidos = 0
	user.BloqueadoHasta = nil
	ahora := s.now().UTC().Format(time.RFC3339)
	user.UltimoAcceso = &ahora
	if err := s.usuarios.Update(ctx, user); err != nil {
		return nil, err
	}

	tokenStr, err := s.tokens.IssuePersonal(user)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, user.Username, model.AuditLogin, user.ID, "", ip)
	return &dto.AdminLoginResponse{
		Success:     true,
		AccessToken: tokenStr,
		TokenType:   "bearer",
		User:        dto.NewUsuarioResponse(user),
	}, nil
}

func (s *adminService) GetUsuario(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	user, err := s.usuarios.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoEncontrado
	}
	resp := dto.NewUsuarioResponse(user)
	return &resp, nil
}

func (s *adminService) ListUsuarios(ctx context.Context, campus, rol string) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.usuarios.List(ctx, campus, rol)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(usuarios))
	for i := range usuarios {
		resp[i] = dto.NewUsuarioResponse(&usuarios[i])
	}
	return resp, nil
}

func (s *adminService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest, actor, ip string) (*dto.UsuarioResponse, error) {
	if !catalogo.Existe(req.Campus) {
		return nil, ErrCampusInvalido
	}
	if err := validarPassword(req.Password); err != nil {
		return nil, err
	}

	existente, err := s.usuarios.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, ErrUsuarioExiste
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	user := &model.UsuarioAdmin{
		ID:             model.UsuarioID(req.Username, req.Campus),
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   string(hash),
		NombreCompleto: req.NombreCompleto,
		Rol:            req.Rol,
		Campus:         req.Campus,
		Departamento:   req.Departamento,
		Activo:         true,
		FechaCreacion:  s.now().UTC().Format(time.RFC3339),
	}
	if err := s.usuarios.Create(ctx, user); err != nil {
		return nil, err
	}

	s.audit(ctx, actor, model.AuditCreateUser, user.ID,
		fmt.Sprintf("rol=%s campus=%s", user.Rol, user.Campus), ip)
	resp := dto.NewUsuarioResponse(user)
	return &resp, nil
}

func (s *adminService) ActualizarUsuario(ctx context.Context, id string, req dto.ActualizarUsuarioRequest, actor, ip string) (*dto.UsuarioResponse, error) {
	user, err := s.usuarios.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoEncontrado
	}

	var cambios []string
	if req.Email != nil {
		user.Email = *req.Email
		cambios = append(cambios, "email")
	}
	if req.NombreCompleto != nil {
		user.NombreCompleto = *req.NombreCompleto
		cambios = append(cambios, "nombre_completo")
	}
	if req.Rol != nil {
		user.Rol = *req.Rol
		cambios = append(cambios, "rol")
	}
	if req.Campus != nil {
		if !catalogo.Existe(*req.Campus) {
			return nil, ErrCampusInvalido
		}
		user.Campus = *req.Campus
		cambios = append(cambios, "campus")
	}
	if req.Departamento != nil {
		user.Departamento = *req.Departamento
		cambios = append(cambios, "departamento")
	}
	if req.Activo != nil {
		user.Activo = *req.Activo
		cambios = append(cambios, "activo")
	}

	if err := s.usuarios.Update(ctx, user); err != nil {
		return nil, err
	}

	s.audit(ctx, actor, model.AuditUpdateUser, user.ID,
		"actualizó: "+strings.Join(cambios, ", "), ip)
	resp := dto.NewUsuarioResponse(user)
	return &resp, nil
}

func (s *adminService) ListAuditLogs(ctx context.Context, f repository.AuditFilter) ([]model.AuditLog, error) {
	return s.auditoria.List(ctx, f)
}

func (s *adminService) AuditStats(ctx context.Context) (*AuditStats, error) {
	logs, err := s.auditoria.List(ctx, repository.AuditFilter{Limit: repository.StatsAuditLimit})
	if err != nil {
		return nil, err
	}

	stats := &AuditStats{
		Total:      len(logs),
		PorAccion:  make(map[string]int),
		PorUsuario: make(map[string]int),
	}
	for _, entry := range logs {
		stats.PorAccion[entry.Accion]++
		stats.PorUsuario[entry.Usuario]++
	}
	return stats, nil
}

func (s *adminService) estaBloqueado(u *model.UsuarioAdmin) bool {
	if u.BloqueadoHasta == nil {
		return false
	}
	hasta, err := time.Parse(time.RFC3339, *u.BloqueadoHasta)
	if err != nil {
		return false
	}
	return s.now().UTC().Before(hasta)
}

// audit appends a trail entry. A failed audit write never fails the request
// being audited.
func (s *adminService) audit(ctx context.Context, usuario, accion, recurso, detalles, ip string) {
	entry := &model.AuditLog{
		ID:        fmt.Sprintf("audit:%s-%s", s.now().UTC().Format("20060102-150405"), uuid.NewString()[:8]),
		Usuario:   usuario,
		Accion:    accion,
		Recurso:   recurso,
		Detalles:  detalles,
		Timestamp: s.now().UTC().Format(time.RFC3339),
		IP:        ip,
	}
	if err := s.auditoria.Append(ctx, entry); err != nil {
		log.Warn().Err(err).Str("accion", accion).Msg("no se pudo registrar auditoría")
	}
}

// validarPassword enforces the creation policy: at least 8 characters with
// upper case, lower case and a digit. The length floor is also enforced by
// the DTO tag; the composition rules only live here.
func validarPassword(password string) error {
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return ErrPasswordDebil
	}
	return nil
}
