// Package token issues and verifies the signed bearer tokens used by both
// the student flow (matricula claim) and the staff flow (user/rol/campus
// claims). HS256 with a shared secret loaded once from configuration.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/edukshare-max/fastapi-backend/internal/model"
)

// ErrInvalido covers malformed, tampered and expired tokens alike, so a
// caller can never tell which check failed.
var ErrInvalido = errors.New("token invalido o expirado")

// Claims is the decoded claim set. Student tokens carry only Matricula;
// staff tokens carry UserID, Username, Rol and Campus.
type Claims struct {
	Matricula string `json:"matricula,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Username  string `json:"username,omitempty"`
	Rol       string `json:"rol,omitempty"`
	Campus    string `json:"campus,omitempty"`
	jwt.RegisteredClaims
}

// EsPersonal reports whether the claims belong to a staff token.
func (c *Claims) EsPersonal() bool { return c.Rol != "" }

// Service signs and verifies tokens. Immutable after construction.
type Service struct {
	secret        []byte
	estudianteTTL time.Duration
	personalTTL   time.Duration
	now           func() time.Time
}

func NewService(secret string, estudianteTTL, personalTTL time.Duration) *Service {
	return &Service{
		secret:        []byte(secret),
		estudianteTTL: estudianteTTL,
		personalTTL:   personalTTL,
		now:           time.Now,
	}
}

// IssueEstudiante signs a token carrying only the matricula claim, valid
// for the student TTL (7 days by default).
func (s *Service) IssueEstudiante(matricula string) (string, error) {
	return s.sign(&Claims{Matricula: matricula}, s.estudianteTTL)
}

// IssuePersonal signs a staff token with identity, role and campus claims,
// valid for the staff TTL (8 hours by default).
func (s *Service) IssuePersonal(u *model.UsuarioAdmin) (string, error) {
	return s.sign(&Claims{
		UserID:   u.ID,
		Username: u.Username,
		Rol:      u.Rol,
		Campus:   u.Campus,
	}, s.personalTTL)
}

func (s *Service) sign(claims *Claims, ttl time.Duration) (string, error) {
	now := s.now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the decoded claims.
// Every failure maps to ErrInvalido; Verify never panics or distinguishes
// failure causes to the caller.
func (s *Service) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.secret, nil
		},
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil || !tok.Valid {
		return nil, ErrInvalido
	}
	return claims, nil
}
