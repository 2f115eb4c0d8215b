package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukshare-max/fastapi-backend/internal/model"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func newTestService() *Service {
	return NewService(testSecret, 7*24*time.Hour, 8*time.Hour)
}

func TestIssueEstudiante_Roundtrip(t *testing.T) {
	svc := newTestService()

	tok, err := svc.IssueEstudiante("2020123")
	require.NoError(t, err)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "2020123", claims.Matricula)
	assert.False(t, claims.EsPersonal())
	assert.NotNil(t, claims.IssuedAt)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestIssuePersonal_Roundtrip(t *testing.T) {
	svc := newTestService()
	u := &model.UsuarioAdmin{
		ID:       "user:drlopez@clinica-acapulco",
		Username: "drlopez",
		Rol:      model.RolMedico,
		Campus:   "clinica-acapulco",
	}

	tok, err := svc.IssuePersonal(u)
	require.NoError(t, err)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "drlopez", claims.Username)
	assert.Equal(t, model.RolMedico, claims.Rol)
	assert.Equal(t, "clinica-acapulco", claims.Campus)
	assert.True(t, claims.EsPersonal())
	assert.Empty(t, claims.Matricula)
}

func TestVerify_SevenDayWindow(t *testing.T) {
	svc := newTestService()
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	svc.now = func() time.Time { return issued }
	tok, err := svc.IssueEstudiante("2020123")
	require.NoError(t, err)

	// Valid six days after issuance
	svc.now = func() time.Time { return issued.Add(6 * 24 * time.Hour) }
	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "2020123", claims.Matricula)

	// Invalid eight days after issuance
	svc.now = func() time.Time { return issued.Add(8 * 24 * time.Hour) }
	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalido)
}

func TestVerify_Tampered(t *testing.T) {
	svc := newTestService()
	tok, err := svc.IssueEstudiante("2020123")
	require.NoError(t, err)

	_, err = svc.Verify(tok + "xx")
	assert.ErrorIs(t, err, ErrInvalido)
}

func TestVerify_WrongSecret(t *testing.T) {
	otro := NewService("otro_secreto_completamente_distinto", time.Hour, time.Hour)
	tok, err := otro.IssueEstudiante("2020123")
	require.NoError(t, err)

	_, err = newTestService().Verify(tok)
	assert.ErrorIs(t, err, ErrInvalido)
}

func TestVerify_Garbage(t *testing.T) {
	_, err := newTestService().Verify("this.is.garbage")
	assert.ErrorIs(t, err, ErrInvalido)
}

func TestVerify_RejectsNonHMAC(t *testing.T) {
	// alg=none style tokens must never pass
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"matricula": "2020123"})
	signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestService().Verify(signed)
	assert.ErrorIs(t, err, ErrInvalido)
}
