package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukshare-max/fastapi-backend/internal/dto"
	"github.com/edukshare-max/fastapi-backend/internal/model"
	"github.com/edukshare-max/fastapi-backend/internal/token"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

// carnetRepoStub serves documents keyed by matricula, the way the store
// tier does, without a running store.
type carnetRepoStub struct {
	docs map[string]model.Documento
}

func (r *carnetRepoStub) FindByCorreoYMatricula(_ context.Context, correo, matricula string) (model.Documento, error) {
	doc, ok := r.docs[matricula]
	if !ok {
		return nil, nil
	}
	if c, _ := doc["correo"].(string); c != correo {
		return nil, nil
	}
	return doc, nil
}

func (r *carnetRepoStub) FindByMatricula(_ context.Context, matricula string) (model.Documento, error) {
	return r.docs[matricula], nil
}

type citaRepoStub struct {
	citas map[string][]model.Documento
}

func (r *citaRepoStub) FindByMatricula(_ context.Context, matricula string) ([]model.Documento, error) {
	return r.citas[matricula], nil
}

func (r *citaRepoStub) FindByID(_ context.Context, matricula, id string) (model.Documento, error) {
	for _, cita := range r.citas[matricula] {
		if cid, _ := cita["id"].(string); cid == id {
			return cita, nil
		}
	}
	return nil, nil
}

func newAuthFixture() (AuthService, *token.Service) {
	carnets := &carnetRepoStub{docs: map[string]model.Documento{
		"2020123": {
			"id":        "carnet:2020123",
			"matricula": "2020123",
			"correo":    "alumno@uagro.mx",
			"nombre":    "Ana López",
			"_rid":      "interno",
			"_etag":     "interno",
		},
	}}
	citas := &citaRepoStub{citas: map[string][]model.Documento{
		"2020123": {
			{"id": "cita-2", "matricula": "2020123", "inicio": "2026-09-02T10:00:00Z", "_ts": 200},
			{"id": "cita-1", "matricula": "2020123", "inicio": "2026-09-01T10:00:00Z", "_ts": 100},
		},
	}}
	tokens := token.NewService(testSecret, 7*24*time.Hour, 8*time.Hour)
	return NewAuthService(carnets, citas, tokens), tokens
}

func TestLogin_Exitoso(t *testing.T) {
	svc, tokens := newAuthFixture()

	tok, matricula, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "alumno@uagro.mx", Matricula: "2020123",
	})
	require.NoError(t, err)
	assert.Equal(t, "2020123", matricula)

	claims, err := tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "2020123", claims.Matricula)
	assert.False(t, claims.EsPersonal())
}

func TestLogin_CorreoIncorrecto(t *testing.T) {
	svc, _ := newAuthFixture()

	_, _, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "otro@uagro.mx", Matricula: "2020123",
	})
	assert.ErrorIs(t, err, ErrCredenciales)
}

func TestLogin_MatriculaInexistente(t *testing.T) {
	svc, _ := newAuthFixture()

	_, _, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "alumno@uagro.mx", Matricula: "9999999",
	})
	assert.ErrorIs(t, err, ErrCredenciales)
}

func TestGetCarnet_Sanitizado(t *testing.T) {
	svc, _ := newAuthFixture()

	carnet, err := svc.GetCarnet(context.Background(), "2020123")
	require.NoError(t, err)
	assert.Equal(t, "Ana López", carnet["nombre"])
	assert.NotContains(t, carnet, "_rid")
	assert.NotContains(t, carnet, "_etag")
}

func TestGetCarnet_NoEncontrado(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.GetCarnet(context.Background(), "9999999")
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestGetCitas_OrdenYSanitizado(t *testing.T) {
	svc, _ := newAuthFixture()

	citas, err := svc.GetCitas(context.Background(), "2020123")
	require.NoError(t, err)
	require.Len(t, citas, 2)
	// el orden del repositorio se respeta tal cual
	assert.Equal(t, "cita-2", citas[0]["id"])
	assert.Equal(t, "cita-1", citas[1]["id"])
	for _, cita := range citas {
		assert.NotContains(t, cita, "_ts")
	}
}

func TestGetCitas_SinCitas(t *testing.T) {
	svc, _ := newAuthFixture()

	citas, err := svc.GetCitas(context.Background(), "9999999")
	require.NoError(t, err)
	assert.NotNil(t, citas)
	assert.Empty(t, citas)
}

func TestGetCita_PorID(t *testing.T) {
	svc, _ := newAuthFixture()

	cita, err := svc.GetCita(context.Background(), "2020123", "cita-1")
	require.NoError(t, err)
	assert.Equal(t, "cita-1", cita["id"])
	assert.NotContains(t, cita, "_ts")
}

func TestGetCita_DeOtraMatricula(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.GetCita(context.Background(), "2021999", "cita-1")
	assert.ErrorIs(t, err, ErrNoEncontrado)
}
