package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukshare-max/fastapi-backend/internal/model"
	"github.com/edukshare-max/fastapi-backend/internal/token"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func newTokens() *token.Service {
	return token.NewService(testSecret, 7*24*time.Hour, 8*time.Hour)
}

// testRouter counts how often the store tier would have been reached, so
// the gate's short-circuit guarantee is observable.
func testRouter(tokens *token.Service, storeCalls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	protected := r.Group("", JWTAuth(tokens))
	protected.GET("/me/carnet", func(c *gin.Context) {
		*storeCalls++
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"matricula": claims.Matricula})
	})
	protected.GET("/auth/users", RequirePersonal(), RequireRol(model.RolAdmin), func(c *gin.Context) {
		*storeCalls++
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func doGet(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_SinHeader(t *testing.T) {
	calls := 0
	r := testRouter(newTokens(), &calls)

	w := doGet(r, "/me/carnet", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, calls)
}

func TestJWTAuth_EsquemaIncorrecto(t *testing.T) {
	calls := 0
	r := testRouter(newTokens(), &calls)

	w := doGet(r, "/me/carnet", "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, calls)
}

func TestJWTAuth_TokenAlterado(t *testing.T) {
	calls := 0
	tokens := newTokens()
	r := testRouter(tokens, &calls)

	tok, err := tokens.IssueEstudiante("2020123")
	require.NoError(t, err)

	w := doGet(r, "/me/carnet", "Bearer "+tok+"xx")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, calls)
}

func TestJWTAuth_TokenValido(t *testing.T) {
	calls := 0
	tokens := newTokens()
	r := testRouter(tokens, &calls)

	tok, err := tokens.IssueEstudiante("2020123")
	require.NoError(t, err)

	w := doGet(r, "/me/carnet", "Bearer "+tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, calls)
	assert.Contains(t, w.Body.String(), "2020123")
}

func TestJWTAuth_TokenExpirado(t *testing.T) {
	calls := 0
	// TTL negativo: expirado desde su emisión
	expirados := token.NewService(testSecret, -time.Second, -time.Second)
	r := testRouter(expirados, &calls)

	tok, err := expirados.IssueEstudiante("2020123")
	require.NoError(t, err)

	w := doGet(r, "/me/carnet", "Bearer "+tok)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, calls)
}

func TestRequireRol_RechazaTokenDeEstudiante(t *testing.T) {
	calls := 0
	tokens := newTokens()
	r := testRouter(tokens, &calls)

	tok, err := tokens.IssueEstudiante("2020123")
	require.NoError(t, err)

	w := doGet(r, "/auth/users", "Bearer "+tok)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, calls)
}

func TestRequireRol_RechazaRolNoAdmin(t *testing.T) {
	calls := 0
	tokens := newTokens()
	r := testRouter(tokens, &calls)

	tok, err := tokens.IssuePersonal(&model.UsuarioAdmin{
		ID: "user:medico@fac-medicina", Username: "medico",
		Rol: model.RolMedico, Campus: "fac-medicina",
	})
	require.NoError(t, err)

	w := doGet(r, "/auth/users", "Bearer "+tok)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, calls)
}

func TestRequireRol_AceptaAdmin(t *testing.T) {
	calls := 0
	tokens := newTokens()
	r := testRouter(tokens, &calls)

	tok, err := tokens.IssuePersonal(&model.UsuarioAdmin{
		ID: "user:admin@rectoria", Username: "admin",
		Rol: model.RolAdmin, Campus: "rectoria",
	})
	require.NoError(t, err)

	w := doGet(r, "/auth/users", "Bearer "+tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, calls)
}
