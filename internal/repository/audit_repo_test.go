package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildAuditFilter_Vacio(t *testing.T) {
	filter := buildAuditFilter(AuditFilter{})
	assert.Empty(t, filter)
}

func TestBuildAuditFilter_UsuarioSubcadena(t *testing.T) {
	filter := buildAuditFilter(AuditFilter{Usuario: "garcia"})
	require.Len(t, filter, 1)
	assert.Equal(t, "usuario", filter[0].Key)

	regex := filter[0].Value.(bson.D)
	assert.Equal(t, bson.E{Key: "$regex", Value: "garcia"}, regex[0])
	assert.Equal(t, bson.E{Key: "$options", Value: "i"}, regex[1])
}

func TestBuildAuditFilter_AccionExacta(t *testing.T) {
	filter := buildAuditFilter(AuditFilter{Accion: "LOGIN_FAILED"})
	require.Len(t, filter, 1)
	assert.Equal(t, bson.E{Key: "accion", Value: "LOGIN_FAILED"}, filter[0])
}

// Regex metacharacters in the query must match themselves literally, never
// alter the query shape.
func TestEscapeRegex_NeutralizaMetacaracteres(t *testing.T) {
	filter := buildAuditFilter(AuditFilter{Usuario: "a.b*|c"})
	regex := filter[0].Value.(bson.D)
	assert.Equal(t, `a\.b\*\|c`, regex[0].Value)
}
