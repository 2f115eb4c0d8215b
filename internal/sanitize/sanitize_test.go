package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edukshare-max/fastapi-backend/internal/model"
)

func cosmosDoc() model.Documento {
	return model.Documento{
		"id":           "carnet-2020123",
		"matricula":    "2020123",
		"correo":       "a@x.edu",
		"nombre":       "Ana",
		"_id":          "objectid",
		"_rid":         "rid-abc",
		"_self":        "dbs/x/colls/y/docs/z",
		"_etag":        `"0000-0000"`,
		"_attachments": "attachments/",
		"_ts":          1700000000,
	}
}

func TestDocument_StripsInternalFields(t *testing.T) {
	clean := Document(cosmosDoc())

	for _, f := range internalFields {
		assert.NotContains(t, clean, f)
	}
	assert.Equal(t, "2020123", clean["matricula"])
	assert.Equal(t, "carnet-2020123", clean["id"])
	assert.Equal(t, "Ana", clean["nombre"])
}

func TestDocument_DoesNotMutateInput(t *testing.T) {
	doc := cosmosDoc()
	_ = Document(doc)
	assert.Contains(t, doc, "_rid")
	assert.Contains(t, doc, "_ts")
}

func TestDocument_Idempotent(t *testing.T) {
	once := Document(cosmosDoc())
	twice := Document(once)
	assert.Equal(t, once, twice)
}

func TestDocument_Nil(t *testing.T) {
	assert.Nil(t, Document(nil))
}

func TestDocuments_SanitizesEveryElement(t *testing.T) {
	clean := Documents([]model.Documento{cosmosDoc(), cosmosDoc()})

	assert.Len(t, clean, 2)
	for _, d := range clean {
		for _, f := range internalFields {
			assert.NotContains(t, d, f)
		}
	}
}

func TestDocuments_NilIsEmptyList(t *testing.T) {
	clean := Documents(nil)
	assert.NotNil(t, clean)
	assert.Empty(t, clean)
}
