// Package sanitize strips the store's internal bookkeeping fields from
// documents before they cross the API boundary.
package sanitize

import "github.com/edukshare-max/fastapi-backend/internal/model"

// Cosmos DB attaches these fields to every stored item. None of them may
// ever reach a client.
var internalFields = []string{"_id", "_rid", "_self", "_etag", "_attachments", "_ts"}

// Document returns a shallow copy of doc without store-internal fields.
// Nil in, nil out. Idempotent.
func Document(doc model.Documento) model.Documento {
	if doc == nil {
		return nil
	}
	clean := make(model.Documento, len(doc))
	for k, v := range doc {
		clean[k] = v
	}
	for _, f := range internalFields {
		delete(clean, f)
	}
	return clean
}

// Documents sanitizes every element of a list. A nil list sanitizes to an
// empty one so handlers can always serialize an array.
func Documents(docs []model.Documento) []model.Documento {
	clean := make([]model.Documento, 0, len(docs))
	for _, d := range docs {
		clean = append(clean, Document(d))
	}
	return clean
}
