package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edukshare-max/fastapi-backend/internal/model"
)

// CarnetRepository reads student profile documents. Carnets are provisioned
// by an external process; this backend never writes them.
type CarnetRepository interface {
	// FindByCorreoYMatricula matches both fields exactly. When the store
	// holds duplicates, the first document in store-native order wins.
	FindByCorreoYMatricula(ctx context.Context, correo, matricula string) (model.Documento, error)
	FindByMatricula(ctx context.Context, matricula string) (model.Documento, error)
}

type carnetRepo struct{ col *mongo.Collection }

func NewCarnetRepository(db *mongo.Database, collection string) CarnetRepository {
	return &carnetRepo{col: db.Collection(collection)}
}

func (r *carnetRepo) FindByCorreoYMatricula(ctx context.Context, correo, matricula string) (model.Documento, error) {
	return r.findOne(ctx, bson.D{
		{Key: "correo", Value: correo},
		{Key: "matricula", Value: matricula},
	})
}

func (r *carnetRepo) FindByMatricula(ctx context.Context, matricula string) (model.Documento, error) {
	return r.findOne(ctx, bson.D{{Key: "matricula", Value: matricula}})
}

// findOne maps an absent document to (nil, nil): not finding a carnet is a
// normal outcome, not a store error.
func (r *carnetRepo) findOne(ctx context.Context, filter bson.D) (model.Documento, error) {
	var doc model.Documento
	err := r.col.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}
