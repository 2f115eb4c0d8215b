package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edukshare-max/fastapi-backend/internal/model"
)

// CitaRepository reads appointment documents, always scoped to one
// matricula so a student can never reach another student's citas.
type CitaRepository interface {
	// FindByMatricula returns every cita for the matricula, newest first
	// by its "inicio" timestamp.
	FindByMatricula(ctx context.Context, matricula string) ([]model.Documento, error)
	// FindByID returns one cita only when it belongs to the matricula;
	// (nil, nil) otherwise.
	FindByID(ctx context.Context, matricula, id string) (model.Documento, error)
}

type citaRepo struct{ col *mongo.Collection }

func NewCitaRepository(db *mongo.Database, collection string) CitaRepository {
	return &citaRepo{col: db.Collection(collection)}
}

func (r *citaRepo) FindByMatricula(ctx context.Context, matricula string) ([]model.Documento, error) {
	cursor, err := r.col.Find(ctx,
		bson.D{{Key: "matricula", Value: matricula}},
		options.Find().SetSort(bson.D{{Key: "inicio", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var citas []model.Documento
	if err := cursor.All(ctx, &citas); err != nil {
		return nil, err
	}
	return citas, nil
}

func (r *citaRepo) FindByID(ctx context.Context, matricula, id string) (model.Documento, error) {
	var doc model.Documento
	err := r.col.FindOne(ctx, bson.D{
		{Key: "matricula", Value: matricula},
		{Key: "id", Value: id},
	}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}
