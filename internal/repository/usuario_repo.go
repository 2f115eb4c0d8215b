package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edukshare-max/fastapi-backend/internal/model"
)

// UsuarioRepository manages staff accounts in the usuarios container.
type UsuarioRepository interface {
	Create(ctx context.Context, u *model.UsuarioAdmin) error
	// FindByID returns (nil, nil) when the account does not exist.
	FindByID(ctx context.Context, id string) (*model.UsuarioAdmin, error)
	// FindByUsername matches username or email, case-insensitive on email.
	FindByUsername(ctx context.Context, username string) (*model.UsuarioAdmin, error)
	// List filters by campus and/or rol; empty strings mean no filter.
	List(ctx context.Context, campus, rol string) ([]model.UsuarioAdmin, error)
	// Update replaces the document identified by u.ID.
	Update(ctx context.Context, u *model.UsuarioAdmin) error
}

type usuarioRepo struct{ col *mongo.Collection }

func NewUsuarioRepository(db *mongo.Database, collection string) UsuarioRepository {
	return &usuarioRepo{col: db.Collection(collection)}
}

func (r *usuarioRepo) Create(ctx context.Context, u *model.UsuarioAdmin) error {
	_, err := r.col.InsertOne(ctx, u)
	return err
}

func (r *usuarioRepo) FindByID(ctx context.Context, id string) (*model.UsuarioAdmin, error) {
	return r.findOne(ctx, bson.D{{Key: "id", Value: id}})
}

func (r *usuarioRepo) FindByUsername(ctx context.Context, username string) (*model.UsuarioAdmin, error) {
	return r.findOne(ctx, bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "username", Value: username}},
		bson.D{{Key: "email", Value: bson.D{
			{Key: "$regex", Value: "^" + escapeRegex(username) + "$"},
			{Key: "$options", Value: "i"},
		}}},
	}}})
}

func (r *usuarioRepo) List(ctx context.Context, campus, rol string) ([]model.UsuarioAdmin, error) {
	filter := bson.D{}
	if campus != "" {
		filter = append(filter, bson.E{Key: "campus", Value: campus})
	}
	if rol != "" {
		filter = append(filter, bson.E{Key: "rol", Value: rol})
	}

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "username", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var usuarios []model.UsuarioAdmin
	if err := cursor.All(ctx, &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.UsuarioAdmin) error {
	_, err := r.col.ReplaceOne(ctx, bson.D{{Key: "id", Value: u.ID}}, u)
	return err
}

func (r *usuarioRepo) findOne(ctx context.Context, filter bson.D) (*model.UsuarioAdmin, error) {
	var u model.UsuarioAdmin
	err := r.col.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
