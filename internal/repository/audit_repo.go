package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edukshare-max/fastapi-backend/internal/model"
)

// DefaultAuditLimit caps normal audit queries; StatsAuditLimit caps the
// aggregate statistics query.
const (
	DefaultAuditLimit = 100
	StatsAuditLimit   = 1000
)

// AuditFilter narrows an audit query. Usuario matches as a substring,
// Accion exactly. Limit falls back to DefaultAuditLimit when zero.
type AuditFilter struct {
	Usuario string
	Accion  string
	Limit   int64
}

// AuditRepository appends and queries the append-only audit trail.
type AuditRepository interface {
	Append(ctx context.Context, entry *model.AuditLog) error
	// List returns matching entries ordered by timestamp descending.
	List(ctx context.Context, f AuditFilter) ([]model.AuditLog, error)
}

type auditRepo struct{ col *mongo.Collection }

func NewAuditRepository(db *mongo.Database, collection string) AuditRepository {
	return &auditRepo{col: db.Collection(collection)}
}

func (r *auditRepo) Append(ctx context.Context, entry *model.AuditLog) error {
	_, err := r.col.InsertOne(ctx, entry)
	return err
}

func (r *auditRepo) List(ctx context.Context, f AuditFilter) ([]model.AuditLog, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultAuditLimit
	}

	cursor, err := r.col.Find(ctx, buildAuditFilter(f), options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []model.AuditLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// buildAuditFilter constructs the query document. User input only ever
// appears as a parameter value: the substring match quotes regex
// metacharacters so it cannot change the query shape.
func buildAuditFilter(f AuditFilter) bson.D {
	filter := bson.D{}
	if f.Usuario != "" {
		filter = append(filter, bson.E{Key: "usuario", Value: bson.D{
			{Key: "$regex", Value: escapeRegex(f.Usuario)},
			{Key: "$options", Value: "i"},
		}})
	}
	if f.Accion != "" {
		filter = append(filter, bson.E{Key: "accion", Value: f.Accion})
	}
	return filter
}

func escapeRegex(s string) string {
	return regexp.QuoteMeta(s)
}
