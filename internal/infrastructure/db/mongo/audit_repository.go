package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adventureworks/catalog-api/internal/core/ports"
)

const auditCollection = "product_audit"

// AuditRepository appends product audit events to MongoDB. The collection is
// insert-only; events are never updated or deleted.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDocument struct {
	ID         string `bson:"_id"`
	Action     string `bson:"action"`
	ProductID  int64  `bson:"product_id"`
	Actor      string `bson:"actor"`
	OccurredAt int64  `bson:"occurred_at"`
	Detail     string `bson:"detail,omitempty"`
}

func (r *AuditRepository) Record(ctx context.Context, event ports.AuditEvent) error {
	doc := auditDocument{
		ID:         event.ID,
		Action:     event.Action,
		ProductID:  event.ProductID,
		Actor:      event.Actor,
		OccurredAt: event.OccurredAt.Unix(),
		Detail:     event.Detail,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
