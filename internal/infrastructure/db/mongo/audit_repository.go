package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

const auditCollection = "audit_events"

var _ ports.AuditSink = (*AuditRepository)(nil)

// AuditRepository implements ports.AuditSink using MongoDB.
type AuditRepository struct {
	db *mongo.Database
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{db: db}
}

// EnsureIndexes creates the lookup index on (resource, resource_id, occurred_at).
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(auditCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "resource", Value: 1},
			{Key: "resource_id", Value: 1},
			{Key: "occurred_at", Value: -1},
		},
		Options: options.Index().SetName("idx_audit_resource"),
	})
	if err != nil {
		return fmt.Errorf("audit indexes: %w", err)
	}
	return nil
}

// Write persists one audit event. Re-delivery of the same event id is ignored.
func (r *AuditRepository) Write(ctx context.Context, event domain.AuditEvent) error {
	doc := bson.M{
		"_id":         event.ID,
		"action":      string(event.Action),
		"resource":    event.Resource,
		"resource_id": int64(event.ResourceID),
		"actor_id":    int64(event.ActorID),
		"occurred_at": event.OccurredAt.UTC(),
		"recorded_at": time.Now().UTC(),
	}

	_, err := r.db.Collection(auditCollection).InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return err
}
