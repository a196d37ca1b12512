package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"lumen/internal/domain/status"
)

const statusChecksCollection = "status_checks"

type StatusRepository struct {
	coll *mongo.Collection
}

func NewStatusRepository(db *mongo.Database) *StatusRepository {
	return &StatusRepository{
		coll: db.Collection(statusChecksCollection),
	}
}

func (r *StatusRepository) Insert(ctx context.Context, check *status.Check) error {
	if _, err := r.coll.InsertOne(ctx, check); err != nil {
		return fmt.Errorf("failed to insert status check: %w", err)
	}
	return nil
}

// List returns up to limit records in natural (insertion) order.
func (r *StatusRepository) List(ctx context.Context, limit int64) ([]*status.Check, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}
	defer cursor.Close(ctx)

	checks := []*status.Check{}
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, fmt.Errorf("failed to decode status checks: %w", err)
	}
	return checks, nil
}
