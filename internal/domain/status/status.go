// Package status holds the status check log model. Records are append-only;
// they are never updated or deleted.
package status

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Check is a single timestamped status log record.
type Check struct {
	ID         string    `bson:"id" json:"id"`
	ClientName string    `bson:"client_name" json:"client_name"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

// NewCheck builds a check with a generated id and the current time.
func NewCheck(clientName string) *Check {
	return &Check{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
}

// Repository persists checks in the status_checks collection.
type Repository interface {
	Insert(ctx context.Context, check *Check) error

	// List returns up to limit records in insertion order.
	List(ctx context.Context, limit int64) ([]*Check, error)
}
