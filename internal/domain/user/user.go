// Package user holds the user profile model and its repository contract.
package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Profile is a user record keyed by the Google subject id. Exactly one
// document exists per GoogleID.
type Profile struct {
	ID        string    `bson:"id" json:"id"`
	GoogleID  string    `bson:"google_id" json:"google_id"`
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name" json:"name"`
	Picture   string    `bson:"picture" json:"picture"`
	AboutMe   string    `bson:"about_me" json:"about_me"`
	Age       *int      `bson:"age" json:"age"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	LastLogin time.Time `bson:"last_login" json:"last_login"`
}

// NewProfile builds a fresh profile from provider identity claims.
func NewProfile(googleID, email, name, picture string) *Profile {
	now := time.Now().UTC()
	return &Profile{
		ID:        uuid.NewString(),
		GoogleID:  googleID,
		Email:     email,
		Name:      name,
		Picture:   picture,
		AboutMe:   "",
		Age:       nil,
		CreatedAt: now,
		LastLogin: now,
	}
}

// Update carries a partial profile update. Nil fields are left untouched.
// Email, picture, and identity fields are immutable through this path.
type Update struct {
	Name    *string
	AboutMe *string
	Age     *int
}

// IsEmpty reports whether the update carries no changes.
func (u Update) IsEmpty() bool {
	return u.Name == nil && u.AboutMe == nil && u.Age == nil
}

// Repository persists profiles in the users collection.
type Repository interface {
	// UpsertByGoogleID replaces the full document matching the profile's
	// GoogleID, inserting it if absent. Not a partial merge.
	UpsertByGoogleID(ctx context.Context, profile *Profile) error

	// FindByGoogleID returns the profile for the subject id, or a not-found
	// error if no document matches.
	FindByGoogleID(ctx context.Context, googleID string) (*Profile, error)

	// UpdateFields merges only the supplied fields into the matching
	// document and returns the updated profile. Fails with a not-found
	// error if no document matches.
	UpdateFields(ctx context.Context, googleID string, update Update) (*Profile, error)
}
