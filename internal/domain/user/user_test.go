package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile(t *testing.T) {
	p := NewProfile("google-sub-123", "user@example.com", "Test User", "https://example.com/p.jpg")

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "google-sub-123", p.GoogleID)
	assert.Equal(t, "user@example.com", p.Email)
	assert.Equal(t, "Test User", p.Name)
	assert.Equal(t, "https://example.com/p.jpg", p.Picture)
	assert.Empty(t, p.AboutMe)
	assert.Nil(t, p.Age)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.LastLogin)
}

func TestNewProfile_UniqueIDs(t *testing.T) {
	a := NewProfile("sub", "a@example.com", "A", "")
	b := NewProfile("sub", "a@example.com", "A", "")
	require.NotEqual(t, a.ID, b.ID)
}

func TestUpdate_IsEmpty(t *testing.T) {
	assert.True(t, Update{}.IsEmpty())

	name := "n"
	assert.False(t, Update{Name: &name}.IsEmpty())

	age := 0
	assert.False(t, Update{Age: &age}.IsEmpty())

	about := ""
	assert.False(t, Update{AboutMe: &about}.IsEmpty())
}
