package repository

import (
	"context"
	"errors"

	"soapbox/internal/domain/entity"
)

// ErrPostNotFound is a domain-specific error returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostFilter narrows and pages the post listing. Search matches a substring of
// the title; Limit and Offset implement plain offset pagination.
type PostFilter struct {
	Search string
	Limit  int
	Offset int
}

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// FindByID retrieves a single post by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Post, error)

	// List retrieves posts matching the filter, each carrying the count of
	// votes cast on it (zero when none).
	List(ctx context.Context, filter PostFilter) ([]*entity.PostWithVotes, error)

	// Create persists a new post entity to the storage. The generated ID and
	// creation timestamp are written back onto the entity.
	Create(ctx context.Context, post *entity.Post) error

	// Update modifies an existing post entity in the storage.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post by its ID. Associated votes cascade-delete.
	Delete(ctx context.Context, id int64) error
}
