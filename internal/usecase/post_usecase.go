package usecase

import (
	"context"
	"time"
)

// CreatePostInput carries the data for creating a post. Published defaults to
// true when omitted.
type CreatePostInput struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Published *bool  `json:"published"`
}

// UpdatePostInput carries a full replacement of a post's mutable fields.
type UpdatePostInput struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Published *bool  `json:"published"`
}

// ListPostsInput filters and pages the post listing.
type ListPostsInput struct {
	Search string `query:"search"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Skip   int    `query:"skip" validate:"omitempty,min=0"`
}

// PostOutput is the public view of a post.
type PostOutput struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	OwnerID   int64     `json:"owner_id"`
}

// PostWithVotesOutput pairs a post with the number of votes cast on it.
type PostWithVotesOutput struct {
	PostOutput
	Votes int64 `json:"votes"`
}

// PostUsecase defines the application operations around posts. Callers are
// already authenticated; mutation operations additionally enforce ownership.
type PostUsecase interface {
	// Create persists a new post owned by the calling user.
	Create(ctx context.Context, ownerID int64, input *CreatePostInput) (*PostOutput, error)

	// Get fetches a single post by id.
	Get(ctx context.Context, id int64) (*PostOutput, error)

	// List returns posts matching the filter, each with its vote count.
	List(ctx context.Context, input *ListPostsInput) ([]*PostWithVotesOutput, error)

	// Update replaces a post's mutable fields. Only the owner may update.
	Update(ctx context.Context, userID, postID int64, input *UpdatePostInput) (*PostOutput, error)

	// Delete removes a post. Only the owner may delete; votes cascade.
	Delete(ctx context.Context, userID, postID int64) error
}
