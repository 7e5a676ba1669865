package repository

import (
	"context"
	"errors"

	"soapbox/internal/domain/entity"
)

// ErrVoteNotFound is a domain-specific error returned when no vote row exists
// for a (user, post) pair.
var ErrVoteNotFound = errors.New("vote not found")

// ErrVoteAlreadyExists is returned when inserting a vote for a (user, post)
// pair that already has one. The composite unique key at the store is the
// authority: a race between two concurrent inserts must surface this error on
// the loser, never a generic database failure.
var ErrVoteAlreadyExists = errors.New("vote already exists")

// VoteRepository defines the standard operations for vote persistence.
// A vote's state is binary and represented solely by row existence.
type VoteRepository interface {
	// Find retrieves the vote for a (user, post) pair, or ErrVoteNotFound.
	Find(ctx context.Context, userID, postID int64) (*entity.Vote, error)

	// FindByUser retrieves all votes cast by a user.
	FindByUser(ctx context.Context, userID int64) ([]*entity.Vote, error)

	// Create inserts a vote row. Returns ErrVoteAlreadyExists when the
	// composite key constraint rejects a duplicate.
	Create(ctx context.Context, vote *entity.Vote) error

	// Delete removes the vote row for a (user, post) pair, or ErrVoteNotFound
	// when there is nothing to remove.
	Delete(ctx context.Context, userID, postID int64) error
}
