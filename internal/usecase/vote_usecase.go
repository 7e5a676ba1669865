package usecase

import "context"

// ApplyVoteInput carries a vote toggle intent. Dir is 1 to cast a vote and 0
// to retract one; it is a binary intent, not a magnitude.
type ApplyVoteInput struct {
	PostID int64 `json:"post_id" validate:"required"`
	Dir    *int  `json:"dir" validate:"required,oneof=0 1"`
}

// ApplyVoteOutput reports the result of a vote toggle. Added distinguishes a
// cast (201) from a retraction (200) at the transport layer.
type ApplyVoteOutput struct {
	Message string `json:"message"`
	Added   bool   `json:"-"`
}

// VoteOutput is the public view of a vote.
type VoteOutput struct {
	UserID int64 `json:"user_id"`
	PostID int64 `json:"post_id"`
}

// VoteUsecase coordinates the one-vote-per-user-per-post invariant.
type VoteUsecase interface {
	// Apply toggles the caller's vote on a post. Casting on an existing vote
	// conflicts; retracting a missing vote fails. Deliberately not idempotent
	// in either direction.
	Apply(ctx context.Context, userID int64, input *ApplyVoteInput) (*ApplyVoteOutput, error)

	// ListForUser returns all votes cast by the user.
	ListForUser(ctx context.Context, userID int64) ([]*VoteOutput, error)
}
