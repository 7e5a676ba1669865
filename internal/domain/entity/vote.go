package entity

// Vote records that a user has voted on a post. The (UserID, PostID) pair is
// the composite identity; existence of the row is the vote, there is no
// independent id and no magnitude.
type Vote struct {
	UserID int64 // References the voting User. Cascade-deletes with the user.
	PostID int64 // References the voted Post. Cascade-deletes with the post.
}

// Vote directions accepted by the vote endpoint. Up casts a vote, down
// retracts one. Not a magnitude, a binary toggle intent.
const (
	VoteDirectionUp   = 1
	VoteDirectionDown = 0
)
