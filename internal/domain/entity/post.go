package entity

import "time"

// Post represents a single piece of content published by a user.
// Only the owner referenced by OwnerID may mutate it.
type Post struct {
	ID        int64     // Integer identity assigned by the store on creation.
	Title     string    // Short headline of the post.
	Content   string    // Body text of the post.
	Published bool      // Visibility flag, defaults to true on creation.
	CreatedAt time.Time // Timestamp of when this post was created.
	OwnerID   int64     // References the User that created the post. Cascade-deletes with the owner.
}

// PostWithVotes is a read model pairing a post with the number of votes cast on it.
// The count is a left-join aggregate and is zero when the post has no votes.
type PostWithVotes struct {
	Post
	Votes int64
}
