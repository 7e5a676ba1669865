package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"soapbox/internal/domain/entity"
	"soapbox/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- transaction stubs ---

// stubTxManager runs the callback directly against a fixed factory; the tests
// exercise business logic, not commit semantics.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type stubRepoFactory struct {
	users *stubUserRepo
	posts *stubPostRepo
	votes *stubVoteRepo
}

func (f *stubRepoFactory) NewUserRepository() repository.UserRepository { return f.users }
func (f *stubRepoFactory) NewPostRepository() repository.PostRepository { return f.posts }
func (f *stubRepoFactory) NewVoteRepository() repository.VoteRepository { return f.votes }

// --- user repository stub ---

type stubUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*entity.User)}
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied

	return nil
}

// --- post repository stub ---

type stubPostRepo struct {
	posts      map[int64]*entity.Post
	voteCounts map[int64]int64
	nextID     int64
	lastFilter repository.PostFilter
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{
		posts:      make(map[int64]*entity.Post),
		voteCounts: make(map[int64]int64),
	}
}

func (r *stubPostRepo) FindByID(_ context.Context, id int64) (*entity.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}
	copied := *post

	return &copied, nil
}

func (r *stubPostRepo) List(_ context.Context, filter repository.PostFilter) ([]*entity.PostWithVotes, error) {
	r.lastFilter = filter

	var result []*entity.PostWithVotes
	for _, post := range r.posts {
		if filter.Search != "" && !strings.Contains(post.Title, filter.Search) {
			continue
		}
		result = append(result, &entity.PostWithVotes{
			Post:  *post,
			Votes: r.voteCounts[post.ID],
		})
	}

	return result, nil
}

func (r *stubPostRepo) Create(_ context.Context, post *entity.Post) error {
	r.nextID++
	post.ID = r.nextID
	post.CreatedAt = time.Now()
	copied := *post
	r.posts[post.ID] = &copied

	return nil
}

func (r *stubPostRepo) Update(_ context.Context, post *entity.Post) error {
	if _, ok := r.posts[post.ID]; !ok {
		return repository.ErrPostNotFound
	}
	copied := *post
	r.posts[post.ID] = &copied

	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.posts[id]; !ok {
		return repository.ErrPostNotFound
	}
	delete(r.posts, id)

	return nil
}

// --- vote repository stub ---

type voteKey struct {
	userID int64
	postID int64
}

type stubVoteRepo struct {
	votes map[voteKey]struct{}

	// createErr simulates the store rejecting an insert, e.g. the composite
	// key constraint firing under a concurrent-cast race.
	createErr error
}

func newStubVoteRepo() *stubVoteRepo {
	return &stubVoteRepo{votes: make(map[voteKey]struct{})}
}

func (r *stubVoteRepo) Find(_ context.Context, userID, postID int64) (*entity.Vote, error) {
	if _, ok := r.votes[voteKey{userID, postID}]; !ok {
		return nil, repository.ErrVoteNotFound
	}

	return &entity.Vote{UserID: userID, PostID: postID}, nil
}

func (r *stubVoteRepo) FindByUser(_ context.Context, userID int64) ([]*entity.Vote, error) {
	var result []*entity.Vote
	for key := range r.votes {
		if key.userID == userID {
			result = append(result, &entity.Vote{UserID: key.userID, PostID: key.postID})
		}
	}

	return result, nil
}

func (r *stubVoteRepo) Create(_ context.Context, vote *entity.Vote) error {
	if r.createErr != nil {
		return r.createErr
	}
	key := voteKey{vote.UserID, vote.PostID}
	if _, ok := r.votes[key]; ok {
		return repository.ErrVoteAlreadyExists
	}
	r.votes[key] = struct{}{}

	return nil
}

func (r *stubVoteRepo) Delete(_ context.Context, userID, postID int64) error {
	key := voteKey{userID, postID}
	if _, ok := r.votes[key]; !ok {
		return repository.ErrVoteNotFound
	}
	delete(r.votes, key)

	return nil
}

// --- service stubs ---

// stubHasher is a transparent stand-in for the Argon2 hasher; the real one is
// covered by its own tests.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (stubHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// stubTokenService issues transparent tokens of the form "token:<id>".
type stubTokenService struct{}

func (stubTokenService) Issue(userID int64, _ time.Duration) (string, error) {
	return "token:" + strconv.FormatInt(userID, 10), nil
}

func (stubTokenService) Verify(token string) (int64, error) {
	return strconv.ParseInt(strings.TrimPrefix(token, "token:"), 10, 64)
}

func (stubTokenService) DefaultTTL() time.Duration {
	return 30 * time.Minute
}
