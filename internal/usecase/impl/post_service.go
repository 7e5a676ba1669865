package impl

import (
	"context"
	"log/slog"

	"soapbox/internal/domain/entity"
	domainerrors "soapbox/internal/domain/errors"
	"soapbox/internal/domain/repository"
	"soapbox/internal/usecase"

	"github.com/pkg/errors"
)

const defaultListLimit = 10

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	postRepo  repository.PostRepository
	logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(
	txManager repository.TransactionManager,
	postRepo repository.PostRepository,
	logger *slog.Logger,
) usecase.PostUsecase {
	return &postService{
		txManager: txManager,
		postRepo:  postRepo,
		logger:    logger,
	}
}

// Create persists a new post owned by the calling user.
func (srv *postService) Create(ctx context.Context, ownerID int64, input *usecase.CreatePostInput) (*usecase.PostOutput, error) {
	published := true
	if input.Published != nil {
		published = *input.Published
	}

	newPost := &entity.Post{
		Title:     input.Title,
		Content:   input.Content,
		Published: published,
		OwnerID:   ownerID,
	}

	if err := srv.postRepo.Create(ctx, newPost); err != nil {
		srv.logger.Error("Failed to create post", "error", err, "ownerID", ownerID)

		return nil, errors.WithStack(err)
	}
	srv.logger.Debug("Post created", "postID", newPost.ID, "ownerID", ownerID)

	return toPostOutput(newPost), nil
}

// Get fetches a single post by id.
func (srv *postService) Get(ctx context.Context, id int64) (*usecase.PostOutput, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound.WrapMessage("post lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostOutput(post), nil
}

// List returns posts matching the filter, each with its vote count.
func (srv *postService) List(ctx context.Context, input *usecase.ListPostsInput) ([]*usecase.PostWithVotesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	posts, err := srv.postRepo.List(ctx, repository.PostFilter{
		Search: input.Search,
		Limit:  limit,
		Offset: input.Skip,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	outputs := make([]*usecase.PostWithVotesOutput, 0, len(posts))
	for _, post := range posts {
		outputs = append(outputs, &usecase.PostWithVotesOutput{
			PostOutput: *toPostOutput(&post.Post),
			Votes:      post.Votes,
		})
	}

	return outputs, nil
}

// Update replaces a post's mutable fields after verifying ownership. The read
// and the write share one transaction so the ownership check cannot go stale.
func (srv *postService) Update(ctx context.Context, userID, postID int64, input *usecase.UpdatePostInput) (*usecase.PostOutput, error) {
	var updated *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.NewPostRepository()

		post, err := postRepo.FindByID(ctx, postID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound.WrapMessage("post update failed")
			}

			return errors.Wrap(err, "failed to find post by id")
		}

		if err := authorizeOwner(post.OwnerID, userID); err != nil {
			return err
		}

		published := true
		if input.Published != nil {
			published = *input.Published
		}

		post.Title = input.Title
		post.Content = input.Content
		post.Published = published

		if err := postRepo.Update(ctx, post); err != nil {
			return errors.WithStack(err)
		}
		updated = post

		return nil
	})
	if err != nil {
		srv.logger.Warn("Failed to update post", "error", err, "postID", postID, "userID", userID)

		return nil, err
	}
	srv.logger.Debug("Post updated", "postID", postID, "userID", userID)

	return toPostOutput(updated), nil
}

// Delete removes a post after verifying ownership. Votes on the post are
// removed by the schema-level cascade within the same transaction.
func (srv *postService) Delete(ctx context.Context, userID, postID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.NewPostRepository()

		post, err := postRepo.FindByID(ctx, postID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound.WrapMessage("post delete failed")
			}

			return errors.Wrap(err, "failed to find post by id")
		}

		if err := authorizeOwner(post.OwnerID, userID); err != nil {
			return err
		}

		return errors.WithStack(postRepo.Delete(ctx, postID))
	})
	if err != nil {
		srv.logger.Warn("Failed to delete post", "error", err, "postID", postID, "userID", userID)

		return err
	}
	srv.logger.Debug("Post deleted", "postID", postID, "userID", userID)

	return nil
}

// authorizeOwner enforces the ownership rule binding mutation rights to the
// resource owner.
func authorizeOwner(resourceOwnerID, currentUserID int64) error {
	if resourceOwnerID != currentUserID {
		return domainerrors.ErrNotResourceOwner.WrapMessage("ownership check failed")
	}

	return nil
}

func toPostOutput(post *entity.Post) *usecase.PostOutput {
	return &usecase.PostOutput{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Published: post.Published,
		CreatedAt: post.CreatedAt,
		OwnerID:   post.OwnerID,
	}
}
