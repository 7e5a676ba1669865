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

// voteService implements the VoteUsecase interface. Vote state per
// (user, post) pair is binary and lives entirely in row existence.
type voteService struct {
	txManager repository.TransactionManager
	voteRepo  repository.VoteRepository
	logger    *slog.Logger
}

// NewVoteService is the constructor for voteService.
func NewVoteService(
	txManager repository.TransactionManager,
	voteRepo repository.VoteRepository,
	logger *slog.Logger,
) usecase.VoteUsecase {
	return &voteService{
		txManager: txManager,
		voteRepo:  voteRepo,
		logger:    logger,
	}
}

// Apply toggles the caller's vote on a post inside one transaction.
func (srv *voteService) Apply(ctx context.Context, userID int64, input *usecase.ApplyVoteInput) (*usecase.ApplyVoteOutput, error) {
	var output *usecase.ApplyVoteOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		if *input.Dir == entity.VoteDirectionUp {
			output, err = srv.cast(ctx, repoFactory, userID, input.PostID)
		} else {
			output, err = srv.retract(ctx, repoFactory, userID, input.PostID)
		}

		return err
	})
	if err != nil {
		srv.logger.Warn("Failed to apply vote", "error", err, "userID", userID, "postID", input.PostID, "dir", *input.Dir)

		return nil, err
	}
	srv.logger.Debug("Vote applied", "userID", userID, "postID", input.PostID, "dir", *input.Dir)

	return output, nil
}

// cast inserts a vote row. The post must exist and the pair must not already
// have a vote. The pre-insert existence check gives a friendly conflict; the
// composite key constraint settles races the check cannot see.
func (srv *voteService) cast(ctx context.Context, repoFactory repository.RepositoryFactory, userID, postID int64) (*usecase.ApplyVoteOutput, error) {
	postRepo := repoFactory.NewPostRepository()
	voteRepo := repoFactory.NewVoteRepository()

	if _, err := postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound.WrapMessage("vote cast failed")
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	_, err := voteRepo.Find(ctx, userID, postID)
	if err == nil {
		return nil, domainerrors.ErrAlreadyVoted.WrapMessage("vote cast failed")
	}
	if !errors.Is(err, repository.ErrVoteNotFound) {
		return nil, errors.Wrap(err, "failed to find vote")
	}

	if err := voteRepo.Create(ctx, &entity.Vote{UserID: userID, PostID: postID}); err != nil {
		// A concurrent cast for the same pair lost the race at the constraint.
		if errors.Is(err, repository.ErrVoteAlreadyExists) {
			return nil, domainerrors.ErrAlreadyVoted.WrapMessage("vote cast failed")
		}

		return nil, errors.WithStack(err)
	}

	return &usecase.ApplyVoteOutput{Message: "Vote added successfully", Added: true}, nil
}

// retract deletes the vote row for the pair. Post existence is deliberately
// not re-checked here: a vote may outlive its post when cascade deletes are
// disabled, and retraction still has to work then.
func (srv *voteService) retract(ctx context.Context, repoFactory repository.RepositoryFactory, userID, postID int64) (*usecase.ApplyVoteOutput, error) {
	voteRepo := repoFactory.NewVoteRepository()

	if err := voteRepo.Delete(ctx, userID, postID); err != nil {
		if errors.Is(err, repository.ErrVoteNotFound) {
			return nil, domainerrors.ErrVoteNotFound.WrapMessage("vote retract failed")
		}

		return nil, errors.WithStack(err)
	}

	return &usecase.ApplyVoteOutput{Message: "Vote removed successfully", Added: false}, nil
}

// ListForUser returns all votes cast by the user.
func (srv *voteService) ListForUser(ctx context.Context, userID int64) ([]*usecase.VoteOutput, error) {
	votes, err := srv.voteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list votes")
	}

	outputs := make([]*usecase.VoteOutput, 0, len(votes))
	for _, vote := range votes {
		outputs = append(outputs, &usecase.VoteOutput{
			UserID: vote.UserID,
			PostID: vote.PostID,
		})
	}

	return outputs, nil
}
