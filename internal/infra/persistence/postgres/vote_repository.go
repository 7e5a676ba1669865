package postgres

import (
	"context"

	"soapbox/internal/domain/entity"
	domainerrors "soapbox/internal/domain/errors"
	"soapbox/internal/domain/repository"
	"soapbox/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// voteRepository implements the domain.VoteRepository interface using GORM.
type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository is the constructor for voteRepository.
func NewVoteRepository(db *gorm.DB) repository.VoteRepository {
	return &voteRepository{db: db}
}

// Find retrieves the vote for a (user, post) pair.
func (repo *voteRepository) Find(ctx context.Context, userID, postID int64) (*entity.Vote, error) {
	var voteM model.VoteModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&voteM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find vote")
	}

	return toVoteDomain(&voteM), nil
}

// FindByUser retrieves all votes cast by a user.
func (repo *voteRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Vote, error) {
	var voteMs []model.VoteModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Find(&voteMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find votes by user")
	}

	votes := make([]*entity.Vote, 0, len(voteMs))
	for i := range voteMs {
		votes = append(votes, toVoteDomain(&voteMs[i]))
	}

	return votes, nil
}

// Create inserts a vote row. The composite primary key is the authority for
// vote uniqueness: when two concurrent inserts race, the loser's constraint
// violation surfaces here as ErrVoteAlreadyExists, never a generic failure.
func (repo *voteRepository) Create(ctx context.Context, vote *entity.Vote) error {
	voteM := fromVoteDomain(vote)

	if err := repo.db.WithContext(ctx).Create(voteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrVoteAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "vote references a missing user or post")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vote")
	}

	return nil
}

// Delete removes the vote row for a (user, post) pair.
func (repo *voteRepository) Delete(ctx context.Context, userID, postID int64) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.VoteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete vote")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVoteNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toVoteDomain(data *model.VoteModel) *entity.Vote {
	if data == nil {
		return nil
	}

	return &entity.Vote{
		UserID: data.UserID,
		PostID: data.PostID,
	}
}

func fromVoteDomain(data *entity.Vote) *model.VoteModel {
	if data == nil {
		return nil
	}

	return &model.VoteModel{
		UserID: data.UserID,
		PostID: data.PostID,
	}
}
