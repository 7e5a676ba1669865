package postgres

import (
	"context"
	"time"

	"soapbox/internal/domain/entity"
	domainerrors "soapbox/internal/domain/errors"
	"soapbox/internal/domain/repository"
	"soapbox/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the domain.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// FindByID retrieves a single post by its unique ID.
func (repo *postRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	var postM model.PostModel
	if err := repo.db.WithContext(ctx).First(&postM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// postWithVotesRow is the scan target for the left-join aggregate listing.
type postWithVotesRow struct {
	ID        int64
	Title     string
	Content   string
	Published bool
	CreatedAt time.Time
	OwnerID   int64
	Votes     int64
}

// List retrieves posts matching the filter, each with its vote count. Posts
// without votes appear with a count of zero thanks to the left join.
func (repo *postRepository) List(ctx context.Context, filter repository.PostFilter) ([]*entity.PostWithVotes, error) {
	var rows []postWithVotesRow

	query := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Select("posts.id, posts.title, posts.content, posts.published, posts.created_at, posts.owner_id, count(votes.post_id) AS votes").
		Joins("LEFT JOIN votes ON votes.post_id = posts.id").
		Group("posts.id")

	if filter.Search != "" {
		query = query.Where("posts.title LIKE ?", "%"+filter.Search+"%")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	posts := make([]*entity.PostWithVotes, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, &entity.PostWithVotes{
			Post: entity.Post{
				ID:        row.ID,
				Title:     row.Title,
				Content:   row.Content,
				Published: row.Published,
				CreatedAt: row.CreatedAt,
				OwnerID:   row.OwnerID,
			},
			Votes: row.Votes,
		})
	}

	return posts, nil
}

// Create persists a new post entity to the database.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "post owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required post information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt

	return nil
}

// Update modifies an existing post's mutable columns. Published is written
// unconditionally, so a full update can also unpublish.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"title":     post.Title,
			"content":   post.Content,
			"published": post.Published,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// Delete removes a post by its ID. The schema-level cascade removes its votes.
func (repo *postRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.PostModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		Published: data.Published,
		CreatedAt: data.CreatedAt,
		OwnerID:   data.OwnerID,
	}
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		Published: data.Published,
		OwnerID:   data.OwnerID,
	}
}
