package impl

import (
	"context"
	"testing"

	domainerrors "soapbox/internal/domain/errors"
	"soapbox/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostServiceForTest() (usecase.PostUsecase, *stubPostRepo) {
	posts := newStubPostRepo()
	factory := &stubRepoFactory{posts: posts}
	service := NewPostService(&stubTxManager{factory: factory}, posts, newDiscardLogger())

	return service, posts
}

func boolPtr(v bool) *bool { return &v }

func TestPostService_Create(t *testing.T) {
	service, _ := newPostServiceForTest()

	output, err := service.Create(context.Background(), 1, &usecase.CreatePostInput{
		Title:   "T",
		Content: "C",
	})

	require.NoError(t, err)
	assert.NotZero(t, output.ID)
	assert.Equal(t, int64(1), output.OwnerID)
	assert.Equal(t, "T", output.Title)
	// Published defaults to true when omitted.
	assert.True(t, output.Published)
}

func TestPostService_Create_Unpublished(t *testing.T) {
	service, _ := newPostServiceForTest()

	output, err := service.Create(context.Background(), 1, &usecase.CreatePostInput{
		Title:     "Draft",
		Content:   "C",
		Published: boolPtr(false),
	})

	require.NoError(t, err)
	assert.False(t, output.Published)
}

func TestPostService_Get_NotFound(t *testing.T) {
	service, _ := newPostServiceForTest()

	output, err := service.Get(context.Background(), 99)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
	assert.Nil(t, output)
}

func TestPostService_List(t *testing.T) {
	service, posts := newPostServiceForTest()
	ctx := context.Background()

	created, err := service.Create(ctx, 1, &usecase.CreatePostInput{Title: "T", Content: "C"})
	require.NoError(t, err)
	_, err = service.Create(ctx, 1, &usecase.CreatePostInput{Title: "Other", Content: "C"})
	require.NoError(t, err)
	posts.voteCounts[created.ID] = 3

	// Search filters by title substring; vote counts ride along.
	outputs, err := service.List(ctx, &usecase.ListPostsInput{Search: "T"})
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, created.ID, outputs[0].ID)
	assert.Equal(t, int64(3), outputs[0].Votes)

	// An unfiltered listing counts zero votes for unvoted posts.
	outputs, err = service.List(ctx, &usecase.ListPostsInput{})
	require.NoError(t, err)
	assert.Len(t, outputs, 2)
	for _, output := range outputs {
		if output.ID != created.ID {
			assert.Zero(t, output.Votes)
		}
	}

	// The default page size reaches the repository when none is given.
	assert.Equal(t, defaultListLimit, posts.lastFilter.Limit)
}

func TestPostService_Update_OwnerOnly(t *testing.T) {
	service, _ := newPostServiceForTest()
	ctx := context.Background()

	created, err := service.Create(ctx, 1, &usecase.CreatePostInput{Title: "T", Content: "C"})
	require.NoError(t, err)

	input := &usecase.UpdatePostInput{Title: "T2", Content: "C2", Published: boolPtr(false)}

	// Another user is rejected before anything is written.
	_, err = service.Update(ctx, 2, created.ID, input)
	assert.ErrorIs(t, err, domainerrors.ErrNotResourceOwner)

	// The owner succeeds and gets the replaced fields back.
	output, err := service.Update(ctx, 1, created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "T2", output.Title)
	assert.Equal(t, "C2", output.Content)
	assert.False(t, output.Published)
}

func TestPostService_Update_NotFound(t *testing.T) {
	service, _ := newPostServiceForTest()

	_, err := service.Update(context.Background(), 1, 99, &usecase.UpdatePostInput{Title: "T", Content: "C"})
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_Delete_OwnerOnly(t *testing.T) {
	service, posts := newPostServiceForTest()
	ctx := context.Background()

	created, err := service.Create(ctx, 1, &usecase.CreatePostInput{Title: "T", Content: "C"})
	require.NoError(t, err)

	err = service.Delete(ctx, 2, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotResourceOwner)
	assert.Contains(t, posts.posts, created.ID)

	err = service.Delete(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.NotContains(t, posts.posts, created.ID)

	err = service.Delete(ctx, 1, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}
