package services_test

import (
	"testing"
	"time"

	"github.com/inkwellhq/inkwell/pkg/internal/database"
	"github.com/inkwellhq/inkwell/pkg/internal/services"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostRequiresBody(t *testing.T) {
	setupTestDatabase(t)

	author := createTestAccount(t, "writer")

	_, err := services.NewPost(author, "   ", nil, nil)
	assert.Error(t, err)

	count, err := services.CountPost(database.C)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestEditPostKeepsPublishTimestamp(t *testing.T) {
	setupTestDatabase(t)

	author := createTestAccount(t, "writer")
	group := createTestGroup(t, "team")

	item, err := services.NewPost(author, "first draft", &group, nil)
	require.NoError(t, err)
	publishedAt := item.PublishedAt

	time.Sleep(10 * time.Millisecond)

	_, err = services.EditPost(item, "second draft", nil, lo.ToPtr("cover.png"))
	require.NoError(t, err)

	got, err := services.GetPost(database.C, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "second draft", got.Body)
	assert.Nil(t, got.GroupID)
	require.NotNil(t, got.Image)
	assert.Equal(t, "cover.png", *got.Image)
	assert.WithinDuration(t, publishedAt, got.PublishedAt, time.Millisecond)
	assert.NotNil(t, got.EditedAt)
}

func TestEditPostRequiresBody(t *testing.T) {
	setupTestDatabase(t)

	author := createTestAccount(t, "writer")
	item, err := services.NewPost(author, "keep me", nil, nil)
	require.NoError(t, err)

	_, err = services.EditPost(item, "", nil, nil)
	assert.Error(t, err)

	got, err := services.GetPost(database.C, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep me", got.Body)
}

func TestGroupDeletionNullsPosts(t *testing.T) {
	setupTestDatabase(t)

	author := createTestAccount(t, "writer")
	group := createTestGroup(t, "doomed")

	item, err := services.NewPost(author, "orphan to be", &group, nil)
	require.NoError(t, err)

	require.NoError(t, database.C.Model(&item).Update("group_id", nil).Error)

	got, err := services.GetPost(database.C, item.ID)
	require.NoError(t, err)
	assert.Nil(t, got.GroupID)

	// Still visible on the unfiltered feed and the author feed
	posts, _, err := services.GetFeed(database.C, 1)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	posts, _, err = services.GetFeed(services.FilterPostWithAuthor(database.C, author), 1)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestListPostCarriesCommentCount(t *testing.T) {
	setupTestDatabase(t)

	author := createTestAccount(t, "writer")
	reader := createTestAccount(t, "reader")

	item, err := services.NewPost(author, "discuss", nil, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := services.NewComment(item, reader, "nice one")
		require.NoError(t, err)
	}

	posts, err := services.ListPost(database.C, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(3), posts[0].Metric.CommentCount)
}
