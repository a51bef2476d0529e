package services_test

import (
	"testing"
	"time"

	"github.com/inkwellhq/inkwell/pkg/internal/database"
	"github.com/inkwellhq/inkwell/pkg/internal/models"
	"github.com/inkwellhq/inkwell/pkg/internal/services"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedPagination(t *testing.T) {
	setupTestDatabase(t)
	viper.Set("feed.items_per_page", 10)

	author := createTestAccount(t, "paginator")
	group := createTestGroup(t, "team")

	for i := 0; i < 17; i++ {
		_, err := services.NewPost(author, "entry", &group, nil)
		require.NoError(t, err)
	}

	tx := services.FilterPostWithGroup(database.C, group)

	posts, pagination, err := services.GetFeed(tx, 1)
	require.NoError(t, err)
	assert.Len(t, posts, 10)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 2, pagination.TotalPages)
	assert.Equal(t, int64(17), pagination.Count)
	assert.True(t, pagination.HasNext)
	assert.False(t, pagination.HasPrev)

	posts, pagination, err = services.GetFeed(tx, 2)
	require.NoError(t, err)
	assert.Len(t, posts, 7)
	assert.False(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)
}

func TestFeedPageClamping(t *testing.T) {
	setupTestDatabase(t)
	viper.Set("feed.items_per_page", 10)

	author := createTestAccount(t, "clamper")
	for i := 0; i < 17; i++ {
		_, err := services.NewPost(author, "entry", nil, nil)
		require.NoError(t, err)
	}

	// Beyond the last page lands on the last page
	posts, pagination, err := services.GetFeed(database.C, 99)
	require.NoError(t, err)
	assert.Equal(t, 2, pagination.Page)
	assert.Len(t, posts, 7)

	// Zero and negative land on the first page
	_, pagination, err = services.GetFeed(database.C, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, pagination.Page)

	_, pagination, err = services.GetFeed(database.C, -3)
	require.NoError(t, err)
	assert.Equal(t, 1, pagination.Page)
}

func TestFeedEmptyListingIsOnePage(t *testing.T) {
	setupTestDatabase(t)
	viper.Set("feed.items_per_page", 10)

	posts, pagination, err := services.GetFeed(database.C, 1)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 1, pagination.TotalPages)
	assert.False(t, pagination.HasNext)
	assert.False(t, pagination.HasPrev)
}

func TestFeedOrdering(t *testing.T) {
	setupTestDatabase(t)
	viper.Set("feed.items_per_page", 10)

	author := createTestAccount(t, "chronicler")

	// Two posts share a publish instant, the id breaks the tie.
	moment := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		require.NoError(t, database.C.Create(&models.Post{
			Body:        "older",
			AuthorID:    author.ID,
			PublishedAt: moment,
		}).Error)
	}
	newest, err := services.NewPost(author, "newest", nil, nil)
	require.NoError(t, err)

	posts, _, err := services.GetFeed(database.C, 1)
	require.NoError(t, err)
	require.Len(t, posts, 4)

	assert.Equal(t, newest.ID, posts[0].ID)
	for i := 1; i < len(posts); i++ {
		prev, curr := posts[i-1], posts[i]
		if prev.PublishedAt.Equal(curr.PublishedAt) {
			assert.Greater(t, prev.ID, curr.ID)
		} else {
			assert.True(t, prev.PublishedAt.After(curr.PublishedAt))
		}
	}

	// Same data, same ordering
	again, _, err := services.GetFeed(database.C, 1)
	require.NoError(t, err)
	for i := range posts {
		assert.Equal(t, posts[i].ID, again[i].ID)
	}
}

func TestFollowedFeedScenario(t *testing.T) {
	setupTestDatabase(t)
	viper.Set("feed.items_per_page", 10)

	alice := createTestAccount(t, "alice")
	bob := createTestAccount(t, "bob")
	carol := createTestAccount(t, "carol")

	_, err := services.FollowAccount(alice, bob)
	require.NoError(t, err)

	post, err := services.NewPost(bob, "hello from bob", nil, nil)
	require.NoError(t, err)

	posts, _, err := services.GetFeed(services.FilterPostWithFollowed(database.C, alice), 1)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, post.ID, posts[0].ID)

	posts, _, err = services.GetFeed(services.FilterPostWithFollowed(database.C, carol), 1)
	require.NoError(t, err)
	assert.Empty(t, posts)
}
