package services_test

import (
	"fmt"
	"testing"

	"github.com/inkwellhq/inkwell/pkg/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentThreadReadsOldestFirst(t *testing.T) {
	setupTestDatabase(t)

	author := createTestAccount(t, "writer")
	reader := createTestAccount(t, "reader")

	post, err := services.NewPost(author, "discuss", nil, nil)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := services.NewComment(post, reader, fmt.Sprintf("comment %d", i))
		require.NoError(t, err)
	}

	comments, err := services.ListPostComments(post, 100, 0)
	require.NoError(t, err)
	require.Len(t, comments, 5)

	for i, comment := range comments {
		assert.Equal(t, fmt.Sprintf("comment %d", i), comment.Body)
	}
	for i := 1; i < len(comments); i++ {
		assert.GreaterOrEqual(t, comments[i].CreatedAt.UnixNano(), comments[i-1].CreatedAt.UnixNano())
		assert.Greater(t, comments[i].ID, comments[i-1].ID)
	}
}

func TestCommentRequiresBody(t *testing.T) {
	setupTestDatabase(t)

	author := createTestAccount(t, "writer")

	post, err := services.NewPost(author, "discuss", nil, nil)
	require.NoError(t, err)

	_, err = services.NewComment(post, author, "  ")
	assert.Error(t, err)

	assert.Equal(t, int64(0), services.CountPostComments(post.ID))
}
