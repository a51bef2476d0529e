package services

import (
	"fmt"
	"strings"

	"github.com/inkwellhq/inkwell/pkg/internal/database"
	"github.com/inkwellhq/inkwell/pkg/internal/models"
)

// Threads read oldest first.
const ThreadOrder = "created_at ASC, id ASC"

func ListPostComments(post models.Post, take int, offset int) ([]models.Comment, error) {
	if take > 100 {
		take = 100
	}

	var comments []models.Comment
	if err := database.C.
		Where("post_id = ?", post.ID).
		Preload("Author").
		Limit(take).Offset(offset).
		Order(ThreadOrder).
		Find(&comments).Error; err != nil {
		return comments, err
	}

	return comments, nil
}

func CountPostComments(id uint) int64 {
	var count int64
	if err := database.C.Model(&models.Comment{}).
		Where("post_id = ?", id).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}

func NewComment(post models.Post, author models.Account, body string) (models.Comment, error) {
	if len(strings.TrimSpace(body)) == 0 {
		return models.Comment{}, fmt.Errorf("comment body cannot be empty")
	}

	comment := models.Comment{
		Body:     body,
		AuthorID: author.ID,
		PostID:   post.ID,
	}

	err := database.C.Create(&comment).Error

	return comment, err
}
