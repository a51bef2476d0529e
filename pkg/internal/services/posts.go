package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/inkwellhq/inkwell/pkg/internal/database"
	"github.com/inkwellhq/inkwell/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// FeedOrder is the total order of every post listing, the id breaks ties
// between posts published within the same instant.
const FeedOrder = "published_at DESC, id DESC"

func FilterPostWithGroup(tx *gorm.DB, group models.Group) *gorm.DB {
	return tx.Where("group_id = ?", group.ID)
}

func FilterPostWithAuthor(tx *gorm.DB, author models.Account) *gorm.DB {
	return tx.Where("author_id = ?", author.ID)
}

// FilterPostWithFollowed narrows the listing down to posts whose author
// the given account follows.
func FilterPostWithFollowed(tx *gorm.DB, follower models.Account) *gorm.DB {
	return tx.Where(
		"author_id IN (?)",
		database.C.Model(&models.Follow{}).
			Select("author_id").
			Where("follower_id = ?", follower.ID),
	)
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	item.Metric = models.PostMetric{
		CommentCount: CountPostComments(item.ID),
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func ListPost(tx *gorm.DB, take int, offset int) ([]*models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []*models.Post
	if err := PreloadGeneral(tx).
		Limit(take).Offset(offset).
		Order(FeedOrder).
		Find(&items).Error; err != nil {
		return items, err
	}

	idx := lo.Map(items, func(item *models.Post, index int) uint {
		return item.ID
	})

	// Load comment counts in one query
	var threads []struct {
		PostID uint
		Count  int64
	}

	if err := database.C.Model(&models.Comment{}).
		Select("post_id, COUNT(id) as count").
		Where("post_id IN (?)", idx).
		Group("post_id").
		Scan(&threads).Error; err != nil {
		return items, err
	}

	itemMap := lo.SliceToMap(items, func(item *models.Post) (uint, *models.Post) {
		return item.ID, item
	})

	for _, info := range threads {
		if post, ok := itemMap[info.PostID]; ok {
			post.Metric = models.PostMetric{
				CommentCount: info.Count,
			}
		}
	}

	return items, nil
}

func NewPost(author models.Account, body string, group *models.Group, image *string) (models.Post, error) {
	if len(strings.TrimSpace(body)) == 0 {
		return models.Post{}, fmt.Errorf("post body cannot be empty")
	}

	item := models.Post{
		Body:        body,
		Image:       image,
		AuthorID:    author.ID,
		PublishedAt: time.Now(),
	}
	if group != nil {
		item.GroupID = &group.ID
	}

	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	log.Debug().Uint("post", item.ID).Uint("author", author.ID).Msg("New post has been published.")
	return item, nil
}

// EditPost replaces the post's body, group and image. The publish
// timestamp stays what it was at creation.
func EditPost(item models.Post, body string, group *models.Group, image *string) (models.Post, error) {
	if len(strings.TrimSpace(body)) == 0 {
		return item, fmt.Errorf("post body cannot be empty")
	}

	item.Body = body
	item.Image = image
	if group != nil {
		item.GroupID = &group.ID
	} else {
		item.GroupID = nil
	}
	item.EditedAt = lo.ToPtr(time.Now())

	err := database.C.Omit("PublishedAt", "Author", "Group").Save(&item).Error

	return item, err
}
