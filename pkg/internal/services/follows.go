package services

import (
	"errors"
	"fmt"

	"github.com/inkwellhq/inkwell/pkg/internal/database"
	"github.com/inkwellhq/inkwell/pkg/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrFollowNotFound = errors.New("follow does not exist")

func GetFollowOnAccount(follower models.Account, author models.Account) (*models.Follow, error) {
	var follow models.Follow
	if err := database.C.Where("follower_id = ? AND author_id = ?", follower.ID, author.ID).First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get follow: %v", err)
	}
	return &follow, nil
}

func IsFollowing(follower models.Account, author models.Account) bool {
	follow, err := GetFollowOnAccount(follower, author)
	return err == nil && follow != nil
}

// FollowAccount creates the edge if it is absent. Following yourself is
// silently skipped, following someone twice leaves a single edge. The
// composite unique index keeps concurrent requests from racing a
// duplicate in.
func FollowAccount(follower models.Account, author models.Account) (models.Follow, error) {
	if follower.ID == author.ID {
		return models.Follow{}, nil
	}

	follow := models.Follow{
		FollowerID: follower.ID,
		AuthorID:   author.ID,
	}

	err := database.C.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&follow).Error

	return follow, err
}

func UnfollowAccount(follower models.Account, author models.Account) error {
	var follow models.Follow
	if err := database.C.Where("follower_id = ? AND author_id = ?", follower.ID, author.ID).First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFollowNotFound
		}
		return fmt.Errorf("unable to check follow is exists or not: %v", err)
	}

	// Hard delete, otherwise the unique index would keep the pair from
	// ever being re-followed.
	err := database.C.Unscoped().Delete(&follow).Error
	return err
}

func CountAccountFollowers(author models.Account) int64 {
	var count int64
	if err := database.C.Model(&models.Follow{}).
		Where("author_id = ?", author.ID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}

func CountAccountFollowing(follower models.Account) int64 {
	var count int64
	if err := database.C.Model(&models.Follow{}).
		Where("follower_id = ?", follower.ID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}
