package services

import (
	"github.com/inkwellhq/inkwell/pkg/internal/models"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

const DefaultItemsPerPage = 10

type Pagination struct {
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	Count      int64 `json:"count"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

func ItemsPerPage() int {
	if size := viper.GetInt("feed.items_per_page"); size > 0 {
		return size
	}
	return DefaultItemsPerPage
}

// GetFeed slices the already filtered post listing into 1-based pages.
// Out-of-range page numbers clamp to the nearest valid page instead of
// erroring, so a stale pager link still lands somewhere sensible. An
// empty listing is a single empty page.
func GetFeed(tx *gorm.DB, page int) ([]*models.Post, Pagination, error) {
	size := ItemsPerPage()

	count, err := CountPost(tx)
	if err != nil {
		return nil, Pagination{}, err
	}

	totalPages := int((count + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	items, err := ListPost(tx, size, (page-1)*size)
	if err != nil {
		return nil, Pagination{}, err
	}

	return items, Pagination{
		Page:       page,
		TotalPages: totalPages,
		Count:      count,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, nil
}
