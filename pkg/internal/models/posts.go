package models

import "time"

type Post struct {
	BaseModel

	Body  string  `json:"body"`
	Image *string `json:"image,omitempty"`

	// PublishedAt is stamped once at creation; editing never touches it.
	PublishedAt time.Time  `json:"published_at" gorm:"index"`
	EditedAt    *time.Time `json:"edited_at,omitempty"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author" gorm:"constraint:OnDelete:CASCADE"`

	GroupID *uint  `json:"group_id,omitempty"`
	Group   *Group `json:"group,omitempty" gorm:"constraint:OnDelete:SET NULL"`

	Comments []Comment `json:"comments,omitempty"`

	Metric PostMetric `json:"metric" gorm:"-"`
}

type PostMetric struct {
	CommentCount int64 `json:"comment_count"`
}
