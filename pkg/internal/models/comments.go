package models

type Comment struct {
	BaseModel

	Body string `json:"body"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author" gorm:"constraint:OnDelete:CASCADE"`

	PostID uint `json:"post_id"`
	Post   Post `json:"post" gorm:"constraint:OnDelete:CASCADE"`
}
