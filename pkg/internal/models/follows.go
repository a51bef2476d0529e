package models

// Follow is a directed edge, the follower sees the author's posts in
// their followed feed. At most one edge per ordered pair.
type Follow struct {
	BaseModel

	FollowerID uint    `json:"follower_id" gorm:"uniqueIndex:idx_follows_unique"`
	Follower   Account `json:"follower" gorm:"constraint:OnDelete:CASCADE"`

	AuthorID uint    `json:"author_id" gorm:"uniqueIndex:idx_follows_unique"`
	Author   Account `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
