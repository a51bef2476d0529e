package models

type Group struct {
	BaseModel

	Alias       string `json:"alias" gorm:"uniqueIndex" validate:"lowercase"`
	Name        string `json:"name"`
	Description string `json:"description"`

	Posts []Post `json:"posts,omitempty"`
}
