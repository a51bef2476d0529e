package models

type Account struct {
	BaseModel

	Name        string `json:"name" gorm:"uniqueIndex"`
	Nick        string `json:"nick"`
	Description string `json:"description"`
	Avatar      string `json:"avatar"`

	// Credential is managed by the account provisioning path only.
	Password string `json:"-"`

	Posts []Post `json:"posts,omitempty"`
}
