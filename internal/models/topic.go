package models

type Topic struct {
	Slug        string `gorm:"primaryKey" json:"slug"`
	Description string `json:"description"`
}
