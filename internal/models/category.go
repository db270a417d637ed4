package models

// Category is a labelled grouping of questions. Categories are seeded and
// never modified through the API.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"type:text;not null" json:"type"`
}
