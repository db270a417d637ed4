package models

// Question references its category by id only; the reference is not enforced
// by a foreign key.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Text       string `gorm:"column:question;type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	CategoryID uint   `gorm:"column:category;not null" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}
