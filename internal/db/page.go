package db

import "gorm.io/gorm"

// Page represents a standalone content page such as About.
type Page struct {
	gorm.Model
	Slug    string `gorm:"uniqueIndex;not null" json:"slug"`
	Title   string `gorm:"not null" json:"title"`
	Summary string `json:"summary"`
	Content string `gorm:"type:text" json:"content"`
}
