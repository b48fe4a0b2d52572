package db

import "gorm.io/gorm"

// Testimonial 定义了客户评价模型
type Testimonial struct {
	gorm.Model
	Author    string `gorm:"size:100;not null" json:"author"`
	Company   string `gorm:"size:100" json:"company"`
	Quote     string `gorm:"type:text;not null" json:"quote"`
	AvatarURL string `gorm:"size:255" json:"avatarUrl"`
	Rating    int    `gorm:"default:5" json:"rating"`
	SortOrder int    `gorm:"default:0" json:"sortOrder"`
	IsActive  bool   `json:"isActive"`
}
