package db

import "gorm.io/gorm"

// Client 定义了合作客户 Logo 墙条目
type Client struct {
	gorm.Model
	Name       string `gorm:"size:100;not null" json:"name"`
	LogoURL    string `gorm:"size:255" json:"logoUrl"`
	WebsiteURL string `gorm:"size:255" json:"websiteUrl"`
	SortOrder  int    `gorm:"default:0" json:"sortOrder"`
	IsActive   bool   `json:"isActive"`
}
