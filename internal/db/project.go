package db

import "gorm.io/gorm"

// Project 定义了作品集项目模型
// Category 存分类名称，分类删除时由服务层改写为 Uncategorized

type Project struct {
	gorm.Model
	Title       string     `gorm:"size:255;not null" json:"title"`
	Slug        string     `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Category    string     `gorm:"size:100;index" json:"category"`
	Description string     `gorm:"type:text" json:"description"`
	CoverURL    string     `gorm:"size:255" json:"coverUrl"`
	GalleryURLs StringList `gorm:"type:text" json:"galleryUrls"`
	ClientName  string     `gorm:"size:100" json:"clientName"`
	Year        int        `json:"year"`
	SortOrder   int        `gorm:"default:0" json:"sortOrder"`
	IsActive    bool       `json:"isActive"`
	IsFeatured  bool       `json:"isFeatured"`
}

// ProjectCategory 定义了作品集分类模型
type ProjectCategory struct {
	gorm.Model
	Name      string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	SortOrder int    `gorm:"default:0" json:"sortOrder"`
}

// ProjectCategoryUncategorized 是删除分类时的兜底分类名。
const ProjectCategoryUncategorized = "Uncategorized"
