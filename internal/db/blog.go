package db

import (
	"time"

	"gorm.io/gorm"
)

// BlogPost 定义了博客文章模型
type BlogPost struct {
	gorm.Model
	Title       string         `gorm:"size:255;not null" json:"title"`
	Slug        string         `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Excerpt     string         `gorm:"type:text" json:"excerpt"`
	Content     string         `gorm:"type:text" json:"content"`
	CoverURL    string         `gorm:"size:255" json:"coverUrl"`
	IsPublished bool           `json:"isPublished"`
	IsFeatured  bool           `json:"isFeatured"`
	PublishedAt *time.Time     `json:"publishedAt"`
	AuthorID    uint           `json:"authorId"`
	Author      User           `json:"author"`
	Categories  []BlogCategory `gorm:"many2many:blog_post_categories;" json:"categories"`
	Tags        []BlogTag      `gorm:"many2many:blog_post_tags;" json:"tags"`
}

// BlogCategory 定义了博客分类模型
type BlogCategory struct {
	gorm.Model
	Name  string     `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Slug  string     `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Posts []BlogPost `gorm:"many2many:blog_post_categories;" json:"-"`
}

// BlogTag 定义了博客标签模型
type BlogTag struct {
	gorm.Model
	Name  string     `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Slug  string     `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Posts []BlogPost `gorm:"many2many:blog_post_tags;" json:"-"`
}
