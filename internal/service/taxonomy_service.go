package service

import (
	"errors"
	"strings"

	"github.com/HanyRabah/redzone-sub002/internal/db"
	"gorm.io/gorm"
)

var (
	ErrBlogCategoryExists   = errors.New("blog category already exists")
	ErrBlogCategoryNotFound = errors.New("blog category not found")
	ErrBlogCategoryRequired = errors.New("blog category name is required")
	ErrBlogTagExists        = errors.New("blog tag already exists")
	ErrBlogTagNotFound      = errors.New("blog tag not found")
	ErrBlogTagRequired      = errors.New("blog tag name is required")
)

// TaxonomyService wraps blog category and tag operations.
// 两者统一做唯一性预检：重名一律拒绝，Slug 由名称派生。
type TaxonomyService struct {
	db *gorm.DB
}

// NewTaxonomyService creates a TaxonomyService instance.
func NewTaxonomyService(gdb *gorm.DB) *TaxonomyService {
	return &TaxonomyService{db: gdb}
}

// CategoryUsage 描述分类及其关联文章数。
type CategoryUsage struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int64  `json:"count"`
}

// ListCategories returns blog categories ordered by name.
func (s *TaxonomyService) ListCategories() ([]db.BlogCategory, error) {
	var categories []db.BlogCategory
	if err := s.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CategoryUsageCounts 返回各分类在已发布文章中的使用统计。
func (s *TaxonomyService) CategoryUsageCounts() ([]CategoryUsage, error) {
	var rows []CategoryUsage
	err := s.db.Table("blog_categories").
		Select("blog_categories.id, blog_categories.name, blog_categories.slug, COUNT(DISTINCT blog_posts.id) AS count").
		Joins("LEFT JOIN blog_post_categories ON blog_post_categories.blog_category_id = blog_categories.id").
		Joins("LEFT JOIN blog_posts ON blog_posts.id = blog_post_categories.blog_post_id AND blog_posts.is_published = ? AND blog_posts.deleted_at IS NULL", true).
		Where("blog_categories.deleted_at IS NULL").
		Group("blog_categories.id, blog_categories.name, blog_categories.slug").
		Order("blog_categories.name asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateCategory inserts a new category with a unique name.
func (s *TaxonomyService) CreateCategory(name string) (*db.BlogCategory, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrBlogCategoryRequired
	}

	var existing db.BlogCategory
	if err := s.db.Where("name = ?", trimmed).First(&existing).Error; err == nil {
		return nil, ErrBlogCategoryExists
	}

	category := db.BlogCategory{Name: trimmed, Slug: Slugify(trimmed)}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory changes the category name while keeping uniqueness.
func (s *TaxonomyService) UpdateCategory(id uint, name string) (*db.BlogCategory, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrBlogCategoryRequired
	}

	var category db.BlogCategory
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogCategoryNotFound
		}
		return nil, err
	}

	var existing db.BlogCategory
	if err := s.db.Where("name = ? AND id <> ?", trimmed, id).First(&existing).Error; err == nil {
		return nil, ErrBlogCategoryExists
	}

	category.Name = trimmed
	category.Slug = Slugify(trimmed)
	if err := s.db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category and detaches it from its posts.
func (s *TaxonomyService) DeleteCategory(id uint) error {
	var category db.BlogCategory
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBlogCategoryNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&category).Association("Posts").Clear(); err != nil {
			return err
		}
		return tx.Unscoped().Delete(&category).Error
	})
}

// ListTags returns blog tags ordered by name.
func (s *TaxonomyService) ListTags() ([]db.BlogTag, error) {
	var tags []db.BlogTag
	if err := s.db.Order("name asc").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag inserts a new tag with a unique name.
func (s *TaxonomyService) CreateTag(name string) (*db.BlogTag, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrBlogTagRequired
	}

	var existing db.BlogTag
	if err := s.db.Where("name = ?", trimmed).First(&existing).Error; err == nil {
		return nil, ErrBlogTagExists
	}

	tag := db.BlogTag{Name: trimmed, Slug: Slugify(trimmed)}
	if err := s.db.Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// UpdateTag changes the tag name while keeping uniqueness.
func (s *TaxonomyService) UpdateTag(id uint, name string) (*db.BlogTag, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrBlogTagRequired
	}

	var tag db.BlogTag
	if err := s.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogTagNotFound
		}
		return nil, err
	}

	var existing db.BlogTag
	if err := s.db.Where("name = ? AND id <> ?", trimmed, id).First(&existing).Error; err == nil {
		return nil, ErrBlogTagExists
	}

	tag.Name = trimmed
	tag.Slug = Slugify(trimmed)
	if err := s.db.Save(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag removes a tag and detaches it from its posts.
func (s *TaxonomyService) DeleteTag(id uint) error {
	var tag db.BlogTag
	if err := s.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBlogTagNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&tag).Association("Posts").Clear(); err != nil {
			return err
		}
		return tx.Unscoped().Delete(&tag).Error
	})
}
