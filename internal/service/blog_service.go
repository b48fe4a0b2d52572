package service

import (
	"errors"
	"strings"
	"time"

	"github.com/HanyRabah/redzone-sub002/internal/db"
	"gorm.io/gorm"
)

var (
	ErrBlogPostNotFound      = errors.New("blog post not found")
	ErrBlogPostTitleRequired = errors.New("blog post title is required")
	ErrBlogPostSlugExists    = errors.New("blog post slug already exists")
)

// BlogService wraps blog post related operations.
type BlogService struct {
	db *gorm.DB
}

// NewBlogService creates a BlogService instance.
func NewBlogService(gdb *gorm.DB) *BlogService {
	return &BlogService{db: gdb}
}

// BlogPostInput 描述一次文章保存请求，分类与标签按 id 整组替换。
type BlogPostInput struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	CoverURL    string `json:"coverUrl"`
	IsPublished bool   `json:"isPublished"`
	IsFeatured  bool   `json:"isFeatured"`
	CategoryIDs []uint `json:"categoryIds"`
	TagIDs      []uint `json:"tagIds"`
}

// BlogPostFilter 限定文章列表的范围。
type BlogPostFilter struct {
	PublishedOnly bool
	CategorySlug  string
	TagSlug       string
}

// List returns posts newest first with their taxonomy preloaded.
func (s *BlogService) List(filter BlogPostFilter) ([]db.BlogPost, error) {
	query := s.db.Preload("Categories").Preload("Tags").Preload("Author").
		Order("created_at desc")

	if filter.PublishedOnly {
		query = query.Where("blog_posts.is_published = ?", true)
	}
	if slug := strings.TrimSpace(filter.CategorySlug); slug != "" {
		query = query.
			Joins("JOIN blog_post_categories ON blog_post_categories.blog_post_id = blog_posts.id").
			Joins("JOIN blog_categories ON blog_categories.id = blog_post_categories.blog_category_id").
			Where("blog_categories.slug = ?", slug)
	}
	if slug := strings.TrimSpace(filter.TagSlug); slug != "" {
		query = query.
			Joins("JOIN blog_post_tags ON blog_post_tags.blog_post_id = blog_posts.id").
			Joins("JOIN blog_tags ON blog_tags.id = blog_post_tags.blog_tag_id").
			Where("blog_tags.slug = ?", slug)
	}

	var posts []db.BlogPost
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Get fetches a post by id with its taxonomy preloaded.
func (s *BlogService) Get(id uint) (*db.BlogPost, error) {
	var post db.BlogPost
	err := s.db.Preload("Categories").Preload("Tags").Preload("Author").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetBySlug fetches a post by slug. publishedOnly 时未发布文章视作不存在。
func (s *BlogService) GetBySlug(slug string, publishedOnly bool) (*db.BlogPost, error) {
	query := s.db.Preload("Categories").Preload("Tags").Preload("Author").
		Where("slug = ?", strings.TrimSpace(slug))
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var post db.BlogPost
	if err := query.First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create stores a new post and attaches its categories and tags in one transaction.
func (s *BlogService) Create(authorID uint, input BlogPostInput) (*db.BlogPost, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrBlogPostTitleRequired
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(title)
	} else {
		slug = Slugify(slug)
	}

	var existing db.BlogPost
	if err := s.db.Where("slug = ?", slug).First(&existing).Error; err == nil {
		return nil, ErrBlogPostSlugExists
	}

	post := db.BlogPost{
		Title:       title,
		Slug:        slug,
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		CoverURL:    strings.TrimSpace(input.CoverURL),
		IsPublished: input.IsPublished,
		IsFeatured:  input.IsFeatured,
		AuthorID:    authorID,
	}
	if input.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		return s.replaceTaxonomy(tx, &post, input.CategoryIDs, input.TagIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(post.ID)
}

// Update overwrites a post and replaces its taxonomy associations.
func (s *BlogService) Update(id uint, input BlogPostInput) (*db.BlogPost, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrBlogPostTitleRequired
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(title)
	} else {
		slug = Slugify(slug)
	}

	var existing db.BlogPost
	if err := s.db.Where("slug = ? AND id <> ?", slug, id).First(&existing).Error; err == nil {
		return nil, ErrBlogPostSlugExists
	}

	wasPublished := post.IsPublished

	post.Title = title
	post.Slug = slug
	post.Excerpt = input.Excerpt
	post.Content = input.Content
	post.CoverURL = strings.TrimSpace(input.CoverURL)
	post.IsPublished = input.IsPublished
	post.IsFeatured = input.IsFeatured
	if input.IsPublished && !wasPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(post).Error; err != nil {
			return err
		}
		return s.replaceTaxonomy(tx, post, input.CategoryIDs, input.TagIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(post.ID)
}

// Delete removes a post and its taxonomy links permanently.
func (s *BlogService) Delete(id uint) error {
	post, err := s.Get(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(post).Association("Categories").Clear(); err != nil {
			return err
		}
		if err := tx.Model(post).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Unscoped().Delete(post).Error
	})
}

func (s *BlogService) replaceTaxonomy(tx *gorm.DB, post *db.BlogPost, categoryIDs, tagIDs []uint) error {
	var categories []db.BlogCategory
	if len(categoryIDs) > 0 {
		if err := tx.Where("id IN ?", categoryIDs).Find(&categories).Error; err != nil {
			return err
		}
	}
	if err := tx.Model(post).Association("Categories").Replace(categories); err != nil {
		return err
	}

	var tags []db.BlogTag
	if len(tagIDs) > 0 {
		if err := tx.Where("id IN ?", tagIDs).Find(&tags).Error; err != nil {
			return err
		}
	}
	return tx.Model(post).Association("Tags").Replace(tags)
}
