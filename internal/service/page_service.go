package service

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/HanyRabah/redzone-sub002/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPageNotFound       = errors.New("page not found")
	ErrPageTitleRequired  = errors.New("page title is required")
	ErrPageContentMissing = errors.New("page content is required")
)

// PageService provides access to standalone pages such as About.
type PageService struct {
	db *gorm.DB
}

// NewPageService returns a new PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb}
}

// List returns all pages ordered by slug.
func (s *PageService) List() ([]db.Page, error) {
	var pages []db.Page
	if err := s.db.Order("slug asc").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// GetBySlug fetches a page for a given slug.
func (s *PageService) GetBySlug(slug string) (*db.Page, error) {
	var page db.Page
	if err := s.db.Where("slug = ?", strings.TrimSpace(slug)).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// Save creates or updates a page addressed by slug, deriving the summary
// from the content.
func (s *PageService) Save(slug, title, content string) (*db.Page, error) {
	key := Slugify(slug)
	if key == "" {
		return nil, ErrPageNotFound
	}

	trimmedTitle := strings.TrimSpace(title)
	if trimmedTitle == "" {
		return nil, ErrPageTitleRequired
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrPageContentMissing
	}

	summary := summarizeContent(trimmed)

	var page db.Page
	err := s.db.Where("slug = ?", key).First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			page = db.Page{
				Slug:    key,
				Title:   trimmedTitle,
				Summary: summary,
				Content: trimmed,
			}
			if err := s.db.Create(&page).Error; err != nil {
				return nil, err
			}
			return &page, nil
		}
		return nil, err
	}

	page.Title = trimmedTitle
	page.Content = trimmed
	page.Summary = summary

	if err := s.db.Save(&page).Error; err != nil {
		return nil, err
	}

	return &page, nil
}

// Delete removes a page permanently.
func (s *PageService) Delete(slug string) error {
	page, err := s.GetBySlug(slug)
	if err != nil {
		return err
	}
	return s.db.Unscoped().Delete(page).Error
}

func summarizeContent(markdown string) string {
	plain := markdown
	replacer := strings.NewReplacer(
		"#", " ",
		"*", " ",
		"`", " ",
		"_", " ",
		">", " ",
		"[", " ",
		"]", " ",
		"(", " ",
		")", " ",
	)
	plain = replacer.Replace(plain)
	plain = strings.Join(strings.Fields(plain), " ")
	if plain == "" {
		return ""
	}

	const limit = 120
	if utf8.RuneCountInString(plain) <= limit {
		return plain
	}

	runes := []rune(plain)
	return string(runes[:limit]) + "…"
}
