package service

import (
	"errors"
	"strings"

	"github.com/HanyRabah/redzone-sub002/internal/db"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrProjectTitleRequired = errors.New("project title is required")
	ErrProjectSlugExists    = errors.New("project slug already exists")
	ErrProjectOrder         = errors.New("invalid project order")
)

// ProjectService wraps portfolio project operations.
type ProjectService struct {
	db *gorm.DB
}

// NewProjectService creates a ProjectService instance.
func NewProjectService(gdb *gorm.DB) *ProjectService {
	return &ProjectService{db: gdb}
}

// ProjectInput 描述一次项目保存请求。
type ProjectInput struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	CoverURL    string   `json:"coverUrl"`
	GalleryURLs []string `json:"galleryUrls"`
	ClientName  string   `json:"clientName"`
	Year        int      `json:"year"`
	IsActive    bool     `json:"isActive"`
	IsFeatured  bool     `json:"isFeatured"`
}

// ProjectFilter 限定项目列表的范围。
type ProjectFilter struct {
	OnlyActive   bool
	OnlyFeatured bool
	Category     string
}

// List returns projects ordered by configured sort order.
func (s *ProjectService) List(filter ProjectFilter) ([]db.Project, error) {
	query := s.db.Order("sort_order asc").Order("id asc")
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if filter.OnlyFeatured {
		query = query.Where("is_featured = ?", true)
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category = ?", category)
	}

	var projects []db.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Get fetches a single project by id.
func (s *ProjectService) Get(id uint) (*db.Project, error) {
	var project db.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// GetBySlug fetches a single project by slug.
func (s *ProjectService) GetBySlug(slug string) (*db.Project, error) {
	var project db.Project
	if err := s.db.Where("slug = ?", strings.TrimSpace(slug)).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Create inserts a new project appended to the end of the ordering.
func (s *ProjectService) Create(input ProjectInput) (*db.Project, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrProjectTitleRequired
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(title)
	} else {
		slug = Slugify(slug)
	}

	var existing db.Project
	if err := s.db.Where("slug = ?", slug).First(&existing).Error; err == nil {
		return nil, ErrProjectSlugExists
	}

	sortOrder, err := s.nextSortOrder()
	if err != nil {
		return nil, err
	}

	project := db.Project{
		Title:       title,
		Slug:        slug,
		Category:    strings.TrimSpace(input.Category),
		Description: input.Description,
		CoverURL:    strings.TrimSpace(input.CoverURL),
		GalleryURLs: db.StringList(input.GalleryURLs),
		ClientName:  strings.TrimSpace(input.ClientName),
		Year:        input.Year,
		SortOrder:   sortOrder,
		IsActive:    input.IsActive,
		IsFeatured:  input.IsFeatured,
	}
	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Update overwrites a project's fields.
func (s *ProjectService) Update(id uint, input ProjectInput) (*db.Project, error) {
	project, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrProjectTitleRequired
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(title)
	} else {
		slug = Slugify(slug)
	}

	var existing db.Project
	if err := s.db.Where("slug = ? AND id <> ?", slug, id).First(&existing).Error; err == nil {
		return nil, ErrProjectSlugExists
	}

	project.Title = title
	project.Slug = slug
	project.Category = strings.TrimSpace(input.Category)
	project.Description = input.Description
	project.CoverURL = strings.TrimSpace(input.CoverURL)
	project.GalleryURLs = db.StringList(input.GalleryURLs)
	project.ClientName = strings.TrimSpace(input.ClientName)
	project.Year = input.Year
	project.IsActive = input.IsActive
	project.IsFeatured = input.IsFeatured

	if err := s.db.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project permanently.
func (s *ProjectService) Delete(id uint) error {
	project, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Unscoped().Delete(project).Error
}

// Reorder updates project sort order based on the provided ids sequence.
func (s *ProjectService) Reorder(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			return ErrProjectOrder
		}
		if _, ok := seen[id]; ok {
			return ErrProjectOrder
		}
		seen[id] = struct{}{}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for idx, id := range ids {
			result := tx.Model(&db.Project{}).Where("id = ?", id).Update("sort_order", idx)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrProjectNotFound
			}
		}
		return nil
	})
}

func (s *ProjectService) nextSortOrder() (int, error) {
	var maxSort int
	if err := s.db.Model(&db.Project{}).Select("COALESCE(MAX(sort_order), -1)").Scan(&maxSort).Error; err != nil {
		return 0, err
	}
	return maxSort + 1, nil
}
