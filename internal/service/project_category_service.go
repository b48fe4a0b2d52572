package service

import (
	"errors"
	"strings"

	"github.com/HanyRabah/redzone-sub002/internal/db"
	"gorm.io/gorm"
)

var (
	ErrProjectCategoryExists   = errors.New("project category already exists")
	ErrProjectCategoryNotFound = errors.New("project category not found")
	ErrProjectCategoryRequired = errors.New("project category name is required")
)

// ProjectCategoryService wraps portfolio category operations.
// 删除分类时按策略处理成员项目：改写到兜底分类，或一并删除。
type ProjectCategoryService struct {
	db *gorm.DB
}

// NewProjectCategoryService creates a ProjectCategoryService instance.
func NewProjectCategoryService(gdb *gorm.DB) *ProjectCategoryService {
	return &ProjectCategoryService{db: gdb}
}

// List returns project categories ordered by configured sort order.
func (s *ProjectCategoryService) List() ([]db.ProjectCategory, error) {
	var categories []db.ProjectCategory
	if err := s.db.Order("sort_order asc").Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Create inserts a new category; duplicate names are rejected case-insensitively.
func (s *ProjectCategoryService) Create(name string) (*db.ProjectCategory, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrProjectCategoryRequired
	}

	var existing db.ProjectCategory
	if err := s.db.Where("LOWER(name) = LOWER(?)", trimmed).First(&existing).Error; err == nil {
		return nil, ErrProjectCategoryExists
	}

	sortOrder, err := s.nextSortOrder()
	if err != nil {
		return nil, err
	}

	category := db.ProjectCategory{Name: trimmed, SortOrder: sortOrder}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Update renames a category and rewrites the category field of its projects.
func (s *ProjectCategoryService) Update(id uint, name string) (*db.ProjectCategory, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrProjectCategoryRequired
	}

	var category db.ProjectCategory
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectCategoryNotFound
		}
		return nil, err
	}

	var existing db.ProjectCategory
	if err := s.db.Where("LOWER(name) = LOWER(?) AND id <> ?", trimmed, id).First(&existing).Error; err == nil {
		return nil, ErrProjectCategoryExists
	}

	oldName := category.Name
	category.Name = trimmed

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&category).Error; err != nil {
			return err
		}
		if oldName != trimmed {
			if err := tx.Model(&db.Project{}).Where("category = ?", oldName).
				Update("category", trimmed).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes a category. moveToUncategorized 为真时把成员项目改写到兜底分类，
// 否则连同成员项目一并删除；其余分类的项目不受影响。
func (s *ProjectCategoryService) Delete(id uint, moveToUncategorized bool) error {
	var category db.ProjectCategory
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectCategoryNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if moveToUncategorized {
			sentinel := db.ProjectCategory{Name: db.ProjectCategoryUncategorized}
			if err := tx.Where("name = ?", db.ProjectCategoryUncategorized).
				FirstOrCreate(&sentinel).Error; err != nil {
				return err
			}
			if err := tx.Model(&db.Project{}).Where("category = ?", category.Name).
				Update("category", db.ProjectCategoryUncategorized).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Unscoped().Where("category = ?", category.Name).
				Delete(&db.Project{}).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&category).Error
	})
}

// Reorder updates category sort order based on the provided ids sequence.
func (s *ProjectCategoryService) Reorder(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			return ErrProjectCategoryNotFound
		}
		if _, ok := seen[id]; ok {
			return ErrProjectCategoryNotFound
		}
		seen[id] = struct{}{}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for idx, id := range ids {
			result := tx.Model(&db.ProjectCategory{}).Where("id = ?", id).Update("sort_order", idx)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrProjectCategoryNotFound
			}
		}
		return nil
	})
}

func (s *ProjectCategoryService) nextSortOrder() (int, error) {
	var maxSort int
	if err := s.db.Model(&db.ProjectCategory{}).Select("COALESCE(MAX(sort_order), -1)").Scan(&maxSort).Error; err != nil {
		return 0, err
	}
	return maxSort + 1, nil
}
