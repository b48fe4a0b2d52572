package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HanyRabah/redzone-sub002/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSectionNotFound 表示请求的内容区块不存在。
var ErrSectionNotFound = errors.New("section not found")

// SectionService 提供单例内容区块的读写能力。
// 每个区块以唯一的页面键定位，写入统一走 upsert，后写覆盖先写。
type SectionService struct {
	db *gorm.DB
}

// NewSectionService 构造 SectionService。
func NewSectionService(gdb *gorm.DB) *SectionService {
	return &SectionService{db: gdb}
}

// SectionInput 描述一次区块保存的全部字段。
type SectionInput struct {
	Page     string   `json:"page"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Body     string   `json:"body"`
	Lines    []string `json:"lines"`
	ImageURL string   `json:"imageUrl"`
	IsActive bool     `json:"isActive"`
}

// Save 以页面键为冲突目标执行 upsert，调用方无需关心行是否已存在。
// 键为空时回退到默认键；字段整体覆盖，不做合并。
func (s *SectionService) Save(input SectionInput) (*db.Section, error) {
	page := strings.TrimSpace(input.Page)
	if page == "" {
		page = db.SectionKeyDefault
	}

	section := db.Section{
		Page:     page,
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Body:     input.Body,
		Lines:    db.StringList(input.Lines),
		ImageURL: input.ImageURL,
		IsActive: input.IsActive,
	}

	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "page"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"title":      section.Title,
			"subtitle":   section.Subtitle,
			"body":       section.Body,
			"lines":      section.Lines,
			"image_url":  section.ImageURL,
			"is_active":  section.IsActive,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&section).Error; err != nil {
		return nil, fmt.Errorf("upsert section %s: %w", page, err)
	}

	var saved db.Section
	if err := s.db.Where("page = ?", page).First(&saved).Error; err != nil {
		return nil, fmt.Errorf("reload section %s: %w", page, err)
	}

	return &saved, nil
}

// Get 按页面键读取区块。
func (s *SectionService) Get(page string) (*db.Section, error) {
	key := strings.TrimSpace(page)
	if key == "" {
		key = db.SectionKeyDefault
	}

	var section db.Section
	if err := s.db.Where("page = ?", key).First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return &section, nil
}

// List 返回全部区块，按页面键排序。
func (s *SectionService) List() ([]db.Section, error) {
	var sections []db.Section
	if err := s.db.Order("page asc").Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// ListActive 返回指定页面键中处于启用状态的区块。
func (s *SectionService) ListActive(pages ...string) ([]db.Section, error) {
	query := s.db.Where("is_active = ?", true)
	if len(pages) > 0 {
		query = query.Where("page IN ?", pages)
	}

	var sections []db.Section
	if err := query.Order("page asc").Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}
