package service

import (
	"errors"
	"strings"

	"github.com/HanyRabah/redzone-sub002/internal/db"
	"gorm.io/gorm"
)

var (
	ErrTestimonialNotFound      = errors.New("testimonial not found")
	ErrTestimonialQuoteRequired = errors.New("testimonial quote is required")
	ErrTestimonialRating        = errors.New("testimonial rating must be between 1 and 5")
	ErrTestimonialOrder         = errors.New("invalid testimonial order")
)

// TestimonialService wraps testimonial related operations.
type TestimonialService struct {
	db *gorm.DB
}

// NewTestimonialService creates a TestimonialService instance.
func NewTestimonialService(gdb *gorm.DB) *TestimonialService {
	return &TestimonialService{db: gdb}
}

// TestimonialInput 用于创建或更新客户评价，nil 字段表示保持原值。
type TestimonialInput struct {
	Author    *string `json:"author"`
	Company   *string `json:"company"`
	Quote     *string `json:"quote"`
	AvatarURL *string `json:"avatarUrl"`
	Rating    *int    `json:"rating"`
	IsActive  *bool   `json:"isActive"`
}

// List returns testimonials ordered by configured sort order.
func (s *TestimonialService) List(onlyActive bool) ([]db.Testimonial, error) {
	query := s.db.Order("sort_order asc").Order("id asc")
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}

	var testimonials []db.Testimonial
	if err := query.Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

// Get fetches a single testimonial by id.
func (s *TestimonialService) Get(id uint) (*db.Testimonial, error) {
	var testimonial db.Testimonial
	if err := s.db.First(&testimonial, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}
	return &testimonial, nil
}

// Create inserts a new testimonial appended to the end of the ordering.
func (s *TestimonialService) Create(input TestimonialInput) (*db.Testimonial, error) {
	if input.Quote == nil || strings.TrimSpace(*input.Quote) == "" {
		return nil, ErrTestimonialQuoteRequired
	}

	sortOrder, err := s.nextSortOrder()
	if err != nil {
		return nil, err
	}

	testimonial := db.Testimonial{
		Quote:     strings.TrimSpace(*input.Quote),
		Rating:    5,
		SortOrder: sortOrder,
		IsActive:  true,
	}
	if err := applyTestimonialInput(&testimonial, input); err != nil {
		return nil, err
	}

	if err := s.db.Create(&testimonial).Error; err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// Update overwrites the fields present in the input and keeps the rest.
func (s *TestimonialService) Update(id uint, input TestimonialInput) (*db.Testimonial, error) {
	testimonial, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Quote != nil {
		trimmed := strings.TrimSpace(*input.Quote)
		if trimmed == "" {
			return nil, ErrTestimonialQuoteRequired
		}
		testimonial.Quote = trimmed
	}
	if err := applyTestimonialInput(testimonial, input); err != nil {
		return nil, err
	}

	if err := s.db.Save(testimonial).Error; err != nil {
		return nil, err
	}
	return testimonial, nil
}

// Delete removes a testimonial permanently.
func (s *TestimonialService) Delete(id uint) error {
	testimonial, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Unscoped().Delete(testimonial).Error
}

// Reorder updates testimonial sort order based on the provided ids sequence.
func (s *TestimonialService) Reorder(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			return ErrTestimonialOrder
		}
		if _, ok := seen[id]; ok {
			return ErrTestimonialOrder
		}
		seen[id] = struct{}{}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for idx, id := range ids {
			result := tx.Model(&db.Testimonial{}).Where("id = ?", id).Update("sort_order", idx)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrTestimonialNotFound
			}
		}
		return nil
	})
}

func applyTestimonialInput(testimonial *db.Testimonial, input TestimonialInput) error {
	if input.Author != nil {
		testimonial.Author = strings.TrimSpace(*input.Author)
	}
	if input.Company != nil {
		testimonial.Company = strings.TrimSpace(*input.Company)
	}
	if input.AvatarURL != nil {
		testimonial.AvatarURL = strings.TrimSpace(*input.AvatarURL)
	}
	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			return ErrTestimonialRating
		}
		testimonial.Rating = *input.Rating
	}
	if input.IsActive != nil {
		testimonial.IsActive = *input.IsActive
	}
	return nil
}

func (s *TestimonialService) nextSortOrder() (int, error) {
	var maxSort int
	if err := s.db.Model(&db.Testimonial{}).Select("COALESCE(MAX(sort_order), -1)").Scan(&maxSort).Error; err != nil {
		return 0, err
	}
	return maxSort + 1, nil
}
