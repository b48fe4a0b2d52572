package service

import (
	"errors"
	"strings"

	"github.com/HanyRabah/redzone-sub002/internal/db"
	"gorm.io/gorm"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrClientNameRequired = errors.New("client name is required")
	ErrClientOrder        = errors.New("invalid client order")
)

// ClientService wraps client logo wall operations.
type ClientService struct {
	db *gorm.DB
}

// NewClientService creates a ClientService instance.
func NewClientService(gdb *gorm.DB) *ClientService {
	return &ClientService{db: gdb}
}

// ClientInput 用于创建或更新客户条目，nil 字段表示保持原值。
type ClientInput struct {
	Name       *string `json:"name"`
	LogoURL    *string `json:"logoUrl"`
	WebsiteURL *string `json:"websiteUrl"`
	IsActive   *bool   `json:"isActive"`
}

// List returns clients ordered by configured sort order.
func (s *ClientService) List(onlyActive bool) ([]db.Client, error) {
	query := s.db.Order("sort_order asc").Order("id asc")
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}

	var clients []db.Client
	if err := query.Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Get fetches a single client by id.
func (s *ClientService) Get(id uint) (*db.Client, error) {
	var client db.Client
	if err := s.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

// Create inserts a new client appended to the end of the ordering.
func (s *ClientService) Create(input ClientInput) (*db.Client, error) {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, ErrClientNameRequired
	}

	sortOrder, err := s.nextSortOrder()
	if err != nil {
		return nil, err
	}

	client := db.Client{
		Name:      strings.TrimSpace(*input.Name),
		SortOrder: sortOrder,
		IsActive:  true,
	}
	applyClientInput(&client, input)

	if err := s.db.Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// Update overwrites the fields present in the input and keeps the rest.
func (s *ClientService) Update(id uint, input ClientInput) (*db.Client, error) {
	client, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed == "" {
			return nil, ErrClientNameRequired
		}
		client.Name = trimmed
	}
	applyClientInput(client, input)

	if err := s.db.Save(client).Error; err != nil {
		return nil, err
	}
	return client, nil
}

// Delete removes a client permanently.
func (s *ClientService) Delete(id uint) error {
	client, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Unscoped().Delete(client).Error
}

// Reorder updates client sort order based on the provided ids sequence.
func (s *ClientService) Reorder(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			return ErrClientOrder
		}
		if _, ok := seen[id]; ok {
			return ErrClientOrder
		}
		seen[id] = struct{}{}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for idx, id := range ids {
			result := tx.Model(&db.Client{}).Where("id = ?", id).Update("sort_order", idx)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrClientNotFound
			}
		}
		return nil
	})
}

func applyClientInput(client *db.Client, input ClientInput) {
	if input.LogoURL != nil {
		client.LogoURL = strings.TrimSpace(*input.LogoURL)
	}
	if input.WebsiteURL != nil {
		client.WebsiteURL = strings.TrimSpace(*input.WebsiteURL)
	}
	if input.IsActive != nil {
		client.IsActive = *input.IsActive
	}
}

func (s *ClientService) nextSortOrder() (int, error) {
	var maxSort int
	if err := s.db.Model(&db.Client{}).Select("COALESCE(MAX(sort_order), -1)").Scan(&maxSort).Error; err != nil {
		return 0, err
	}
	return maxSort + 1, nil
}
