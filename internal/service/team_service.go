package service

import (
	"errors"
	"strings"

	"github.com/HanyRabah/redzone-sub002/internal/db"
	"gorm.io/gorm"
)

var (
	ErrTeamMemberNotFound     = errors.New("team member not found")
	ErrTeamMemberNameRequired = errors.New("team member name is required")
	ErrTeamOrder              = errors.New("invalid team member order")
)

// TeamService wraps team member related operations.
type TeamService struct {
	db *gorm.DB
}

// NewTeamService creates a TeamService instance.
func NewTeamService(gdb *gorm.DB) *TeamService {
	return &TeamService{db: gdb}
}

// TeamMemberInput 用于创建或更新团队成员，nil 字段表示保持原值。
type TeamMemberInput struct {
	Name     *string   `json:"name"`
	Role     *string   `json:"role"`
	Bio      *string   `json:"bio"`
	PhotoURL *string   `json:"photoUrl"`
	Socials  *[]string `json:"socials"`
	IsActive *bool     `json:"isActive"`
}

// List returns team members ordered by configured sort order.
func (s *TeamService) List(onlyActive bool) ([]db.TeamMember, error) {
	query := s.db.Order("sort_order asc").Order("id asc")
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}

	var members []db.TeamMember
	if err := query.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Get fetches a single team member by id.
func (s *TeamService) Get(id uint) (*db.TeamMember, error) {
	var member db.TeamMember
	if err := s.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

// Create inserts a new team member appended to the end of the ordering.
func (s *TeamService) Create(input TeamMemberInput) (*db.TeamMember, error) {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, ErrTeamMemberNameRequired
	}

	sortOrder, err := s.nextSortOrder()
	if err != nil {
		return nil, err
	}

	member := db.TeamMember{
		Name:      strings.TrimSpace(*input.Name),
		SortOrder: sortOrder,
		IsActive:  true,
	}
	applyTeamMemberInput(&member, input)

	if err := s.db.Create(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// Update overwrites the fields present in the input and keeps the rest.
func (s *TeamService) Update(id uint, input TeamMemberInput) (*db.TeamMember, error) {
	member, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed == "" {
			return nil, ErrTeamMemberNameRequired
		}
		member.Name = trimmed
	}
	applyTeamMemberInput(member, input)

	if err := s.db.Save(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

// Delete removes a team member permanently.
func (s *TeamService) Delete(id uint) error {
	member, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Unscoped().Delete(member).Error
}

// Reorder updates member sort order based on the provided ids sequence.
func (s *TeamService) Reorder(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			return ErrTeamOrder
		}
		if _, ok := seen[id]; ok {
			return ErrTeamOrder
		}
		seen[id] = struct{}{}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for idx, id := range ids {
			result := tx.Model(&db.TeamMember{}).Where("id = ?", id).Update("sort_order", idx)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrTeamMemberNotFound
			}
		}
		return nil
	})
}

func applyTeamMemberInput(member *db.TeamMember, input TeamMemberInput) {
	if input.Role != nil {
		member.Role = strings.TrimSpace(*input.Role)
	}
	if input.Bio != nil {
		member.Bio = *input.Bio
	}
	if input.PhotoURL != nil {
		member.PhotoURL = strings.TrimSpace(*input.PhotoURL)
	}
	if input.Socials != nil {
		member.Socials = db.StringList(*input.Socials)
	}
	if input.IsActive != nil {
		member.IsActive = *input.IsActive
	}
}

func (s *TeamService) nextSortOrder() (int, error) {
	var maxSort int
	if err := s.db.Model(&db.TeamMember{}).Select("COALESCE(MAX(sort_order), -1)").Scan(&maxSort).Error; err != nil {
		return 0, err
	}
	return maxSort + 1, nil
}
