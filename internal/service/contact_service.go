package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/HanyRabah/redzone-sub002/internal/db"
	"gorm.io/gorm"
)

var (
	ErrSubmissionNotFound = errors.New("contact submission not found")
	ErrSubmissionFields   = errors.New("all contact fields are required")
	ErrSubmissionEmail    = errors.New("contact email is invalid")
	ErrBulkIDsEmpty       = errors.New("bulk action requires at least one id")
	ErrBulkAction         = errors.New("unknown bulk action")
)

// 批量操作选择器。
const (
	BulkActionMarkRead   = "mark-read"
	BulkActionMarkUnread = "mark-unread"
	BulkActionDelete     = "delete"
)

var contactEmailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// ContactService 管理联系表单提交：前台只增，后台翻标记或删除。
type ContactService struct {
	db *gorm.DB
}

// NewContactService 构造 ContactService。
func NewContactService(gdb *gorm.DB) *ContactService {
	return &ContactService{db: gdb}
}

// SubmissionInput 是前台联系表单的载荷。
type SubmissionInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

// SubmissionFilter 限定提交列表的范围。
type SubmissionFilter struct {
	UnreadOnly bool
}

// Create 校验四个字段均非空且邮箱格式合法后落库，初始均为未读未回复。
func (s *ContactService) Create(input SubmissionInput) (*db.ContactSubmission, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)

	if firstName == "" || lastName == "" || email == "" || message == "" {
		return nil, ErrSubmissionFields
	}
	if !contactEmailPattern.MatchString(strings.ToLower(email)) {
		return nil, ErrSubmissionEmail
	}

	submission := db.ContactSubmission{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Message:   message,
	}
	if err := s.db.Create(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// List 按时间倒序返回提交记录。
func (s *ContactService) List(filter SubmissionFilter) ([]db.ContactSubmission, error) {
	query := s.db.Order("created_at desc")
	if filter.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var submissions []db.ContactSubmission
	if err := query.Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// Get 按 id 读取单条提交。
func (s *ContactService) Get(id uint) (*db.ContactSubmission, error) {
	var submission db.ContactSubmission
	if err := s.db.First(&submission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &submission, nil
}

// SetReplied 翻转已回复标记。
func (s *ContactService) SetReplied(id uint, replied bool) (*db.ContactSubmission, error) {
	submission, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	submission.IsReplied = replied
	if err := s.db.Save(submission).Error; err != nil {
		return nil, err
	}
	return submission, nil
}

// Delete 删除单条提交。
func (s *ContactService) Delete(id uint) error {
	submission, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Unscoped().Delete(submission).Error
}

// Bulk 对给定 id 集合统一执行一个操作，未涉及的行保持不变。
func (s *ContactService) Bulk(ids []uint, action string) error {
	if len(ids) == 0 {
		return ErrBulkIDsEmpty
	}

	switch action {
	case BulkActionMarkRead:
		return s.db.Model(&db.ContactSubmission{}).Where("id IN ?", ids).
			Update("is_read", true).Error
	case BulkActionMarkUnread:
		return s.db.Model(&db.ContactSubmission{}).Where("id IN ?", ids).
			Update("is_read", false).Error
	case BulkActionDelete:
		return s.db.Unscoped().Where("id IN ?", ids).Delete(&db.ContactSubmission{}).Error
	default:
		return ErrBulkAction
	}
}

// UnreadCount 返回未读提交数。
func (s *ContactService) UnreadCount() (int64, error) {
	var count int64
	if err := s.db.Model(&db.ContactSubmission{}).Where("is_read = ?", false).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
