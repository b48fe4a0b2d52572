package service

import (
	"errors"
	"strings"

	"github.com/HanyRabah/redzone-sub002/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserExists        = errors.New("username already exists")
	ErrUserFieldsMissing = errors.New("username and password are required")
	ErrUserRole          = errors.New("unknown user role")
	ErrUserCredentials   = errors.New("invalid username or password")
	ErrUserLastAdmin     = errors.New("cannot delete the last admin")
)

// UserService 管理后台账号与登录校验。
type UserService struct {
	db *gorm.DB
}

// NewUserService 构造 UserService。
func NewUserService(gdb *gorm.DB) *UserService {
	return &UserService{db: gdb}
}

// UserInput 用于创建或更新账号；更新时密码为空表示不变。
type UserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// List 返回全部账号，密码不会出现在序列化结果中。
func (s *UserService) List() ([]db.User, error) {
	var users []db.User
	if err := s.db.Order("username asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Get 按 id 读取账号。
func (s *UserService) Get(id uint) (*db.User, error) {
	var user db.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create 创建一个账号，密码以 bcrypt 哈希存储。
func (s *UserService) Create(input UserInput) (*db.User, error) {
	username := strings.TrimSpace(input.Username)
	password := strings.TrimSpace(input.Password)
	if username == "" || password == "" {
		return nil, ErrUserFieldsMissing
	}

	role, err := normalizeRole(input.Role)
	if err != nil {
		return nil, err
	}

	var existing db.User
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := db.User{Username: username, Password: string(hashed), Role: role}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update 修改账号；密码为空保持不变，用户名保持唯一。
func (s *UserService) Update(id uint, input UserInput) (*db.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if username := strings.TrimSpace(input.Username); username != "" {
		var existing db.User
		if err := s.db.Where("username = ? AND id <> ?", username, id).First(&existing).Error; err == nil {
			return nil, ErrUserExists
		}
		user.Username = username
	}

	if password := strings.TrimSpace(input.Password); password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if strings.TrimSpace(input.Role) != "" {
		role, err := normalizeRole(input.Role)
		if err != nil {
			return nil, err
		}
		user.Role = role
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Delete 删除账号，最后一个管理员不可删除。
func (s *UserService) Delete(id uint) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}

	if user.Role == db.RoleAdmin {
		var adminCount int64
		if err := s.db.Model(&db.User{}).Where("role = ?", db.RoleAdmin).Count(&adminCount).Error; err != nil {
			return err
		}
		if adminCount <= 1 {
			return ErrUserLastAdmin
		}
	}

	return s.db.Unscoped().Delete(user).Error
}

// Authenticate 校验用户名密码，成功返回账号。
func (s *UserService) Authenticate(username, password string) (*db.User, error) {
	var user db.User
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrUserCredentials
	}
	return &user, nil
}

func normalizeRole(role string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(role))
	switch trimmed {
	case "":
		return db.RoleEditor, nil
	case db.RoleAdmin, db.RoleEditor:
		return trimmed, nil
	default:
		return "", ErrUserRole
	}
}
