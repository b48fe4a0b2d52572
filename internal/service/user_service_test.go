package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/HanyRabah/redzone-sub002/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupUserServiceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:user-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.User{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}
}

func TestUserCreateHashesPasswordAndAuthenticates(t *testing.T) {
	gdb, cleanup := setupUserServiceTestDB(t)
	defer cleanup()

	svc := NewUserService(gdb)
	user, err := svc.Create(UserInput{Username: "hany", Password: "secret123", Role: "admin"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.Password == "secret123" {
		t.Fatalf("password must not be stored in plain text")
	}

	if _, err := svc.Authenticate("hany", "secret123"); err != nil {
		t.Fatalf("authenticate with correct password: %v", err)
	}
	if _, err := svc.Authenticate("hany", "wrong"); err != ErrUserCredentials {
		t.Fatalf("expected ErrUserCredentials, got %v", err)
	}
}

func TestUserCreateRejectsDuplicateUsername(t *testing.T) {
	gdb, cleanup := setupUserServiceTestDB(t)
	defer cleanup()

	svc := NewUserService(gdb)
	if _, err := svc.Create(UserInput{Username: "hany", Password: "secret123"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(UserInput{Username: "hany", Password: "other456"}); err != ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserCreateDefaultsToEditorRole(t *testing.T) {
	gdb, cleanup := setupUserServiceTestDB(t)
	defer cleanup()

	svc := NewUserService(gdb)
	user, err := svc.Create(UserInput{Username: "lina", Password: "secret123"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.Role != db.RoleEditor {
		t.Fatalf("expected editor role by default, got %q", user.Role)
	}
}

func TestUserDeleteRefusesLastAdmin(t *testing.T) {
	gdb, cleanup := setupUserServiceTestDB(t)
	defer cleanup()

	svc := NewUserService(gdb)
	admin, err := svc.Create(UserInput{Username: "hany", Password: "secret123", Role: "admin"})
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}

	if err := svc.Delete(admin.ID); err != ErrUserLastAdmin {
		t.Fatalf("expected ErrUserLastAdmin, got %v", err)
	}

	second, err := svc.Create(UserInput{Username: "lina", Password: "secret123", Role: "admin"})
	if err != nil {
		t.Fatalf("create second admin: %v", err)
	}
	if err := svc.Delete(second.ID); err != nil {
		t.Fatalf("deleting a non-last admin should succeed: %v", err)
	}
}

func TestUserUpdateKeepsPasswordWhenBlank(t *testing.T) {
	gdb, cleanup := setupUserServiceTestDB(t)
	defer cleanup()

	svc := NewUserService(gdb)
	user, err := svc.Create(UserInput{Username: "hany", Password: "secret123"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if _, err := svc.Update(user.ID, UserInput{Username: "hany-r"}); err != nil {
		t.Fatalf("update user: %v", err)
	}

	if _, err := svc.Authenticate("hany-r", "secret123"); err != nil {
		t.Fatalf("old password should still work after rename: %v", err)
	}
}
