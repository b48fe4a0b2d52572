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

func setupContactServiceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:contact-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.ContactSubmission{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}
}

func seedSubmission(t *testing.T, gdb *gorm.DB, email string) *db.ContactSubmission {
	t.Helper()

	submission := db.ContactSubmission{
		FirstName: "Lina",
		LastName:  "Hassan",
		Email:     email,
		Message:   "hello",
	}
	if err := gdb.Create(&submission).Error; err != nil {
		t.Fatalf("seed submission: %v", err)
	}
	return &submission
}

func TestContactCreateDefaultsToUnreadUnreplied(t *testing.T) {
	gdb, cleanup := setupContactServiceTestDB(t)
	defer cleanup()

	svc := NewContactService(gdb)
	submission, err := svc.Create(SubmissionInput{
		FirstName: "Omar",
		LastName:  "Farouk",
		Email:     "omar@example.com",
		Message:   "I want a new website",
	})
	if err != nil {
		t.Fatalf("create submission: %v", err)
	}

	if submission.IsRead || submission.IsReplied {
		t.Fatalf("expected new submission unread and unreplied, got read=%v replied=%v",
			submission.IsRead, submission.IsReplied)
	}
}

func TestContactCreateRejectsMissingFields(t *testing.T) {
	gdb, cleanup := setupContactServiceTestDB(t)
	defer cleanup()

	svc := NewContactService(gdb)
	if _, err := svc.Create(SubmissionInput{
		FirstName: "Omar",
		Email:     "omar@example.com",
		Message:   "hi",
	}); err != ErrSubmissionFields {
		t.Fatalf("expected ErrSubmissionFields, got %v", err)
	}

	var count int64
	if err := gdb.Model(&db.ContactSubmission{}).Count(&count).Error; err != nil {
		t.Fatalf("count submissions: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no rows after rejected create, got %d", count)
	}
}

func TestContactCreateRejectsInvalidEmail(t *testing.T) {
	gdb, cleanup := setupContactServiceTestDB(t)
	defer cleanup()

	svc := NewContactService(gdb)
	for _, email := range []string{"not-an-email", "omar@", "@example.com", "omar@example"} {
		if _, err := svc.Create(SubmissionInput{
			FirstName: "Omar",
			LastName:  "Farouk",
			Email:     email,
			Message:   "hi",
		}); err != ErrSubmissionEmail {
			t.Fatalf("email %q: expected ErrSubmissionEmail, got %v", email, err)
		}
	}
}

func TestContactBulkMarkReadTouchesOnlyListedRows(t *testing.T) {
	gdb, cleanup := setupContactServiceTestDB(t)
	defer cleanup()

	first := seedSubmission(t, gdb, "a@example.com")
	second := seedSubmission(t, gdb, "b@example.com")
	third := seedSubmission(t, gdb, "c@example.com")

	svc := NewContactService(gdb)
	if err := svc.Bulk([]uint{first.ID, third.ID}, BulkActionMarkRead); err != nil {
		t.Fatalf("bulk mark read: %v", err)
	}

	var readCount int64
	if err := gdb.Model(&db.ContactSubmission{}).Where("is_read = ?", true).Count(&readCount).Error; err != nil {
		t.Fatalf("count read submissions: %v", err)
	}
	if readCount != 2 {
		t.Fatalf("expected 2 read rows, got %d", readCount)
	}

	var untouched db.ContactSubmission
	if err := gdb.First(&untouched, second.ID).Error; err != nil {
		t.Fatalf("reload untouched row: %v", err)
	}
	if untouched.IsRead {
		t.Fatalf("row outside the id list should stay unread")
	}
}

func TestContactBulkDeleteRemovesListedRows(t *testing.T) {
	gdb, cleanup := setupContactServiceTestDB(t)
	defer cleanup()

	first := seedSubmission(t, gdb, "a@example.com")
	seedSubmission(t, gdb, "b@example.com")

	svc := NewContactService(gdb)
	if err := svc.Bulk([]uint{first.ID}, BulkActionDelete); err != nil {
		t.Fatalf("bulk delete: %v", err)
	}

	var count int64
	if err := gdb.Model(&db.ContactSubmission{}).Count(&count).Error; err != nil {
		t.Fatalf("count submissions: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 remaining row, got %d", count)
	}
}

func TestContactBulkRejectsEmptyIDsAndUnknownAction(t *testing.T) {
	gdb, cleanup := setupContactServiceTestDB(t)
	defer cleanup()

	svc := NewContactService(gdb)
	if err := svc.Bulk(nil, BulkActionMarkRead); err != ErrBulkIDsEmpty {
		t.Fatalf("expected ErrBulkIDsEmpty, got %v", err)
	}
	if err := svc.Bulk([]uint{1}, "archive"); err != ErrBulkAction {
		t.Fatalf("expected ErrBulkAction, got %v", err)
	}
}

func TestContactSetRepliedAndUnreadCount(t *testing.T) {
	gdb, cleanup := setupContactServiceTestDB(t)
	defer cleanup()

	submission := seedSubmission(t, gdb, "a@example.com")
	seedSubmission(t, gdb, "b@example.com")

	svc := NewContactService(gdb)
	updated, err := svc.SetReplied(submission.ID, true)
	if err != nil {
		t.Fatalf("set replied: %v", err)
	}
	if !updated.IsReplied {
		t.Fatalf("expected replied flag set")
	}

	count, err := svc.UnreadCount()
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 unread, got %d", count)
	}
}
