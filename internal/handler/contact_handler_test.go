package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/HanyRabah/redzone-sub002/internal/db"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) (*API, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = gdb.AutoMigrate(
		&db.Section{},
		&db.HeroSlider{},
		&db.Slide{},
		&db.TeamMember{},
		&db.Testimonial{},
		&db.Client{},
		&db.User{},
		&db.BlogPost{},
		&db.BlogCategory{},
		&db.BlogTag{},
		&db.Project{},
		&db.ProjectCategory{},
		&db.ContactSubmission{},
		&db.SiteSetting{},
		&db.Page{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb

	return NewAPI(db.DB, "web/static/uploads", "/static/uploads"), func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestSubmitContactCreatesUnreadSubmission(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	payload := map[string]any{
		"firstName": "Omar",
		"lastName":  "Farouk",
		"email":     "omar@example.com",
		"message":   "I want a new website",
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.SubmitContact(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var stored db.ContactSubmission
	if err := db.DB.First(&stored).Error; err != nil {
		t.Fatalf("expected stored submission: %v", err)
	}
	if stored.IsRead || stored.IsReplied {
		t.Fatalf("new submission must start unread and unreplied")
	}
}

func TestSubmitContactMissingFieldRejected(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	payload := map[string]any{
		"firstName": "Omar",
		"email":     "omar@example.com",
		"message":   "hi",
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.SubmitContact(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var count int64
	db.DB.Model(&db.ContactSubmission{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejected submission must not be stored, found %d rows", count)
	}
}

func TestSubmitContactInvalidEmailRejected(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	payload := map[string]any{
		"firstName": "Omar",
		"lastName":  "Farouk",
		"email":     "not-an-email",
		"message":   "hi",
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.SubmitContact(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestBulkSubmissionsEmptyIDsRejected(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	payload := map[string]any{"ids": []uint{}, "action": "mark-read"}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/admin/api/submissions/bulk", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.BulkSubmissions(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestBulkSubmissionsMarkRead(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	submissions := []db.ContactSubmission{
		{FirstName: "A", LastName: "B", Email: "a@example.com", Message: "1"},
		{FirstName: "C", LastName: "D", Email: "c@example.com", Message: "2"},
	}
	if err := db.DB.Create(&submissions).Error; err != nil {
		t.Fatalf("failed to seed submissions: %v", err)
	}

	payload := map[string]any{"ids": []uint{submissions[0].ID}, "action": "mark-read"}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/admin/api/submissions/bulk", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.BulkSubmissions(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var readCount int64
	db.DB.Model(&db.ContactSubmission{}).Where("is_read = ?", true).Count(&readCount)
	if readCount != 1 {
		t.Fatalf("expected exactly 1 row marked read, got %d", readCount)
	}
}
