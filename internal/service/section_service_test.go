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

func setupSectionServiceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:section-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Section{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}
}

func TestSectionSaveCreatesRowOnFirstCall(t *testing.T) {
	gdb, cleanup := setupSectionServiceTestDB(t)
	defer cleanup()

	svc := NewSectionService(gdb)
	section, err := svc.Save(SectionInput{
		Page:     db.SectionKeyAbout,
		Title:    "About Red Zone",
		Lines:    []string{"line one", "line two"},
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("save section: %v", err)
	}

	if section.Page != db.SectionKeyAbout {
		t.Fatalf("expected page %q, got %q", db.SectionKeyAbout, section.Page)
	}
	if len(section.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(section.Lines))
	}
}

func TestSectionSaveTwiceKeepsSingleRowWithLastValues(t *testing.T) {
	gdb, cleanup := setupSectionServiceTestDB(t)
	defer cleanup()

	svc := NewSectionService(gdb)
	if _, err := svc.Save(SectionInput{Page: db.SectionKeyCreative, Title: "First", IsActive: true}); err != nil {
		t.Fatalf("first save: %v", err)
	}

	section, err := svc.Save(SectionInput{Page: db.SectionKeyCreative, Title: "Second", Subtitle: "kept"})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	var count int64
	if err := gdb.Model(&db.Section{}).Where("page = ?", db.SectionKeyCreative).Count(&count).Error; err != nil {
		t.Fatalf("count sections: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one row, got %d", count)
	}

	if section.Title != "Second" {
		t.Fatalf("expected last write to win, got title %q", section.Title)
	}
	if section.IsActive {
		t.Fatalf("expected is_active overwritten to false")
	}
}

func TestSectionSaveFallsBackToDefaultKey(t *testing.T) {
	gdb, cleanup := setupSectionServiceTestDB(t)
	defer cleanup()

	svc := NewSectionService(gdb)
	section, err := svc.Save(SectionInput{Title: "no key"})
	if err != nil {
		t.Fatalf("save section: %v", err)
	}

	if section.Page != db.SectionKeyDefault {
		t.Fatalf("expected default key, got %q", section.Page)
	}
}

func TestSectionGetMissingReturnsNotFound(t *testing.T) {
	gdb, cleanup := setupSectionServiceTestDB(t)
	defer cleanup()

	svc := NewSectionService(gdb)
	if _, err := svc.Get("nope"); err != ErrSectionNotFound {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}
}

func TestSectionSaveInactiveOnFirstWrite(t *testing.T) {
	gdb, cleanup := setupSectionServiceTestDB(t)
	defer cleanup()

	svc := NewSectionService(gdb)
	if _, err := svc.Save(SectionInput{Page: db.SectionKeyAbout, Title: "Hidden", IsActive: false}); err != nil {
		t.Fatalf("save section: %v", err)
	}

	var stored db.Section
	if err := gdb.Where("page = ?", db.SectionKeyAbout).First(&stored).Error; err != nil {
		t.Fatalf("load section: %v", err)
	}
	if stored.IsActive {
		t.Fatalf("expected is_active false on first write, got true")
	}
}
