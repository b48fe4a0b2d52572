package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/HanyRabah/redzone-sub002/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSettingServiceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:setting-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.SiteSetting{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}
}

func TestGetSettingsReturnsDefaultsWhenEmpty(t *testing.T) {
	gdb, cleanup := setupSettingServiceTestDB(t)
	defer cleanup()

	svc := NewSettingService(gdb)
	settings, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}

	if settings[db.SettingKeySiteName] != "Red Zone" {
		t.Fatalf("expected default site name, got %q", settings[db.SettingKeySiteName])
	}
	if settings[db.SettingKeyContactEmail] != "" {
		t.Fatalf("expected empty contact email, got %q", settings[db.SettingKeyContactEmail])
	}
}

func TestUpdateSettingsUpsertsAndOverwrites(t *testing.T) {
	gdb, cleanup := setupSettingServiceTestDB(t)
	defer cleanup()

	svc := NewSettingService(gdb)
	if _, err := svc.UpdateSettings(map[string]string{
		db.SettingKeyContactEmail: "hello@redzone.agency",
	}); err != nil {
		t.Fatalf("first update: %v", err)
	}

	settings, err := svc.UpdateSettings(map[string]string{
		db.SettingKeyContactEmail: "team@redzone.agency",
	})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}

	if settings[db.SettingKeyContactEmail] != "team@redzone.agency" {
		t.Fatalf("expected last write to win, got %q", settings[db.SettingKeyContactEmail])
	}

	var count int64
	if err := gdb.Model(&db.SiteSetting{}).Where("key = ?", db.SettingKeyContactEmail).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one row per key, got %d", count)
	}
}

func TestUpdateSettingsRejectsUnknownKey(t *testing.T) {
	gdb, cleanup := setupSettingServiceTestDB(t)
	defer cleanup()

	svc := NewSettingService(gdb)
	if _, err := svc.UpdateSettings(map[string]string{"theme_color": "red"}); !errors.Is(err, ErrSettingKeyUnknown) {
		t.Fatalf("expected ErrSettingKeyUnknown, got %v", err)
	}

	var count int64
	if err := gdb.Model(&db.SiteSetting{}).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no rows written, got %d", count)
	}
}

func TestClearedSiteNameRoundTrips(t *testing.T) {
	gdb, cleanup := setupSettingServiceTestDB(t)
	defer cleanup()

	svc := NewSettingService(gdb)
	if _, err := svc.UpdateSettings(map[string]string{db.SettingKeySiteName: "Acme"}); err != nil {
		t.Fatalf("set site name: %v", err)
	}

	settings, err := svc.UpdateSettings(map[string]string{db.SettingKeySiteName: ""})
	if err != nil {
		t.Fatalf("clear site name: %v", err)
	}
	if settings[db.SettingKeySiteName] != "" {
		t.Fatalf("expected cleared site name to stay empty, got %q", settings[db.SettingKeySiteName])
	}

	settings, err = svc.GetSettings()
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if settings[db.SettingKeySiteName] != "" {
		t.Fatalf("expected cleared site name on reload, got %q", settings[db.SettingKeySiteName])
	}
}
