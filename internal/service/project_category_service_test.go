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

func setupProjectCategoryServiceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:project-category-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Project{}, &db.ProjectCategory{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}
}

func seedProject(t *testing.T, gdb *gorm.DB, slug, category string) *db.Project {
	t.Helper()

	project := db.Project{Title: slug, Slug: slug, Category: category}
	if err := gdb.Create(&project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return &project
}

func TestProjectCategoryCreateRejectsDuplicateIgnoringCase(t *testing.T) {
	gdb, cleanup := setupProjectCategoryServiceTestDB(t)
	defer cleanup()

	svc := NewProjectCategoryService(gdb)
	if _, err := svc.Create("Branding"); err != nil {
		t.Fatalf("first create: %v", err)
	}

	if _, err := svc.Create("branding"); err != ErrProjectCategoryExists {
		t.Fatalf("expected ErrProjectCategoryExists, got %v", err)
	}
}

func TestProjectCategoryUpdateRewritesMemberProjects(t *testing.T) {
	gdb, cleanup := setupProjectCategoryServiceTestDB(t)
	defer cleanup()

	svc := NewProjectCategoryService(gdb)
	category, err := svc.Create("Web")
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	seedProject(t, gdb, "site-a", "Web")
	seedProject(t, gdb, "site-b", "Print")

	if _, err := svc.Update(category.ID, "Web Design"); err != nil {
		t.Fatalf("update category: %v", err)
	}

	var moved int64
	if err := gdb.Model(&db.Project{}).Where("category = ?", "Web Design").Count(&moved).Error; err != nil {
		t.Fatalf("count renamed projects: %v", err)
	}
	if moved != 1 {
		t.Fatalf("expected 1 project rewritten, got %d", moved)
	}

	var other db.Project
	if err := gdb.Where("slug = ?", "site-b").First(&other).Error; err != nil {
		t.Fatalf("reload other project: %v", err)
	}
	if other.Category != "Print" {
		t.Fatalf("projects in other categories must stay put, got %q", other.Category)
	}
}

func TestProjectCategoryDeleteMovesProjectsToUncategorized(t *testing.T) {
	gdb, cleanup := setupProjectCategoryServiceTestDB(t)
	defer cleanup()

	svc := NewProjectCategoryService(gdb)
	category, err := svc.Create("Film")
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	seedProject(t, gdb, "doc-a", "Film")
	seedProject(t, gdb, "doc-b", "Film")
	seedProject(t, gdb, "other", "Print")

	if err := svc.Delete(category.ID, true); err != nil {
		t.Fatalf("delete category: %v", err)
	}

	var total int64
	if err := gdb.Model(&db.Project{}).Count(&total).Error; err != nil {
		t.Fatalf("count projects: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected zero projects deleted, got %d remaining", total)
	}

	var moved int64
	if err := gdb.Model(&db.Project{}).Where("category = ?", db.ProjectCategoryUncategorized).Count(&moved).Error; err != nil {
		t.Fatalf("count moved projects: %v", err)
	}
	if moved != 2 {
		t.Fatalf("expected 2 projects moved to fallback, got %d", moved)
	}

	var sentinel db.ProjectCategory
	if err := gdb.Where("name = ?", db.ProjectCategoryUncategorized).First(&sentinel).Error; err != nil {
		t.Fatalf("expected fallback category to exist: %v", err)
	}
}

func TestProjectCategoryDeleteWithoutMoveRemovesMembers(t *testing.T) {
	gdb, cleanup := setupProjectCategoryServiceTestDB(t)
	defer cleanup()

	svc := NewProjectCategoryService(gdb)
	category, err := svc.Create("Film")
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	seedProject(t, gdb, "doc-a", "Film")
	seedProject(t, gdb, "other", "Print")

	if err := svc.Delete(category.ID, false); err != nil {
		t.Fatalf("delete category: %v", err)
	}

	var remaining []db.Project
	if err := gdb.Find(&remaining).Error; err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Slug != "other" {
		t.Fatalf("expected only the unrelated project to survive, got %d rows", len(remaining))
	}
}

func TestProjectCategoryReorderRejectsUnknownID(t *testing.T) {
	gdb, cleanup := setupProjectCategoryServiceTestDB(t)
	defer cleanup()

	svc := NewProjectCategoryService(gdb)
	category, err := svc.Create("Web")
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	if err := svc.Reorder([]uint{category.ID, 999}); err != ErrProjectCategoryNotFound {
		t.Fatalf("expected ErrProjectCategoryNotFound, got %v", err)
	}
}

func TestProjectCreatePersistsInactive(t *testing.T) {
	gdb, cleanup := setupProjectCategoryServiceTestDB(t)
	defer cleanup()

	svc := NewProjectService(gdb)
	if _, err := svc.Create(ProjectInput{Title: "Draft Campaign", IsActive: false}); err != nil {
		t.Fatalf("create project: %v", err)
	}

	var stored db.Project
	if err := gdb.Where("slug = ?", "draft-campaign").First(&stored).Error; err != nil {
		t.Fatalf("load project: %v", err)
	}
	if stored.IsActive {
		t.Fatalf("expected is_active false to persist on create, got true")
	}
}
