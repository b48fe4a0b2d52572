package handler

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/HanyRabah/redzone-sub002/internal/db"
	"github.com/gin-gonic/gin"
)

func TestDeleteProjectCategoryMovesProjectsByDefault(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	category := db.ProjectCategory{Name: "Film"}
	if err := db.DB.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	projects := []db.Project{
		{Title: "Doc A", Slug: "doc-a", Category: "Film"},
		{Title: "Other", Slug: "other", Category: "Print"},
	}
	if err := db.DB.Create(&projects).Error; err != nil {
		t.Fatalf("failed to seed projects: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/admin/api/project-categories/"+strconv.Itoa(int(category.ID)), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: strconv.Itoa(int(category.ID))}}

	api.DeleteProjectCategory(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var total int64
	db.DB.Model(&db.Project{}).Count(&total)
	if total != 2 {
		t.Fatalf("no projects should be deleted, got %d remaining", total)
	}

	var moved db.Project
	if err := db.DB.Where("slug = ?", "doc-a").First(&moved).Error; err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if moved.Category != db.ProjectCategoryUncategorized {
		t.Fatalf("expected project moved to fallback, got %q", moved.Category)
	}
}

func TestDeleteProjectCategoryWithoutMoveDeletesMembers(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	category := db.ProjectCategory{Name: "Film"}
	if err := db.DB.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	projects := []db.Project{
		{Title: "Doc A", Slug: "doc-a", Category: "Film"},
		{Title: "Other", Slug: "other", Category: "Print"},
	}
	if err := db.DB.Create(&projects).Error; err != nil {
		t.Fatalf("failed to seed projects: %v", err)
	}

	target := "/admin/api/project-categories/" + strconv.Itoa(int(category.ID)) + "?moveToUncategorized=false"
	req := httptest.NewRequest(http.MethodDelete, target, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: strconv.Itoa(int(category.ID))}}

	api.DeleteProjectCategory(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var remaining []db.Project
	if err := db.DB.Find(&remaining).Error; err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Slug != "other" {
		t.Fatalf("expected only the unrelated project to survive, got %d rows", len(remaining))
	}
}

func TestDeleteProjectCategoryMissingReturns404(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodDelete, "/admin/api/project-categories/42", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "42"}}

	api.DeleteProjectCategory(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
