package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HanyRabah/redzone-sub002/internal/db"
	"github.com/gin-gonic/gin"
)

func TestSaveSectionUpsertsByPageKey(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	save := func(title string) *httptest.ResponseRecorder {
		payload := map[string]any{"title": title, "isActive": true}
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPut, "/admin/api/sections/about-us", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req
		c.Params = gin.Params{gin.Param{Key: "page", Value: "about-us"}}

		api.SaveSection(c)
		return w
	}

	if w := save("First"); w.Code != http.StatusOK {
		t.Fatalf("first save: expected status 200, got %d", w.Code)
	}
	if w := save("Second"); w.Code != http.StatusOK {
		t.Fatalf("second save: expected status 200, got %d", w.Code)
	}

	var sections []db.Section
	if err := db.DB.Where("page = ?", "about-us").Find(&sections).Error; err != nil {
		t.Fatalf("load sections: %v", err)
	}
	if len(sections) != 1 {
		t.Fatalf("expected one row per page key, got %d", len(sections))
	}
	if sections[0].Title != "Second" {
		t.Fatalf("expected last write to win, got %q", sections[0].Title)
	}
}

func TestGetSectionMissingReturns404(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodGet, "/admin/api/sections/nope", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "page", Value: "nope"}}

	api.GetSection(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
