package handler

import (
	"errors"
	"net/http"

	"github.com/HanyRabah/redzone-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

type pageRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GetPages 获取独立页面列表
func (a *API) GetPages(c *gin.Context) {
	pages, err := a.pages.List()
	if err != nil {
		respondStorageError(c, err, "failed to load pages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

// GetPage 按 slug 获取独立页面
func (a *API) GetPage(c *gin.Context) {
	page, err := a.pages.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondError(c, http.StatusNotFound, "page not found")
			return
		}
		respondStorageError(c, err, "failed to load page")
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page})
}

// SavePage 以 slug 为键 upsert 独立页面
func (a *API) SavePage(c *gin.Context) {
	var req pageRequest
	if !bindJSON(c, &req, "invalid page payload") {
		return
	}

	page, err := a.pages.Save(c.Param("slug"), req.Title, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPageTitleRequired):
			respondError(c, http.StatusBadRequest, "page title is required")
		case errors.Is(err, service.ErrPageContentMissing):
			respondError(c, http.StatusBadRequest, "page content is required")
		case errors.Is(err, service.ErrPageNotFound):
			respondError(c, http.StatusBadRequest, "invalid page slug")
		default:
			respondStorageError(c, err, "failed to save page")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "page saved", "page": page})
}

// DeletePage 删除独立页面
func (a *API) DeletePage(c *gin.Context) {
	if err := a.pages.Delete(c.Param("slug")); err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondError(c, http.StatusNotFound, "page not found")
			return
		}
		respondStorageError(c, err, "failed to delete page")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "page deleted"})
}
