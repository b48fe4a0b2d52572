package handler

import (
	"errors"
	"net/http"

	"github.com/HanyRabah/redzone-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

type nameRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetBlogCategories 获取博客分类及使用统计
func (a *API) GetBlogCategories(c *gin.Context) {
	categories, err := a.taxonomy.CategoryUsageCounts()
	if err != nil {
		respondStorageError(c, err, "failed to load categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateBlogCategory 创建博客分类，重名拒绝
func (a *API) CreateBlogCategory(c *gin.Context) {
	var req nameRequest
	if !bindJSON(c, &req, "category name is required") {
		return
	}

	category, err := a.taxonomy.CreateCategory(req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlogCategoryExists):
			respondError(c, http.StatusBadRequest, "category already exists")
		case errors.Is(err, service.ErrBlogCategoryRequired):
			respondError(c, http.StatusBadRequest, "category name is required")
		default:
			respondStorageError(c, err, "failed to create category")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "category created", "category": category})
}

// UpdateBlogCategory 更新博客分类
func (a *API) UpdateBlogCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	var req nameRequest
	if !bindJSON(c, &req, "category name is required") {
		return
	}

	category, err := a.taxonomy.UpdateCategory(id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlogCategoryExists):
			respondError(c, http.StatusBadRequest, "category already exists")
		case errors.Is(err, service.ErrBlogCategoryNotFound):
			respondError(c, http.StatusNotFound, "category not found")
		case errors.Is(err, service.ErrBlogCategoryRequired):
			respondError(c, http.StatusBadRequest, "category name is required")
		default:
			respondStorageError(c, err, "failed to update category")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category updated", "category": category})
}

// DeleteBlogCategory 删除博客分类并解除文章关联
func (a *API) DeleteBlogCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := a.taxonomy.DeleteCategory(id); err != nil {
		if errors.Is(err, service.ErrBlogCategoryNotFound) {
			respondError(c, http.StatusNotFound, "category not found")
			return
		}
		respondStorageError(c, err, "failed to delete category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

// GetBlogTags 获取博客标签列表
func (a *API) GetBlogTags(c *gin.Context) {
	tags, err := a.taxonomy.ListTags()
	if err != nil {
		respondStorageError(c, err, "failed to load tags")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// CreateBlogTag 创建博客标签，与分类一样做唯一性预检
func (a *API) CreateBlogTag(c *gin.Context) {
	var req nameRequest
	if !bindJSON(c, &req, "tag name is required") {
		return
	}

	tag, err := a.taxonomy.CreateTag(req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlogTagExists):
			respondError(c, http.StatusBadRequest, "tag already exists")
		case errors.Is(err, service.ErrBlogTagRequired):
			respondError(c, http.StatusBadRequest, "tag name is required")
		default:
			respondStorageError(c, err, "failed to create tag")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "tag created", "tag": tag})
}

// UpdateBlogTag 更新博客标签
func (a *API) UpdateBlogTag(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid tag id")
		return
	}

	var req nameRequest
	if !bindJSON(c, &req, "tag name is required") {
		return
	}

	tag, err := a.taxonomy.UpdateTag(id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlogTagExists):
			respondError(c, http.StatusBadRequest, "tag already exists")
		case errors.Is(err, service.ErrBlogTagNotFound):
			respondError(c, http.StatusNotFound, "tag not found")
		case errors.Is(err, service.ErrBlogTagRequired):
			respondError(c, http.StatusBadRequest, "tag name is required")
		default:
			respondStorageError(c, err, "failed to update tag")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tag updated", "tag": tag})
}

// DeleteBlogTag 删除博客标签并解除文章关联
func (a *API) DeleteBlogTag(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid tag id")
		return
	}

	if err := a.taxonomy.DeleteTag(id); err != nil {
		if errors.Is(err, service.ErrBlogTagNotFound) {
			respondError(c, http.StatusNotFound, "tag not found")
			return
		}
		respondStorageError(c, err, "failed to delete tag")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tag deleted"})
}
