package handler

import (
	"errors"
	"net/http"

	"github.com/HanyRabah/redzone-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

// GetProjects 获取项目列表
func (a *API) GetProjects(c *gin.Context) {
	projects, err := a.projects.List(service.ProjectFilter{
		OnlyActive:   c.Query("active") == "true",
		OnlyFeatured: c.Query("featured") == "true",
		Category:     c.Query("category"),
	})
	if err != nil {
		respondStorageError(c, err, "failed to load projects")
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// GetProject 获取单个项目
func (a *API) GetProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	project, err := a.projects.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, "project not found")
			return
		}
		respondStorageError(c, err, "failed to load project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

// CreateProject 创建项目
func (a *API) CreateProject(c *gin.Context) {
	var input service.ProjectInput
	if !bindJSON(c, &input, "invalid project payload") {
		return
	}

	project, err := a.projects.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectTitleRequired):
			respondError(c, http.StatusBadRequest, "project title is required")
		case errors.Is(err, service.ErrProjectSlugExists):
			respondError(c, http.StatusBadRequest, "project slug already exists")
		default:
			respondStorageError(c, err, "failed to create project")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "project created", "project": project})
}

// UpdateProject 更新项目
func (a *API) UpdateProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	var input service.ProjectInput
	if !bindJSON(c, &input, "invalid project payload") {
		return
	}

	project, err := a.projects.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			respondError(c, http.StatusNotFound, "project not found")
		case errors.Is(err, service.ErrProjectTitleRequired):
			respondError(c, http.StatusBadRequest, "project title is required")
		case errors.Is(err, service.ErrProjectSlugExists):
			respondError(c, http.StatusBadRequest, "project slug already exists")
		default:
			respondStorageError(c, err, "failed to update project")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project updated", "project": project})
}

// DeleteProject 删除项目
func (a *API) DeleteProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := a.projects.Delete(id); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, "project not found")
			return
		}
		respondStorageError(c, err, "failed to delete project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}

// ReorderProjects 按 id 序列更新项目排序
func (a *API) ReorderProjects(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "ids are required") {
		return
	}

	if err := a.projects.Reorder(req.IDs); err != nil {
		switch {
		case errors.Is(err, service.ErrProjectOrder):
			respondError(c, http.StatusBadRequest, "invalid ordering")
		case errors.Is(err, service.ErrProjectNotFound):
			respondError(c, http.StatusNotFound, "project not found")
		default:
			respondStorageError(c, err, "failed to reorder projects")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "projects reordered"})
}

// GetProjectCategories 获取项目分类列表
func (a *API) GetProjectCategories(c *gin.Context) {
	categories, err := a.projectCats.List()
	if err != nil {
		respondStorageError(c, err, "failed to load project categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateProjectCategory 创建项目分类，重名按大小写不敏感拒绝
func (a *API) CreateProjectCategory(c *gin.Context) {
	var req nameRequest
	if !bindJSON(c, &req, "category name is required") {
		return
	}

	category, err := a.projectCats.Create(req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectCategoryExists):
			respondError(c, http.StatusBadRequest, "category already exists")
		case errors.Is(err, service.ErrProjectCategoryRequired):
			respondError(c, http.StatusBadRequest, "category name is required")
		default:
			respondStorageError(c, err, "failed to create project category")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "category created", "category": category})
}

// UpdateProjectCategory 重命名项目分类并同步改写成员项目
func (a *API) UpdateProjectCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	var req nameRequest
	if !bindJSON(c, &req, "category name is required") {
		return
	}

	category, err := a.projectCats.Update(id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectCategoryExists):
			respondError(c, http.StatusBadRequest, "category already exists")
		case errors.Is(err, service.ErrProjectCategoryNotFound):
			respondError(c, http.StatusNotFound, "category not found")
		case errors.Is(err, service.ErrProjectCategoryRequired):
			respondError(c, http.StatusBadRequest, "category name is required")
		default:
			respondStorageError(c, err, "failed to update project category")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category updated", "category": category})
}

// ReorderProjectCategories 按 id 序列更新分类排序
func (a *API) ReorderProjectCategories(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "ids are required") {
		return
	}

	if err := a.projectCats.Reorder(req.IDs); err != nil {
		if errors.Is(err, service.ErrProjectCategoryNotFound) {
			respondError(c, http.StatusBadRequest, "invalid category ids")
			return
		}
		respondStorageError(c, err, "failed to reorder project categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "categories reordered"})
}

// DeleteProjectCategory 删除项目分类
// moveToUncategorized=true 时成员项目改写到兜底分类，否则连同项目一并删除
func (a *API) DeleteProjectCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	move := c.DefaultQuery("moveToUncategorized", "true") != "false"

	if err := a.projectCats.Delete(id, move); err != nil {
		if errors.Is(err, service.ErrProjectCategoryNotFound) {
			respondError(c, http.StatusNotFound, "category not found")
			return
		}
		respondStorageError(c, err, "failed to delete project category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
