package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/HanyRabah/redzone-sub002/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// GetHomePage 返回首页聚合数据
func (a *API) GetHomePage(c *gin.Context) {
	data, err := a.pageData.HomePage(c.Request.Context())
	if err != nil {
		respondStorageError(c, err, "failed to load home page")
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetAboutPage 返回关于页聚合数据
func (a *API) GetAboutPage(c *gin.Context) {
	data, err := a.pageData.AboutPage(c.Request.Context())
	if err != nil {
		respondStorageError(c, err, "failed to load about page")
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetBlogPage 返回博客列表页聚合数据，支持按分类或标签过滤
func (a *API) GetBlogPage(c *gin.Context) {
	data, err := a.pageData.BlogPage(c.Request.Context(), c.Query("category"), c.Query("tag"))
	if err != nil {
		respondStorageError(c, err, "failed to load blog page")
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetPortfolioPage 返回作品集页聚合数据
func (a *API) GetPortfolioPage(c *gin.Context) {
	data, err := a.pageData.PortfolioPage(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondStorageError(c, err, "failed to load portfolio page")
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetContactPage 返回联系页聚合数据
func (a *API) GetContactPage(c *gin.Context) {
	data, err := a.pageData.ContactPage(c.Request.Context())
	if err != nil {
		respondStorageError(c, err, "failed to load contact page")
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetPublishedPost 按 slug 返回已发布文章，正文渲染为净化后的 HTML
func (a *API) GetPublishedPost(c *gin.Context) {
	post, err := a.blog.GetBySlug(c.Param("slug"), true)
	if err != nil {
		if errors.Is(err, service.ErrBlogPostNotFound) {
			respondError(c, http.StatusNotFound, "post not found")
			return
		}
		respondStorageError(c, err, "failed to load post")
		return
	}

	var rendered bytes.Buffer
	if err := markdownEngine.Convert([]byte(post.Content), &rendered); err != nil {
		respondStorageError(c, err, "failed to render post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post": post,
		"html": sanitizer.Sanitize(rendered.String()),
	})
}

// GetPublishedProject 按 slug 返回作品集项目详情
func (a *API) GetPublishedProject(c *gin.Context) {
	project, err := a.projects.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, "project not found")
			return
		}
		respondStorageError(c, err, "failed to load project")
		return
	}
	if !project.IsActive {
		respondError(c, http.StatusNotFound, "project not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

// GetDashboard 返回后台面板统计汇总
func (a *API) GetDashboard(c *gin.Context) {
	data, err := a.pageData.Dashboard(c.Request.Context())
	if err != nil {
		respondStorageError(c, err, "failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, data)
}
