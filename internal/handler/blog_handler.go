package handler

import (
	"errors"
	"net/http"

	"github.com/HanyRabah/redzone-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

// GetBlogPosts 获取文章列表（后台视角，含未发布）
func (a *API) GetBlogPosts(c *gin.Context) {
	posts, err := a.blog.List(service.BlogPostFilter{
		PublishedOnly: c.Query("published") == "true",
		CategorySlug:  c.Query("category"),
		TagSlug:       c.Query("tag"),
	})
	if err != nil {
		respondStorageError(c, err, "failed to load posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetBlogPost 获取单篇文章
func (a *API) GetBlogPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid post id")
		return
	}

	post, err := a.blog.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrBlogPostNotFound) {
			respondError(c, http.StatusNotFound, "post not found")
			return
		}
		respondStorageError(c, err, "failed to load post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// CreateBlogPost 创建文章，作者取当前会话用户
func (a *API) CreateBlogPost(c *gin.Context) {
	var input service.BlogPostInput
	if !bindJSON(c, &input, "invalid post payload") {
		return
	}

	post, err := a.blog.Create(currentUserID(c), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlogPostTitleRequired):
			respondError(c, http.StatusBadRequest, "post title is required")
		case errors.Is(err, service.ErrBlogPostSlugExists):
			respondError(c, http.StatusBadRequest, "post slug already exists")
		default:
			respondStorageError(c, err, "failed to create post")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "post created", "post": post})
}

// UpdateBlogPost 更新文章
func (a *API) UpdateBlogPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid post id")
		return
	}

	var input service.BlogPostInput
	if !bindJSON(c, &input, "invalid post payload") {
		return
	}

	post, err := a.blog.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlogPostNotFound):
			respondError(c, http.StatusNotFound, "post not found")
		case errors.Is(err, service.ErrBlogPostTitleRequired):
			respondError(c, http.StatusBadRequest, "post title is required")
		case errors.Is(err, service.ErrBlogPostSlugExists):
			respondError(c, http.StatusBadRequest, "post slug already exists")
		default:
			respondStorageError(c, err, "failed to update post")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post updated", "post": post})
}

// DeleteBlogPost 删除文章
func (a *API) DeleteBlogPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := a.blog.Delete(id); err != nil {
		if errors.Is(err, service.ErrBlogPostNotFound) {
			respondError(c, http.StatusNotFound, "post not found")
			return
		}
		respondStorageError(c, err, "failed to delete post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
