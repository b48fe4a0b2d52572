package handler

import (
	"errors"
	"net/http"

	"github.com/HanyRabah/redzone-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

// GetSections 获取全部内容区块
func (a *API) GetSections(c *gin.Context) {
	sections, err := a.sections.List()
	if err != nil {
		respondStorageError(c, err, "failed to load sections")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// GetSection 按页面键获取单个区块
func (a *API) GetSection(c *gin.Context) {
	section, err := a.sections.Get(c.Param("page"))
	if err != nil {
		if errors.Is(err, service.ErrSectionNotFound) {
			respondError(c, http.StatusNotFound, "section not found")
			return
		}
		respondStorageError(c, err, "failed to load section")
		return
	}
	c.JSON(http.StatusOK, gin.H{"section": section})
}

// SaveSection 以页面键 upsert 区块，调用方无需区分创建与更新
func (a *API) SaveSection(c *gin.Context) {
	var input service.SectionInput
	if !bindJSON(c, &input, "invalid section payload") {
		return
	}

	if page := c.Param("page"); page != "" {
		input.Page = page
	}

	section, err := a.sections.Save(input)
	if err != nil {
		respondStorageError(c, err, "failed to save section")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "section saved", "section": section})
}
