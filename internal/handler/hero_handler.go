package handler

import (
	"errors"
	"net/http"

	"github.com/HanyRabah/redzone-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

// GetHero 获取默认轮播及其全部幻灯片
func (a *API) GetHero(c *gin.Context) {
	slider, err := a.hero.Get(c.Query("key"))
	if err != nil {
		if errors.Is(err, service.ErrHeroNotFound) {
			respondError(c, http.StatusNotFound, "hero slider not found")
			return
		}
		respondStorageError(c, err, "failed to load hero slider")
		return
	}
	c.JSON(http.StatusOK, gin.H{"hero": slider})
}

// SaveHero upsert 轮播并整组替换幻灯片
func (a *API) SaveHero(c *gin.Context) {
	var input service.HeroInput
	if !bindJSON(c, &input, "invalid hero payload") {
		return
	}

	slider, err := a.hero.Save(input)
	if err != nil {
		respondStorageError(c, err, "failed to save hero slider")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "hero slider saved", "hero": slider})
}
