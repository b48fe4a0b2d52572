package handler

import (
	"errors"
	"net/http"

	"github.com/HanyRabah/redzone-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

// GetSettings 获取站点设置
func (a *API) GetSettings(c *gin.Context) {
	settings, err := a.settings.GetSettings()
	if err != nil {
		respondStorageError(c, err, "failed to load settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings 保存站点设置，允许列表之外的键拒绝
func (a *API) UpdateSettings(c *gin.Context) {
	var values map[string]string
	if !bindJSON(c, &values, "invalid settings payload") {
		return
	}

	settings, err := a.settings.UpdateSettings(values)
	if err != nil {
		if errors.Is(err, service.ErrSettingKeyUnknown) {
			respondError(c, http.StatusBadRequest, "unknown setting key")
			return
		}
		respondStorageError(c, err, "failed to save settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "settings saved", "settings": settings})
}
