package handler

import (
	"errors"
	"net/http"

	"github.com/HanyRabah/redzone-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

// GetClients 获取客户 Logo 墙列表
func (a *API) GetClients(c *gin.Context) {
	clients, err := a.clients.List(c.Query("active") == "true")
	if err != nil {
		respondStorageError(c, err, "failed to load clients")
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// CreateClient 创建客户条目
func (a *API) CreateClient(c *gin.Context) {
	var input service.ClientInput
	if !bindJSON(c, &input, "invalid client payload") {
		return
	}

	client, err := a.clients.Create(input)
	if err != nil {
		if errors.Is(err, service.ErrClientNameRequired) {
			respondError(c, http.StatusBadRequest, "client name is required")
			return
		}
		respondStorageError(c, err, "failed to create client")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "client created", "client": client})
}

// UpdateClient 更新客户条目
func (a *API) UpdateClient(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid client id")
		return
	}

	var input service.ClientInput
	if !bindJSON(c, &input, "invalid client payload") {
		return
	}

	client, err := a.clients.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			respondError(c, http.StatusNotFound, "client not found")
		case errors.Is(err, service.ErrClientNameRequired):
			respondError(c, http.StatusBadRequest, "client name is required")
		default:
			respondStorageError(c, err, "failed to update client")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "client updated", "client": client})
}

// DeleteClient 删除客户条目
func (a *API) DeleteClient(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid client id")
		return
	}

	if err := a.clients.Delete(id); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			respondError(c, http.StatusNotFound, "client not found")
			return
		}
		respondStorageError(c, err, "failed to delete client")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "client deleted"})
}

// ReorderClients 按 id 序列更新排序
func (a *API) ReorderClients(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "ids are required") {
		return
	}

	if err := a.clients.Reorder(req.IDs); err != nil {
		switch {
		case errors.Is(err, service.ErrClientOrder):
			respondError(c, http.StatusBadRequest, "invalid ordering")
		case errors.Is(err, service.ErrClientNotFound):
			respondError(c, http.StatusNotFound, "client not found")
		default:
			respondStorageError(c, err, "failed to reorder clients")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "clients reordered"})
}
