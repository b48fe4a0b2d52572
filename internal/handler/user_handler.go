package handler

import (
	"errors"
	"net/http"

	"github.com/HanyRabah/redzone-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

// GetUsers 获取后台账号列表
func (a *API) GetUsers(c *gin.Context) {
	users, err := a.users.List()
	if err != nil {
		respondStorageError(c, err, "failed to load users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// CreateUser 创建后台账号
func (a *API) CreateUser(c *gin.Context) {
	var input service.UserInput
	if !bindJSON(c, &input, "username and password are required") {
		return
	}

	user, err := a.users.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserFieldsMissing):
			respondError(c, http.StatusBadRequest, "username and password are required")
		case errors.Is(err, service.ErrUserExists):
			respondError(c, http.StatusBadRequest, "username already exists")
		case errors.Is(err, service.ErrUserRole):
			respondError(c, http.StatusBadRequest, "unknown user role")
		default:
			respondStorageError(c, err, "failed to create user")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "user created", "user": user})
}

// UpdateUser 更新后台账号，密码留空保持不变
func (a *API) UpdateUser(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var input service.UserInput
	if !bindJSON(c, &input, "invalid user payload") {
		return
	}

	user, err := a.users.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "user not found")
		case errors.Is(err, service.ErrUserExists):
			respondError(c, http.StatusBadRequest, "username already exists")
		case errors.Is(err, service.ErrUserRole):
			respondError(c, http.StatusBadRequest, "unknown user role")
		default:
			respondStorageError(c, err, "failed to update user")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated", "user": user})
}

// DeleteUser 删除后台账号，最后一个管理员保留
func (a *API) DeleteUser(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := a.users.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "user not found")
		case errors.Is(err, service.ErrUserLastAdmin):
			respondError(c, http.StatusBadRequest, "cannot delete the last admin")
		default:
			respondStorageError(c, err, "failed to delete user")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
