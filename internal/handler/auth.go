package handler

import (
	"errors"
	"net/http"

	"github.com/HanyRabah/redzone-sub002/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionKeyUserID   = "user_id"
	sessionKeyUsername = "username"
	sessionKeyRole     = "role"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 校验用户名密码并写入会话。
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "username and password are required") {
		return
	}

	user, err := a.users.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserCredentials) {
			respondError(c, http.StatusUnauthorized, "invalid username or password")
			return
		}
		respondStorageError(c, err, "login failed")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionKeyUserID, user.ID)
	session.Set(sessionKeyUsername, user.Username)
	session.Set(sessionKeyRole, user.Role)
	if err := session.Save(); err != nil {
		respondStorageError(c, err, "failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout 清空会话。
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		respondStorageError(c, err, "failed to save session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me 返回当前会话对应的账号。
func (a *API) Me(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := a.users.Get(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		respondStorageError(c, err, "failed to load user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// AuthRequired 是后台 API 的认证中间件：无会话直接 401，不触达存储。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionKeyUserID) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// RequireRole 要求会话携带指定角色，账号管理等破坏性操作用它收紧权限。
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		current, _ := session.Get(sessionKeyRole).(string)
		if current != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

// currentUserID 从会话中取出当前用户 id，未登录返回 0。
func currentUserID(c *gin.Context) uint {
	session := sessions.Default(c)
	switch v := session.Get(sessionKeyUserID).(type) {
	case uint:
		return v
	case int:
		return uint(v)
	case int64:
		return uint(v)
	case float64:
		return uint(v)
	default:
		return 0
	}
}
