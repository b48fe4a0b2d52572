package handler

import (
	"errors"
	"net/http"

	"github.com/HanyRabah/redzone-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

type reorderRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}

// GetTeamMembers 获取团队成员列表
func (a *API) GetTeamMembers(c *gin.Context) {
	members, err := a.team.List(c.Query("active") == "true")
	if err != nil {
		respondStorageError(c, err, "failed to load team members")
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}

// CreateTeamMember 创建团队成员
func (a *API) CreateTeamMember(c *gin.Context) {
	var input service.TeamMemberInput
	if !bindJSON(c, &input, "invalid team member payload") {
		return
	}

	member, err := a.team.Create(input)
	if err != nil {
		if errors.Is(err, service.ErrTeamMemberNameRequired) {
			respondError(c, http.StatusBadRequest, "team member name is required")
			return
		}
		respondStorageError(c, err, "failed to create team member")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "team member created", "member": member})
}

// UpdateTeamMember 更新团队成员
func (a *API) UpdateTeamMember(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid team member id")
		return
	}

	var input service.TeamMemberInput
	if !bindJSON(c, &input, "invalid team member payload") {
		return
	}

	member, err := a.team.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamMemberNotFound):
			respondError(c, http.StatusNotFound, "team member not found")
		case errors.Is(err, service.ErrTeamMemberNameRequired):
			respondError(c, http.StatusBadRequest, "team member name is required")
		default:
			respondStorageError(c, err, "failed to update team member")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "team member updated", "member": member})
}

// DeleteTeamMember 删除团队成员
func (a *API) DeleteTeamMember(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid team member id")
		return
	}

	if err := a.team.Delete(id); err != nil {
		if errors.Is(err, service.ErrTeamMemberNotFound) {
			respondError(c, http.StatusNotFound, "team member not found")
			return
		}
		respondStorageError(c, err, "failed to delete team member")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "team member deleted"})
}

// ReorderTeamMembers 按 id 序列更新排序
func (a *API) ReorderTeamMembers(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "ids are required") {
		return
	}

	if err := a.team.Reorder(req.IDs); err != nil {
		switch {
		case errors.Is(err, service.ErrTeamOrder):
			respondError(c, http.StatusBadRequest, "invalid ordering")
		case errors.Is(err, service.ErrTeamMemberNotFound):
			respondError(c, http.StatusNotFound, "team member not found")
		default:
			respondStorageError(c, err, "failed to reorder team members")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "team members reordered"})
}
