package handler

import (
	"errors"
	"net/http"

	"github.com/HanyRabah/redzone-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

// SubmitContact 是前台联系表单入口，无需登录
func (a *API) SubmitContact(c *gin.Context) {
	var input service.SubmissionInput
	if !bindJSON(c, &input, "all contact fields are required") {
		return
	}

	submission, err := a.contacts.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubmissionFields):
			respondError(c, http.StatusBadRequest, "all contact fields are required")
		case errors.Is(err, service.ErrSubmissionEmail):
			respondError(c, http.StatusBadRequest, "a valid email address is required")
		default:
			respondStorageError(c, err, "failed to submit message")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Thank you for reaching out. We will get back to you soon.",
		"submission": submission,
	})
}

// GetSubmissions 获取提交列表
func (a *API) GetSubmissions(c *gin.Context) {
	submissions, err := a.contacts.List(service.SubmissionFilter{
		UnreadOnly: c.Query("unread") == "true",
	})
	if err != nil {
		respondStorageError(c, err, "failed to load submissions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

// GetSubmission 获取单条提交
func (a *API) GetSubmission(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid submission id")
		return
	}

	submission, err := a.contacts.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			respondError(c, http.StatusNotFound, "submission not found")
			return
		}
		respondStorageError(c, err, "failed to load submission")
		return
	}
	c.JSON(http.StatusOK, gin.H{"submission": submission})
}

type repliedRequest struct {
	IsReplied bool `json:"isReplied"`
}

// SetSubmissionReplied 翻转已回复标记
func (a *API) SetSubmissionReplied(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid submission id")
		return
	}

	var req repliedRequest
	if !bindJSON(c, &req, "invalid payload") {
		return
	}

	submission, err := a.contacts.SetReplied(id, req.IsReplied)
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			respondError(c, http.StatusNotFound, "submission not found")
			return
		}
		respondStorageError(c, err, "failed to update submission")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "submission updated", "submission": submission})
}

// DeleteSubmission 删除单条提交
func (a *API) DeleteSubmission(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid submission id")
		return
	}

	if err := a.contacts.Delete(id); err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			respondError(c, http.StatusNotFound, "submission not found")
			return
		}
		respondStorageError(c, err, "failed to delete submission")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "submission deleted"})
}

type bulkRequest struct {
	IDs    []uint `json:"ids"`
	Action string `json:"action" binding:"required"`
}

// BulkSubmissions 对 id 集合统一执行 mark-read / mark-unread / delete
func (a *API) BulkSubmissions(c *gin.Context) {
	var req bulkRequest
	if !bindJSON(c, &req, "action is required") {
		return
	}

	if err := a.contacts.Bulk(req.IDs, req.Action); err != nil {
		switch {
		case errors.Is(err, service.ErrBulkIDsEmpty):
			respondError(c, http.StatusBadRequest, "ids are required")
		case errors.Is(err, service.ErrBulkAction):
			respondError(c, http.StatusBadRequest, "unknown bulk action")
		default:
			respondStorageError(c, err, "failed to apply bulk action")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bulk action applied"})
}
