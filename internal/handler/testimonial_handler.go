package handler

import (
	"errors"
	"net/http"

	"github.com/HanyRabah/redzone-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

// GetTestimonials 获取客户评价列表
func (a *API) GetTestimonials(c *gin.Context) {
	testimonials, err := a.testimonials.List(c.Query("active") == "true")
	if err != nil {
		respondStorageError(c, err, "failed to load testimonials")
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

// CreateTestimonial 创建客户评价
func (a *API) CreateTestimonial(c *gin.Context) {
	var input service.TestimonialInput
	if !bindJSON(c, &input, "invalid testimonial payload") {
		return
	}

	testimonial, err := a.testimonials.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTestimonialQuoteRequired):
			respondError(c, http.StatusBadRequest, "testimonial quote is required")
		case errors.Is(err, service.ErrTestimonialRating):
			respondError(c, http.StatusBadRequest, "rating must be between 1 and 5")
		default:
			respondStorageError(c, err, "failed to create testimonial")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "testimonial created", "testimonial": testimonial})
}

// UpdateTestimonial 更新客户评价
func (a *API) UpdateTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid testimonial id")
		return
	}

	var input service.TestimonialInput
	if !bindJSON(c, &input, "invalid testimonial payload") {
		return
	}

	testimonial, err := a.testimonials.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTestimonialNotFound):
			respondError(c, http.StatusNotFound, "testimonial not found")
		case errors.Is(err, service.ErrTestimonialQuoteRequired):
			respondError(c, http.StatusBadRequest, "testimonial quote is required")
		case errors.Is(err, service.ErrTestimonialRating):
			respondError(c, http.StatusBadRequest, "rating must be between 1 and 5")
		default:
			respondStorageError(c, err, "failed to update testimonial")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "testimonial updated", "testimonial": testimonial})
}

// DeleteTestimonial 删除客户评价
func (a *API) DeleteTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid testimonial id")
		return
	}

	if err := a.testimonials.Delete(id); err != nil {
		if errors.Is(err, service.ErrTestimonialNotFound) {
			respondError(c, http.StatusNotFound, "testimonial not found")
			return
		}
		respondStorageError(c, err, "failed to delete testimonial")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "testimonial deleted"})
}

// ReorderTestimonials 按 id 序列更新排序
func (a *API) ReorderTestimonials(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "ids are required") {
		return
	}

	if err := a.testimonials.Reorder(req.IDs); err != nil {
		switch {
		case errors.Is(err, service.ErrTestimonialOrder):
			respondError(c, http.StatusBadRequest, "invalid ordering")
		case errors.Is(err, service.ErrTestimonialNotFound):
			respondError(c, http.StatusNotFound, "testimonial not found")
		default:
			respondStorageError(c, err, "failed to reorder testimonials")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "testimonials reordered"})
}
