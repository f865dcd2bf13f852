package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"exam-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	Service *service.ReviewService
}

func NewReviewHandler(s *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: s}
}

func (h *ReviewHandler) GetDueQuestions(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")

	limit := int64(20)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	questions, err := h.Service.DueQuestions(context.Background(), userID, limit, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(questions), "questions": questions})
}
