package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/OluRemiFour/kendra-backend/internal/model"
	"github.com/gin-gonic/gin"
)

func (h *Handler) GetPostureReport(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()
	userID := c.Query("user_id")

	report, err := h.service.GetPostureReport(ctx, userID)
	if err != nil {
		var apiError *model.APIError
		if errors.As(err, &apiError) {
			switch apiError.Code {
			case model.CodeEmptyField:
				log.Println("handler: empty field")
				c.JSON(http.StatusBadRequest, gin.H{
					"error": err,
				})
			default:
				log.Printf("handler: server error: %v", err)
				c.Status(http.StatusInternalServerError)
			}
		} else {
			log.Printf("handler: server error: %v", err)
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	log.Printf("posture report: index=%d trend=%s", report.PostureIndex, report.Trend)
	c.JSON(http.StatusOK, report)
}
