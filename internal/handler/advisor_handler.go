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

// Provider-backed paths get a longer deadline than the storage paths.
const providerRequestTimeout = 90 * time.Second

func (h *Handler) GetThreatReport(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), providerRequestTimeout)
	defer cancel()
	userID := c.Query("user_id")

	threats, err := h.service.GetThreatReport(ctx, userID)
	if err != nil {
		var apiError *model.APIError
		if errors.As(err, &apiError) {
			switch apiError.Code {
			case model.CodeEmptyField:
				log.Println("handler: empty field")
				c.JSON(http.StatusBadRequest, gin.H{
					"error": err,
				})
			case model.CodeProviderFailure:
				log.Println("handler: provider failure")
				c.JSON(http.StatusBadGateway, gin.H{
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

	log.Printf("threat report: %d threats", len(threats))
	c.JSON(http.StatusOK, gin.H{
		"threats": threats,
	})
}
