package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/OluRemiFour/kendra-backend/internal/model"
	"github.com/gin-gonic/gin"
)

func (h *Handler) RunAnalysis(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), providerRequestTimeout)
	defer cancel()

	var request model.AnalysisRequest
	if err := c.BindJSON(&request); err != nil {
		log.Printf("BindJSON error: %v", err)
		c.Status(http.StatusBadRequest)
		return
	}

	issues, err := h.service.RunAnalysis(ctx, request)
	if err != nil {
		var apiError *model.APIError
		if errors.As(err, &apiError) {
			switch apiError.Code {
			case model.CodeEmptyField:
				log.Println("handler: empty field")
				c.JSON(http.StatusBadRequest, gin.H{
					"error": err,
				})
			case model.CodeNotFound:
				log.Println("handler: repository not found")
				c.JSON(http.StatusNotFound, gin.H{
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

	log.Printf("analysis stored %d issues for repository %s", len(issues), request.RepositoryID)
	c.JSON(http.StatusCreated, gin.H{
		"issues": issues,
		"count":  len(issues),
	})
}
