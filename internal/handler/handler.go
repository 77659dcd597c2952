package handler

import (
	"github.com/OluRemiFour/kendra-backend/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *service.Service
}

func NewHandler(s *service.Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.Default()

	securityGroup := router.Group("/security")
	{
		securityGroup.GET("/posture", h.GetPostureReport)
		securityGroup.GET("/threatReport", h.GetThreatReport)
	}

	analysisGroup := router.Group("/analysis")
	{
		analysisGroup.POST("/run", h.RunAnalysis)
	}

	return router
}
