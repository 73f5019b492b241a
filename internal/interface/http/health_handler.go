package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enrollhub/backend/pkg/response"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// Check GET /api/health
func (h *HealthHandler) Check(c *gin.Context) {
	response.Success[any](c, http.StatusOK, gin.H{"status": "ok"}, "backend is running")
}
