package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type HealthHandler struct {
	client *mongo.Client
	env    string
}

// NewHealthHandler creates a new health check handler
func NewHealthHandler(client *mongo.Client, env string) *HealthHandler {
	return &HealthHandler{
		client: client,
		env:    env,
	}
}

// Health handles GET /health
// Reports overall status plus database connectivity
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	mongoStatus := "connected"
	status := "ok"
	code := http.StatusOK

	if err := h.client.Ping(ctx, readpref.Primary()); err != nil {
		mongoStatus = "disconnected"
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"mongo":     mongoStatus,
		"env":       h.env,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
