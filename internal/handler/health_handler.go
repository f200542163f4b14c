package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health responds to liveness probes.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready responds to readiness probes. The service holds no connections or
// state to warm up, so ready mirrors health.
func Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
