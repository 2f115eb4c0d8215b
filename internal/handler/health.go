package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edukshare-max/fastapi-backend/internal/infra"
)

// Health handles GET /ping
// Liveness plus a store ping; never exposes credentials or internals.
func Health(db *mongo.Database, env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeStatus := "connected"
		status := http.StatusOK
		if err := infra.Ping(c.Request.Context(), db); err != nil {
			storeStatus = "error"
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"success":     status == http.StatusOK,
			"message":     "Backend SASU online",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": env,
			"database":    storeStatus,
		})
	}
}
