package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/pricesnap/pricesnap-api/internal/cache"
	"github.com/pricesnap/pricesnap-api/internal/catalog"
	"github.com/pricesnap/pricesnap-api/internal/utils"
)

var startTime = time.Now()

// HealthHandler provides the health endpoint.
type HealthHandler struct {
	db    *sqlx.DB
	redis *cache.RedisClient
	store *catalog.Store
}

// NewHealthHandler creates a new HealthHandler. redis may be nil when
// caching is disabled.
func NewHealthHandler(db *sqlx.DB, redis *cache.RedisClient, store *catalog.Store) *HealthHandler {
	return &HealthHandler{db: db, redis: redis, store: store}
}

// GetHealth responds with service, database, and cache status.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	dbStatus := "connected"
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		dbStatus = "disconnected"
	}

	redisStatus := "disabled"
	if h.redis != nil {
		redisStatus = "connected"
		if err := h.redis.Ping(c.Request.Context()); err != nil {
			redisStatus = "disconnected"
		}
	}

	utils.Success(c, 200, "Service is healthy", gin.H{
		"status":   "healthy",
		"version":  "1.0.0",
		"uptime":   int(time.Since(startTime).Seconds()),
		"database": dbStatus,
		"redis":    redisStatus,
		"catalog": gin.H{
			"products": h.store.Len(),
		},
	})
}
