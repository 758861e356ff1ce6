package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"ranchops/internal/dto"
	"ranchops/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const dashboardCacheTTL = 30 * time.Second

// DashboardHandler serves the aggregated dashboard counters. The stats are
// assembled from several tables per request, so a short per-user Redis cache
// absorbs dashboard polling without letting the numbers go meaningfully stale.
type DashboardHandler struct {
	svc service.DashboardService
	rdb *redis.Client
}

func NewDashboardHandler(svc service.DashboardService, rdb *redis.Client) *DashboardHandler {
	return &DashboardHandler{svc: svc, rdb: rdb}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	userID := currentUserID(c)
	cacheKey := "dashboard:" + userID

	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.DashboardStatsResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	resp, err := h.svc.Stats(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, dashboardCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
