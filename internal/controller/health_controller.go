package controller

import (
	"context"
	"net/http"
	"time"

	"oecd_explorer/internal/util"

	"github.com/gin-gonic/gin"
)

// Pinger 健康检查依赖的存储
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	store   Pinger
	backend string
}

func NewHealthController(store Pinger, backend string) *HealthController {
	return &HealthController{store: store, backend: backend}
}

// @Summary 健康检查
// @Description 检查服务与状态存储
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.store.Ping(pingCtx); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "State store unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			c.backend: "up",
		},
	})
}
