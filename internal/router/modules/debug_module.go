package modules

import (
	"expvar"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vkosyk/course-catalog-api/internal/container"
	"github.com/vkosyk/course-catalog-api/internal/interface/middleware"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg := container.GetConfig(); cfg != nil && !cfg.DebugMetricsEnabled {
		return
	}
	// Public metrics endpoint (expvar), rate-limited per IP
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowLocal())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
