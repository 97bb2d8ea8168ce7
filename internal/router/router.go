package router

import (
	"context"
	"net/http"
	"time"

	"IT_Hub/internal/handler"
	"IT_Hub/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// HealthCheck 依赖的存活检查，名字用于返回信息
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type Deps struct {
	Moderation *handler.ModerationHandler
	Poll       *handler.PollHandler
	JWTSecret  []byte
	Log        *zap.Logger
	Gatherer   prometheus.Gatherer
	Health     []HealthCheck
}

func InitRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Metrics(), middleware.AccessLog(d.Log))

	r.GET("/healthz", healthz(d.Health))
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminOnly(d.JWTSecret))

	// 举报处理接口
	{
		admin.GET("/reported-post", d.Moderation.ListReported)
		admin.DELETE("/reported-post/:postId", d.Moderation.DeleteReported)
	}

	// 投票相关接口
	{
		admin.POST("/poll", d.Poll.Create)
		admin.PATCH("/poll/:pollId", d.Poll.AdvanceToVoting)
		admin.GET("/poll", d.Poll.List)
		admin.GET("/poll/updateable", d.Poll.ListUpdateable)
		admin.GET("/poll/completed", d.Poll.ListCompleted)
	}

	return r
}

func healthz(checks []HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		for _, hc := range checks {
			if err := hc.Check(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "dependency": hc.Name})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
