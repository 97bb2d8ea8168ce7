package handler

import (
	"IT_Hub/internal/middleware"
	"IT_Hub/internal/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeError 内部错误写日志并只返回通用提示
func writeError(c *gin.Context, log *zap.Logger, err error) {
	status := pkg.StatusOf(err)
	if status >= 500 {
		log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(middleware.RequestIDHeader)),
			zap.Error(err),
		)
	}
	c.JSON(status, gin.H{"msg": pkg.PublicMessage(err)})
}
