package handler

import (
	"net/http"

	"IT_Hub/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ModerationHandler struct {
	svc *service.ReportService
	log *zap.Logger
}

func NewModerationHandler(svc *service.ReportService, log *zap.Logger) *ModerationHandler {
	return &ModerationHandler{svc: svc, log: log}
}

// ListReported 被举报内容列表，按举报次数倒序
func (h *ModerationHandler) ListReported(c *gin.Context) {
	list, err := h.svc.ListReported(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// DeleteReported 删除被举报的问题或评论
func (h *ModerationHandler) DeleteReported(c *gin.Context) {
	postID := c.Param("postId")

	post, err := h.svc.Resolve(c.Request.Context(), postID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, post)
}
