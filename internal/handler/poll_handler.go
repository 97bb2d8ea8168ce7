package handler

import (
	"net/http"

	"IT_Hub/internal/model"
	"IT_Hub/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PollHandler struct {
	svc *service.PollService
	log *zap.Logger
}

// PollReq 时间单位为小时
type PollReq struct {
	Topic       string   `json:"topic"`
	Description string   `json:"description"`
	Restriction string   `json:"restriction"`
	ExpireTime  *float64 `json:"expireTime"`
	StartTime   *float64 `json:"startTime"`
}

func (r PollReq) input() service.PollInput {
	return service.PollInput{
		Topic:           r.Topic,
		Description:     r.Description,
		Restriction:     r.Restriction,
		ExpireTimeHours: r.ExpireTime,
		StartTimeHours:  r.StartTime,
	}
}

func NewPollHandler(svc *service.PollService, log *zap.Logger) *PollHandler {
	return &PollHandler{svc: svc, log: log}
}

func (h *PollHandler) Create(c *gin.Context) {
	var req PollReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	poll, err := h.svc.Create(c.Request.Context(), req.input())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Poll created succesfully", "poll": poll})
}

// AdvanceToVoting 报名结束后切换到投票阶段
func (h *PollHandler) AdvanceToVoting(c *gin.Context) {
	var req PollReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	poll, err := h.svc.AdvanceToVoting(c.Request.Context(), c.Param("pollId"), req.input())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, poll)
}

// List 可选 phase 过滤
func (h *PollHandler) List(c *gin.Context) {
	h.respondList(c, func() ([]model.Poll, error) {
		return h.svc.List(c.Request.Context(), c.Query("phase"))
	})
}

func (h *PollHandler) ListUpdateable(c *gin.Context) {
	h.respondList(c, func() ([]model.Poll, error) {
		return h.svc.ListUpdateable(c.Request.Context())
	})
}

func (h *PollHandler) ListCompleted(c *gin.Context) {
	h.respondList(c, func() ([]model.Poll, error) {
		return h.svc.ListCompleted(c.Request.Context())
	})
}

func (h *PollHandler) respondList(c *gin.Context, fetch func() ([]model.Poll, error)) {
	list, err := fetch()
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
