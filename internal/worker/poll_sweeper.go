package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Completer interface {
	CompleteElapsed(ctx context.Context) (int64, error)
}

// Locker 多实例部署时保证同一时刻只有一个实例在扫描
type Locker interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

type PollSweeper struct {
	polls    Completer
	lock     Locker
	interval time.Duration
	log      *zap.Logger
}

// NewPollSweeper lock 为空时不加锁（单实例或本地开发）
func NewPollSweeper(polls Completer, lock Locker, interval time.Duration, log *zap.Logger) *PollSweeper {
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &PollSweeper{polls: polls, lock: lock, interval: interval, log: log}
}

// Run 阻塞直到 ctx 取消
func (w *PollSweeper) Run(ctx context.Context) {
	t := time.NewTicker(w.interval)
	defer t.Stop()
	w.log.Info("poll sweeper started", zap.Duration("interval", w.interval))
	for {
		select {
		case <-ctx.Done():
			w.log.Info("poll sweeper stopped")
			return
		case <-t.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep 执行一轮，返回本轮完成的投票数
func (w *PollSweeper) Sweep(ctx context.Context) int64 {
	if w.lock != nil {
		ok, err := w.lock.Acquire(ctx)
		if err != nil {
			w.log.Warn("acquire sweep lock failed", zap.Error(err))
			return 0
		}
		if !ok {
			return 0
		}
		defer func() {
			if err := w.lock.Release(context.WithoutCancel(ctx)); err != nil {
				w.log.Warn("release sweep lock failed", zap.Error(err))
			}
		}()
	}

	n, err := w.polls.CompleteElapsed(ctx)
	if err != nil {
		w.log.Error("complete elapsed polls failed", zap.Error(err))
		return 0
	}
	if n > 0 {
		w.log.Info("polls completed", zap.Int64("count", n))
	}
	return n
}
