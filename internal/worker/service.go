package worker

import (
	"context"
	"errors"
	"time"

	"github.com/lamine-sport/api/internal/config"
	"github.com/lamine-sport/api/internal/logger"
	"github.com/lamine-sport/api/internal/queue"

	"github.com/hibiken/asynq"
)

const (
	couponExpireInterval  = time.Hour
	programExpireInterval = 5 * time.Minute
)

// Service 异步队列服务
type Service struct {
	name     string
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
}

// NewService 创建异步队列服务
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:     "worker",
		server:   server,
		mux:      mux,
		consumer: consumer,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start 启动服务
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.CouponRepo != nil {
		go s.runCouponExpireLoop(ctx)
	}
	if s.consumer != nil && s.consumer.DiscountProgramRepo != nil {
		go s.runProgramExpireLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop 停止服务
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

func (s *Service) runCouponExpireLoop(ctx context.Context) {
	if s == nil || s.consumer == nil || s.consumer.CouponRepo == nil {
		return
	}
	runOnce := func() {
		affected, err := s.consumer.CouponRepo.ExpireDue(time.Now())
		if err != nil {
			logger.Warnw("worker_coupon_expire_due_failed", "error", err)
			return
		}
		if affected > 0 {
			logger.Infow("worker_coupon_expire_due", "affected", affected)
		}
	}
	runOnce()

	ticker := time.NewTicker(couponExpireInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}

func (s *Service) runProgramExpireLoop(ctx context.Context) {
	if s == nil || s.consumer == nil || s.consumer.DiscountProgramRepo == nil {
		return
	}
	runOnce := func() {
		affected, err := s.consumer.DiscountProgramRepo.ExpireDue(time.Now())
		if err != nil {
			logger.Warnw("worker_program_expire_due_failed", "error", err)
			return
		}
		if affected > 0 {
			logger.Infow("worker_program_expire_due", "affected", affected)
		}
	}
	runOnce()

	ticker := time.NewTicker(programExpireInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
