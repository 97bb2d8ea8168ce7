package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"IT_Hub/internal/config"
	"IT_Hub/internal/handler"
	"IT_Hub/internal/pkg"
	"IT_Hub/internal/repository/memory"
	"IT_Hub/internal/repository/mongo"
	"IT_Hub/internal/repository/mysql"
	"IT_Hub/internal/repository/redis"
	"IT_Hub/internal/router"
	"IT_Hub/internal/service"
	"IT_Hub/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// repos 三种存储实现共用的一组仓库
type repos struct {
	comments  service.CommentRepository
	questions service.QuestionRepository
	users     service.UserRepository
	reports   service.ReportRepository
	polls     service.PollRepository
	health    []router.HealthCheck
	close     func(ctx context.Context) error
}

func main() {
	cfg := config.Load()

	log, err := pkg.NewLogger(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal("open store failed", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer store.close(context.Background())

	// 连接redis，只用于多实例扫描锁；内存存储为单实例，不需要
	var lock worker.Locker
	if cfg.StoreDriver != config.DriverMemory && cfg.RedisAddr != "" {
		if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
			log.Fatal("redis init failed", zap.Error(err))
		}
		defer redis.Close()
		lock = redis.NewDistLock(nil, "poll-sweeper", cfg.SweepInterval)
		store.health = append(store.health, router.HealthCheck{Name: "redis", Check: redis.Ping})
	}

	events, err := openPublisher(cfg)
	if err != nil {
		log.Fatal("event broker init failed", zap.String("broker", cfg.EventBroker), zap.Error(err))
	}
	defer events.Close()

	mailer := pkg.NewSMTPMailer(pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.EmailFrom,
	})

	reportSvc := service.NewReportService(service.ReportDeps{
		Comments:  store.comments,
		Questions: store.questions,
		Users:     store.users,
		Reports:   store.reports,
		Notifier:  service.NewNotificationService(mailer, cfg.EmailFrom),
		Events:    events,
		Log:       log.Named("moderation"),
	})
	pollSvc := service.NewPollService(store.polls, events, log.Named("poll"))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	pkg.MustRegister(reg)

	r := router.InitRouter(router.Deps{
		Moderation: handler.NewModerationHandler(reportSvc, log),
		Poll:       handler.NewPollHandler(pollSvc, log),
		JWTSecret:  []byte(cfg.JWTSecret),
		Log:        log,
		Gatherer:   reg,
		Health:     store.health,
	})

	sweeper := worker.NewPollSweeper(pollSvc, lock, cfg.SweepInterval, log.Named("sweeper"))
	go sweeper.Run(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}
	log.Info("bye")
}

func openStore(ctx context.Context, cfg config.Config) (*repos, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		s, err := mongo.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		if err := s.EnsureIndexes(ctx); err != nil {
			return nil, err
		}
		return &repos{
			comments:  s.Comments(),
			questions: s.Questions(),
			users:     s.Users(),
			reports:   s.Reports(),
			polls:     s.Polls(),
			health:    []router.HealthCheck{{Name: "mongo", Check: s.Ping}},
			close:     s.Close,
		}, nil
	case config.DriverMemory:
		s := memory.NewStore()
		return &repos{
			comments:  s.Comments(),
			questions: s.Questions(),
			users:     s.Users(),
			reports:   s.Reports(),
			polls:     s.Polls(),
			close:     func(context.Context) error { return nil },
		}, nil
	default:
		if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
			return nil, err
		}
		// 自动建表（开发阶段 OK）
		if err := mysql.AutoMigrate(mysql.DB); err != nil {
			return nil, err
		}
		return &repos{
			comments:  &mysql.CommentRepository{DB: mysql.DB},
			questions: &mysql.QuestionRepository{DB: mysql.DB},
			users:     &mysql.UserRepository{DB: mysql.DB},
			reports:   &mysql.ReportRepository{DB: mysql.DB},
			polls:     &mysql.PollRepository{DB: mysql.DB},
			health:    []router.HealthCheck{{Name: "mysql", Check: mysql.Ping}},
			close:     func(context.Context) error { return mysql.Close() },
		}, nil
	}
}

func openPublisher(cfg config.Config) (pkg.EventPublisher, error) {
	switch cfg.EventBroker {
	case config.BrokerKafka:
		return pkg.NewKafkaProducer(pkg.KafkaConfig{Brokers: cfg.KafkaBrokers, Topic: cfg.KafkaTopic})
	case config.BrokerRabbit:
		return pkg.NewRabbitPublisher(cfg.RabbitURL, cfg.RabbitExchange)
	default:
		return pkg.NoopPublisher{}, nil
	}
}
