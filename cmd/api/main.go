package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpadp "aquaria-partner-portal/internal/adapter/http"
	"aquaria-partner-portal/internal/adapter/repository/gormrepo"
	"aquaria-partner-portal/internal/adapter/session"
	"aquaria-partner-portal/internal/config"
	"aquaria-partner-portal/internal/domain/quote"
	"aquaria-partner-portal/internal/infrastructure/cache"
	"aquaria-partner-portal/internal/infrastructure/db"
	"aquaria-partner-portal/internal/infrastructure/kafka"
	"aquaria-partner-portal/internal/infrastructure/metrics"
	"aquaria-partner-portal/internal/infrastructure/migrate"
	ucAuth "aquaria-partner-portal/internal/usecase/auth"
	ucPartner "aquaria-partner-portal/internal/usecase/partner"
	ucQuote "aquaria-partner-portal/internal/usecase/quote"
)

type eventSink interface {
	quote.EventPublisher
	Close() error
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := sqlHandle(gdb)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer sqlDB.Close()

	if cfg.RunMigrations {
		if err := migrate.RunMigrations(gdb, cfg.DBDriver); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	var events eventSink = kafka.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		events = kafka.NewQuotePublisher(cfg.KafkaBrokers, cfg.KafkaQuoteTopic)
		log.Printf("publishing quote events to %s", cfg.KafkaQuoteTopic)
	}
	defer events.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	partners := gormrepo.NewPartnerRepository(gdb)
	quotes := gormrepo.NewQuoteRepository(gdb)
	tx := gormrepo.NewGormUoW(gdb)

	authUC := ucAuth.NewUsecase(gormrepo.NewUserRepository(gdb), partners, session.NewRedisStore(rdb), cfg.JWTSecret, cfg.SessionTTL(), logger)
	partnerUC := ucPartner.NewUsecase(partners, tx, logger)
	quoteUC := ucQuote.NewUsecase(quotes, partners, tx,
		ucQuote.WithPublisher(events),
		ucQuote.WithMetrics(metrics.NewQuoteMetrics(reg)),
		ucQuote.WithLogger(logger),
		ucQuote.WithHouseCode(cfg.HousePartnerCode),
	)

	if cfg.BootstrapAdminEmail != "" {
		if err := authUC.EnsureSuperAdmin(context.Background(), cfg.BootstrapAdminEmail, cfg.BootstrapAdminPassword); err != nil {
			log.Fatalf("bootstrap admin: %v", err)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	httpadp.Register(e, httpadp.Deps{
		Auth:     authUC,
		Partners: partnerUC,
		Quotes:   quoteUC,
		Redis:    rdb,
		IdempTTL: cfg.IdempotencyTTL(),
		Checks: map[string]httpadp.Pinger{
			"database": sqlDB.PingContext,
			"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
		Metrics: reg,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	if err := serve(e, ":"+cfg.AppPort, quit, 10*time.Second); err != nil {
		log.Printf("%v", err)
	}
}
