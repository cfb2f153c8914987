package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	adminHandler "vincula/internal/admin/handler"
	"vincula/internal/archive"
	"vincula/internal/document"
	jwttoken "vincula/internal/jwt_token"
	"vincula/internal/notify"
	"vincula/internal/notify/smtp"
	"vincula/internal/otp"
	"vincula/internal/platform/config"
	"vincula/internal/platform/httpserver"
	"vincula/internal/platform/logger"
	"vincula/internal/platform/metrics"
	"vincula/internal/platform/postgres"
	"vincula/internal/platform/redis"
	"vincula/internal/trace"
	"vincula/internal/trace/sink"
	tracememory "vincula/internal/trace/store/memory"
	tracepostgres "vincula/internal/trace/store/postgres"
	httptransport "vincula/internal/transport/http"
	"vincula/internal/workflow"
	workflowHandler "vincula/internal/workflow/handler"
	sessionstore "vincula/internal/workflow/store"
	sessionmemory "vincula/internal/workflow/store/memory"
	sessionredis "vincula/internal/workflow/store/redis"
)

// main wires dependencies and owns the process lifecycle. Business rules live
// in the internal services.
func main() {
	cfg := config.Load()
	log := logger.New()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zone, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return err
	}

	m := metrics.New()

	// Session store: Redis when configured, process memory otherwise.
	var sessions sessionstore.Store = sessionmemory.New()
	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
		sessions = sessionredis.New(redisClient.Client, sessionredis.DefaultTTL)
		log.Info("session store: redis")
	} else {
		log.Info("session store: in-memory")
	}

	// Traceability log: PostgreSQL when configured, memory otherwise, with an
	// optional Kafka mirror on top.
	var traceLog trace.Log = tracememory.New()
	db, err := postgres.Open(cfg.PostgresDSN)
	if err != nil {
		return err
	}
	if db != nil {
		defer func() { _ = db.Close() }()
		pgLog := tracepostgres.New(db)
		if err := pgLog.Migrate(ctx); err != nil {
			return err
		}
		traceLog = pgLog
		log.Info("traceability log: postgres")
	} else {
		log.Info("traceability log: in-memory")
	}
	if cfg.KafkaBrokers != "" {
		mirror, err := sink.NewMirrorLog(traceLog, strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic, log)
		if err != nil {
			return err
		}
		defer mirror.Close()
		traceLog = mirror
		log.Info("traceability log: kafka mirror enabled", "topic", cfg.KafkaTopic)
	}

	var sender notify.Sender = notify.NewMemorySender()
	if cfg.SMTP.Host != "" {
		sender = smtp.New(cfg.SMTP)
	} else {
		log.Warn("SMTP_HOST not set; outbound mail is captured in memory and never delivered")
	}

	archiveStore, err := archive.NewFSStore(cfg.ArchiveDir, cfg.PublicBaseURL)
	if err != nil {
		return err
	}

	svc := workflow.NewService(workflow.ServiceConfig{
		Sessions: sessions,
		Codes:    otp.NewManager(sender, log, nil),
		Composer: document.NewComposer(cfg.Institution),
		Trace:    traceLog,
		Notifier: sender,
		Archive:  archiveStore,
		Metrics:  m,
		Logger:   log,
		Zone:     zone,
		Channel:  cfg.ChannelLabel,
	})

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, "vincula")

	router := httptransport.NewRouter(
		workflowHandler.New(svc, log, m),
		adminHandler.New(traceLog, jwtService, cfg.AdminPassword, log, m,
			jwttoken.NewJWTServiceAdapter(jwtService)),
	)

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting vincula", "addr", cfg.Addr, "timezone", cfg.TimeZone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
