package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/materials/internal/api"
	"github.com/samandr77/materials/internal/api/events"
	"github.com/samandr77/materials/internal/clients/gomail"
	"github.com/samandr77/materials/internal/repository"
	"github.com/samandr77/materials/internal/service"
	"github.com/samandr77/materials/pkg/broker"
	"github.com/samandr77/materials/pkg/config"
	"github.com/samandr77/materials/pkg/logger"
	"github.com/samandr77/materials/pkg/postgres"
)

const (
	ReadTimeout     = 20 * time.Second
	WriteTimeout    = 20 * time.Second
	ShutdownTimeout = 5 * time.Second
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New(logger.ParseLevel(cfg.LogLevel))

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(ctx, cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	producer := broker.NewProducer(l, cfg.Kafka.Brokers)
	defer producer.Close()

	var mailer service.Mailer
	if cfg.Mailer.Enabled {
		mailer = gomail.New(cfg.Mailer)
	}

	s := service.New(service.Options{
		JWTSecret:       cfg.JWTSecret,
		JWTTTL:          cfg.JWTTTL,
		DefaultPageSize: cfg.DefaultPageSize,
		AccountTopic:    cfg.Kafka.AccountTopic,
		FrontendURL:     cfg.FrontendURL,
	}, repo, producer, mailer)

	err = s.EnsureAdmin(ctx, cfg.Bootstrap.AdminName, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword)
	panicOnErr("bootstrap admin", err)

	// Kafka consumers
	if cfg.Mailer.Enabled {
		consumer := broker.NewConsumer(l, cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.AccountTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.AccountTopic, eventHandler.OnAccountCreated)
		consumer.Consume(ctx)
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(s)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTPPort)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
