package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/lieferspatz/internal/config"
	"github.com/Skotchmaster/lieferspatz/internal/db"
	"github.com/Skotchmaster/lieferspatz/internal/events"
	"github.com/Skotchmaster/lieferspatz/internal/httpserver"
	"github.com/Skotchmaster/lieferspatz/internal/logging"
	"github.com/Skotchmaster/lieferspatz/internal/middleware"
	"github.com/Skotchmaster/lieferspatz/internal/repo"
	"github.com/Skotchmaster/lieferspatz/internal/search"
	"github.com/Skotchmaster/lieferspatz/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	var publisher events.Publisher = events.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := events.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			log.Fatalf("kafka producer: %v", err)
		}
		publisher = producer
	}

	menuSvc := &service.MenuService{Events: publisher}
	if cfg.ESURL != "" {
		es, err := search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("elasticsearch client: %v", err)
		}
		menuSvc.Index = search.NewMenuIndex(es, cfg.ESMenuIndex)
	}

	r := repo.New(gdb)
	menuSvc.Repo = r

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Common(logger)...)

	httpserver.Register(e, &httpserver.Deps{
		DB: gdb,
		AccountHandler: &httpserver.AccountHTTP{Svc: &service.AccountService{
			Repo:                 r,
			Events:               publisher,
			CustomerStartBalance: cfg.CustomerStartBalance,
		}},
		MenuHandler:  &httpserver.MenuHTTP{Svc: menuSvc},
		OrderHandler: &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: r, Events: publisher}},
		QueryHandler: &httpserver.QueryHTTP{Svc: &service.QueryService{Repo: r}},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Error("event publisher close", "error", err)
	}
	if err := db.Close(gdb); err != nil {
		logger.Error("db close", "error", err)
	}

	logger.Info("stopped")
}
