package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	apphttp "ashgrove-backend/internal/adapter/http"
	mw "ashgrove-backend/internal/adapter/middleware"
	"ashgrove-backend/internal/adapter/repository/postgres"
	"ashgrove-backend/internal/config"
	"ashgrove-backend/internal/infrastructure/cache"
	"ashgrove-backend/internal/infrastructure/db"
	"ashgrove-backend/internal/mailer"
	"ashgrove-backend/internal/usecase/auth"
	contentuc "ashgrove-backend/internal/usecase/content"
	"ashgrove-backend/internal/usecase/submission"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.Database.URL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	var store mw.CounterStore = mw.NewMemoryCounterStore()
	if cfg.Redis.Addr != "" {
		rdb, err := cache.OpenRedis(cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer rdb.Close()
		store = mw.NewRedisCounterStore(rdb)
	}

	mail := mailer.New(&cfg.Mail)

	userRepo := postgres.NewUserRepository(gdb)
	subRepo := postgres.NewSubmissionRepository(gdb)
	uow := postgres.NewGormUoW(gdb)

	authUC := auth.NewUsecase(userRepo, &cfg.Auth)
	contentUC := contentuc.NewUsecase(
		postgres.NewPageRepository(gdb),
		postgres.NewGalleryRepository(gdb),
		postgres.NewFAQRepository(gdb),
		postgres.NewRedirectRepository(gdb),
	)
	subUC := submission.NewUsecase(uow, subRepo)

	proc := submission.NewProcessor(subUC, mail, cfg.Mail.InternalTo, cfg.Mail.ConfirmEnabled)
	proc.Start()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.Security.CORSOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))

	e.Static("/uploads", cfg.Uploads.Dir)

	apphttp.RegisterRoutes(e, apphttp.Handlers{
		Auth:        apphttp.NewAuthHandler(authUC),
		Submissions: apphttp.NewSubmissionHandler(subUC, proc, cfg.Security.IPSalt, cfg.Enquiry.DefaultConsentText),
		AdminSubs:   apphttp.NewAdminSubmissionsHandler(subUC),
		Content:     apphttp.NewContentHandler(contentUC),
		Uploads:     apphttp.NewUploadHandler(cfg.Uploads.Dir),
		Verifier:    authUC,
		Store:       store,
		RateLimits:  cfg.RateLimit,
	})

	go func() {
		if err := e.Start(cfg.App.Addr()); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("http shutdown: %v", err)
	}

	// Drain queued notification jobs after the listener stops so no
	// email outcome is dropped.
	proc.Stop()
}
