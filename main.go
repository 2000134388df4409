package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"stayease-backend/cache"
	"stayease-backend/config"
	"stayease-backend/controllers"
	"stayease-backend/routes"
	"stayease-backend/services"
	"stayease-backend/session"
	"stayease-backend/utils"
)

func main() {
	// Load .env (optional)
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("❌ Config error: %v", err)
	}

	log, closeLog := config.NewLogger(cfg.Logging)
	defer closeLog()
	if envErr != nil {
		log.Info(".env not found or couldn't load it; continuing with environment variables")
	}

	store, closeStore, err := config.OpenStore(cfg.Database, log)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	defer closeStore()
	log.WithField("driver", cfg.Database.Driver).Info("✅ Store ready")

	if cfg.SeedDemo {
		if err := config.SeedDemo(context.Background(), store, log); err != nil {
			log.WithError(err).Warn("demo seed failed")
		}
	}

	revocations := session.NewMemoryRevocations()
	if cfg.Redis.Addr != "" {
		client, err := session.NewRedisClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("❌ Redis connect failed: %v", err)
		}
		defer client.Close()
		revocations = session.NewRedisRevocations(client)
		log.WithField("addr", cfg.Redis.Addr).Info("✅ Session revocations stored in redis")
	}
	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL, revocations)

	listings := cache.NewListingCache(cache.Options{
		LocalTTL:      cfg.Cache.LocalTTL,
		RemoteTTL:     cfg.Cache.RemoteTTL,
		MemcachedHost: cfg.Cache.MemcachedHost,
	}, log)

	// Initialize services
	userService := services.NewUserService(store, log)
	propertyService := services.NewPropertyService(store, listings, cfg.PageSize, log)
	reviewService := services.NewReviewService(store, listings, log)
	bookingService := services.NewBookingService(store, log)
	exportService := services.NewExportService(store, bookingService)
	waitlistService := services.NewWaitlistService(store, utils.NewMailer(cfg.SMTP, log), log)

	// Build router
	router := routes.SetupRouter(routes.Handlers{
		Auth:       controllers.NewAuthController(userService, sessions, cfg.Session.CookieSecure, log),
		Properties: controllers.NewPropertyController(propertyService, log),
		Reviews:    controllers.NewReviewController(reviewService, log),
		Bookings:   controllers.NewBookingController(bookingService, log),
		Host:       controllers.NewHostController(propertyService, exportService, log),
		Waitlist:   controllers.NewWaitlistController(waitlistService, log),
	}, sessions, cfg.CORSOrigins, log)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infof("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("❌ Server forced to shutdown")
		return
	}

	log.Info("✅ Server stopped gracefully")
}
