package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotel-site/config"
	"hotel-site/controllers"
	"hotel-site/routes"
	"hotel-site/services"
	"hotel-site/utils"
)

func main() {
	// Load .env (optional)
	envErr := godotenv.Load()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	logger := utils.NewLogger(cfg.LogLevel)
	utils.SetLogger(logger)
	if envErr != nil {
		logger.Info(".env not found or couldn't load it; continuing with environment variables")
	}

	// Reservation service client
	api := services.NewAPIClient(cfg.APIBaseURL, cfg.APITimeout)
	logger.Info("Reservation service configured", "base_url", cfg.APIBaseURL, "timeout", cfg.APITimeout.String())

	hotel := config.Hotel()
	catalog := services.NewCatalogLoader(api)
	gallery := services.NewGallery(config.GalleryImages(), config.GalleryCategories())
	sessions := services.NewSessionStore(cfg.SessionTTL)

	router := routes.SetupRouter(routes.Deps{
		Config:   cfg,
		Logger:   logger,
		Sessions: sessions,
		Hotel:    hotel,
		Pages:    controllers.NewPageController(catalog, gallery, config.HeroSlides(), hotel),
		Booking:  controllers.NewBookingController(catalog, api, hotel),
		Contact:  controllers.NewContactController(api, hotel),
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	go func() {
		logger.Info("Server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("ListenAndServe failed", "error", err.Error())
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err.Error())
		os.Exit(1)
	}

	logger.Info("Server stopped gracefully")
}
