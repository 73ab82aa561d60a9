package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/aleostudio/a2a-registry/internal/adapter/agentclient"
	"github.com/aleostudio/a2a-registry/internal/config"
	"github.com/aleostudio/a2a-registry/internal/registry"
	"github.com/aleostudio/a2a-registry/internal/service"
	v1 "github.com/aleostudio/a2a-registry/internal/transport/http/v1"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting %s %s...", cfg.AppName, cfg.AppVersion)
	log.Printf("Listening on %s:%d", cfg.Host, cfg.Port)
	log.Printf("Healthcheck interval: %s, max failures: %d", cfg.HealthCheckInterval, cfg.MaxFailures)

	// Initialize store, agent client and service
	store := registry.NewStore(cfg.MaxFailures)
	agentClient := agentclient.NewClient(cfg.FetchTimeout)
	svc := service.New(store, agentClient, cfg)

	// Initialize handlers
	h := v1.NewHandler(svc)

	// Create Echo server
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))

	// Register routes
	h.RegisterRoutes(e)

	// Start the healthcheck loop
	loopCtx, stopLoop := context.WithCancel(context.Background())
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		svc.RunHealthcheckLoop(loopCtx)
	}()

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down registry...")

	// Stop the healthcheck loop and wait for the current sweep to end
	stopLoop()
	<-loopDone

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Registry stopped")
}
