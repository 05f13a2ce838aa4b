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

	"github.com/vincenth777/census-chat/api"
	"github.com/vincenth777/census-chat/config"
	"github.com/vincenth777/census-chat/internal/chat"
	"github.com/vincenth777/census-chat/internal/llm"
	"github.com/vincenth777/census-chat/internal/prompt"
	"github.com/vincenth777/census-chat/internal/warehouse"
	"github.com/vincenth777/census-chat/policy"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting census-chat...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Warehouse: %s (%s)", cfg.WarehouseDSN, cfg.WarehouseDriver)
	log.Printf("Model: %s via %s", cfg.LLMModel, cfg.LLMBaseURL)

	// Initialize warehouse pool
	pool, err := warehouse.Open(cfg.WarehouseDriver, cfg.WarehouseDSN)
	if err != nil {
		log.Fatalf("Failed to open warehouse: %v", err)
	}
	defer pool.Close()

	// Initialize topic policy engine
	ctx := context.Background()
	guardrail, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Initialize model client
	system := prompt.SystemPrompt(cfg.WarehouseDatabase, cfg.WarehouseSchema)
	generator := llm.NewGenerator(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, system, cfg.LLMTimeout)

	// Initialize chat service
	svc := chat.NewService(chat.NewStore(), generator, pool, guardrail, cfg.MaxRounds, cfg.RowCap)

	// Initialize handler
	h := api.NewHandler(svc)

	// Create Echo server
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	h.RegisterRoutes(e)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("census-chat started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down census-chat...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("census-chat stopped")
}
