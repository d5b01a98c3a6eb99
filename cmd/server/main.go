package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"companion-backend/internal/config"
	"companion-backend/internal/handlers"
	"companion-backend/internal/router"
	"companion-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Companion Backend...")

	// ──── Step 1: Load Environment Variables ────
	// Panics when GEMINI_API_KEY is missing; nothing is served without it.
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Gemini Client ────
	persona := services.NewPersona(cfg.GeminiModel)
	geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey, persona, cfg.GeminiConcurrentReqs)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Printf("✓ Gemini client initialized (%s)", persona.Model())

	// ──── Step 3: Initialize Handlers ────
	companionService := services.NewCompanionService(persona, geminiService)
	chatHandler := handlers.NewChatHandler(companionService)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(chatHandler, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Companion Backend ready on http://%s (env=%s)", cfg.Addr(), cfg.Env)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
