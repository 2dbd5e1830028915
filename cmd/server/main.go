package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/larpwright/larpwright/internal/common/clock"
	"github.com/larpwright/larpwright/internal/common/uuid"
	"github.com/larpwright/larpwright/internal/identity"
	"github.com/larpwright/larpwright/internal/models"
	"github.com/larpwright/larpwright/internal/notify"
	eventRepo "github.com/larpwright/larpwright/internal/repositories/event"
	scenarioRepo "github.com/larpwright/larpwright/internal/repositories/scenario"
	sessionRepo "github.com/larpwright/larpwright/internal/repositories/session"
	tagRepo "github.com/larpwright/larpwright/internal/repositories/tag"
	eventService "github.com/larpwright/larpwright/internal/services/event"
	gameService "github.com/larpwright/larpwright/internal/services/game"
)

func main() {
	// Load .env if present; real environments set variables directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not load .env file: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	tags, err := tagRepo.NewRedis(&tagRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create tag repository: %v", err)
	}

	scenarios, err := scenarioRepo.NewRedis(&scenarioRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create scenario repository: %v", err)
	}

	events, err := eventRepo.NewRedis(&eventRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create event repository: %v", err)
	}

	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	// Initialize the account directory
	directory, err := identity.NewRedis(&identity.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create identity resolver: %v", err)
	}

	// Initialize the websocket hub
	hub, err := notify.NewHub(&notify.Config{})
	if err != nil {
		log.Fatalf("Failed to create notify hub: %v", err)
	}

	// Initialize services
	gameSvc, err := gameService.New(&gameService.Config{
		SessionRepo:   sessions,
		ScenarioRepo:  scenarios,
		TagRepo:       tags,
		Identity:      directory,
		Notifier:      hub,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	eventSvc, err := eventService.New(&eventService.Config{
		EventRepo:     events,
		ScenarioRepo:  scenarios,
		GameService:   gameSvc,
		Identity:      directory,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create event service: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	mux.HandleFunc("/events/active", func(w http.ResponseWriter, r *http.Request) {
		out, err := eventSvc.ListEvents(r.Context(), &eventService.ListEventsInput{
			Status: models.EventStatusActive,
		})
		if err != nil {
			log.Printf("Failed to list active events: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(out.Events); err != nil {
			log.Printf("Failed to write active events: %v", err)
		}
	})

	server := &http.Server{
		Addr:    getEnv("LISTEN_ADDR", ":8080"),
		Handler: mux,
	}

	go func() {
		log.Printf("Listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
