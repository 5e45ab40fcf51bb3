package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/api"
	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/cart"
	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/httpapi"
	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/session"
	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/tokenstore"
)

type Config struct {
	HTTPPort        string
	MarketplaceURL  string
	TokenStore      string // "file" or "redis"
	TokenFilePath   string
	RedisAddr       string
	RequestTimeout  time.Duration
	UpstreamTimeout time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		MarketplaceURL:  getEnv("MARKETPLACE_URL", "https://shanki-vendor.onrender.com"),
		TokenStore:      getEnv("TOKEN_STORE", "file"),
		TokenFilePath:   getEnv("TOKEN_FILE", defaultTokenFile()),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RequestTimeout:  30 * time.Second,
		UpstreamTimeout: 15 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".storefront/token"
	}
	return filepath.Join(home, ".storefront", "token")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func newTokenStore(cfg *Config) tokenstore.Store {
	switch cfg.TokenStore {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return tokenstore.NewRedis(client, "storefront:token")
	default:
		return tokenstore.NewFile(cfg.TokenFilePath)
	}
}

func main() {
	cfg := loadConfig()

	tokens := newTokenStore(cfg)

	// The session store supplies the bearer token for the same client it
	// authenticates through, so the token source resolves lazily.
	var sessions *session.Store
	client := api.NewClient(cfg.MarketplaceURL, api.TokenFunc(func() string {
		if sessions == nil {
			return ""
		}
		return sessions.Token()
	}), cfg.UpstreamTimeout)
	sessions = session.NewStore(client, tokens)

	engine := cart.NewEngine(client)
	engine.TrackSession(sessions)

	// Pick up a previous session from the durable token slot.
	restoreCtx, cancelRestore := context.WithTimeout(context.Background(), cfg.UpstreamTimeout)
	if res := sessions.Restore(restoreCtx); !res.Success {
		log.Printf("no session restored: %s", res.Message)
	}
	cancelRestore()

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      httpapi.NewRouter(sessions, engine, client, cfg.RequestTimeout),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("storefront starting on :%s (marketplace %s)", cfg.HTTPPort, cfg.MarketplaceURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
