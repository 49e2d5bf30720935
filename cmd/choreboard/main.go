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

	"github.com/rslocke/choreboard/internal/database"
	"github.com/rslocke/choreboard/internal/email"
	"github.com/rslocke/choreboard/internal/logging"
	"github.com/rslocke/choreboard/internal/server"
)

func main() {
	port := os.Getenv("CHOREBOARD_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("CHOREBOARD_DB_PATH")
	if dbPath == "" {
		dbPath = "choreboard.db"
	}

	logger := logging.Setup(os.Getenv("CHOREBOARD_LOG_LEVEL"), os.Getenv("CHOREBOARD_LOG_FORMAT"))

	postmarkToken := os.Getenv("CHOREBOARD_POSTMARK_TOKEN")
	if postmarkToken == "" {
		log.Fatal("CHOREBOARD_POSTMARK_TOKEN is required")
	}
	digestFrom := os.Getenv("CHOREBOARD_DIGEST_FROM")
	if digestFrom == "" {
		log.Fatal("CHOREBOARD_DIGEST_FROM is required")
	}

	db, err := database.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	emailClient := email.NewClient(postmarkToken, digestFrom)

	srv := server.New(db, emailClient, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv.Scheduler().Start(ctx)
	defer srv.Scheduler().Stop()

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				srv.RateLimiter().Cleanup()
			}
		}
	}()

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		fmt.Printf("Choreboard running at http://localhost:%s\n", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
