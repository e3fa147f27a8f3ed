// Command main is the entry point for the pedidos de oracao API server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oracao/internal/cache"
	"oracao/internal/config"
	"oracao/internal/database"
	"oracao/internal/seed"
	"oracao/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	cache.InitRedis(cfg.RedisURL)

	// Development bootstrap: make sure a fresh database has an admin account
	// and a couple of example pedidos.
	if !cfg.IsProduction() {
		admin, err := seed.EnsureDefaultAdmin(db)
		if err != nil {
			log.Fatalf("Failed to bootstrap admin user: %v", err)
		}
		if err := seed.EnsureExamplePedidos(db, admin); err != nil {
			log.Fatalf("Failed to bootstrap example pedidos: %v", err)
		}
	}

	srv, err := server.NewServerWithDeps(cfg, db, cache.GetClient())
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Fatal(srv.Start())
}
