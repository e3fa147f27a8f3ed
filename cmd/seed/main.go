// Command main runs the database seeder.
package main

import (
	"flag"
	"log"

	"oracao/internal/config"
	"oracao/internal/database"
	"oracao/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numPedidos := flag.Int("pedidos", 50, "Number of pedidos to create")
	shouldClean := flag.Bool("clean", false, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumPedidos:  *numPedidos,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("All done. Generated users share the password: %s", seed.TestPassword)
}
