package main

import (
	"log"
	"net/http"

	"geopost-api/config"
	"geopost-api/handlers"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Signing keys: current secret plus any retired ones still accepted.
	keys := config.NewStaticKeyProvider(cfg.Auth.Secret, cfg.Auth.PreviousSecrets...)

	router := handlers.NewRouter(db, cfg, keys)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
