package config

import (
	"context"
	"log"
	"os"

	"fitcal-backend/services"
	"fitcal-backend/store"

	"github.com/joho/godotenv"
)

// Load reads .env if present. Missing files are fine in deployed
// environments where the variables come from the process environment.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, using process environment")
	}
}

// NewStore builds the document store from the environment. Without a
// MONGO_URI the in-memory store is used, which only makes sense for local
// development.
//
// Operational note: the Day-by-date find-or-create can race under concurrent
// first writes; a unique index on Day.date is the deployment-side guard.
func NewStore(ctx context.Context) (store.Store, error) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Println("MONGO_URI not set, using in-memory store (data is not persisted)")
		return store.NewMemory(), nil
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "fitcal"
	}
	return store.NewMongo(ctx, uri, dbName)
}

// NewGenerator builds the text-generation client from GOOGLE_API_KEY.
func NewGenerator() services.TextGenerator {
	return services.NewGeminiClient(os.Getenv("GOOGLE_API_KEY"))
}

// Port returns the listen address, defaulting to :8080.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return ":" + p
	}
	return ":8080"
}
