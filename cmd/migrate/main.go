// migrate applies schema.sql to the database pointed at by DATABASE_URL.
// Run: go run ./cmd/migrate [path/to/schema.sql]
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/azamatdev/library-api/internal/infrastructure/postgres"
)

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	schemaPath := "schema.sql"
	if len(os.Args) > 1 {
		schemaPath = os.Args[1]
	}

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		log.Fatalf("read schema: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatalf("apply schema: %v", err)
	}

	log.Printf("schema applied from %s", schemaPath)
}
