// seed inserts a test user plus a handful of books and members into the
// local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/azamatdev/library-api/internal/domain"
	"github.com/azamatdev/library-api/internal/infrastructure/postgres"
	"github.com/azamatdev/library-api/internal/usecase"
)

const (
	seedUsername = "seed"
	seedPassword = "seed-password"
)

var books = []domain.Book{
	{Title: "The Go Programming Language", Author: "Donovan & Kernighan", Year: 2015},
	{Title: "Designing Data-Intensive Applications", Author: "Martin Kleppmann", Year: 2017},
	{Title: "The Pragmatic Programmer", Author: "Hunt & Thomas", Year: 1999},
	{Title: "Clean Code", Author: "Robert C. Martin", Year: 2008},
	{Title: "A Tour of C++", Author: "Bjarne Stroustrup", Year: 2013},
	{Title: "Database Internals", Author: "Alex Petrov", Year: 2019},
	{Title: "Site Reliability Engineering", Author: "Beyer et al.", Year: 2016},
}

var members = []domain.Member{
	{Name: "Alice Example", Email: "alice@example.com"},
	{Name: "Bob Example", Email: "bob@example.com"},
	{Name: "Carol Example", Email: "carol@example.com"},
}

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	tokenRepo := postgres.NewTokenRepository(pool)
	auth := usecase.NewAuthUsecase(userRepo, tokenRepo, 0)

	userID, err := auth.Register(ctx, seedUsername, seedPassword)
	if err != nil {
		log.Fatalf("seed user: %v", err)
	}
	fmt.Printf("user %q created (id %d)\n", seedUsername, userID)

	bookRepo := postgres.NewBookRepository(pool)
	for _, b := range books {
		if _, err := bookRepo.Create(ctx, &b); err != nil {
			log.Fatalf("seed book %q: %v", b.Title, err)
		}
	}
	fmt.Printf("%d books created\n", len(books))

	memberRepo := postgres.NewMemberRepository(pool)
	for _, m := range members {
		if _, err := memberRepo.Create(ctx, &m); err != nil {
			log.Fatalf("seed member %q: %v", m.Name, err)
		}
	}
	fmt.Printf("%d members created\n", len(members))

	token, err := auth.Login(ctx, seedUsername, seedPassword)
	if err != nil {
		log.Fatalf("seed login: %v", err)
	}
	fmt.Printf("token: %s\n", token)
}
