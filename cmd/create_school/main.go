package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"weighroom-backend/auth"
	"weighroom-backend/database"
	"weighroom-backend/schools"
)

func main() {
	if os.Getenv("RENDER") == "" {
		_ = godotenv.Load()
	}

	var (
		name     = flag.String("name", "", "Display name of the school")
		code     = flag.String("code", "", "Login code")
		password = flag.String("password", "", "Initial password")
		migrate  = flag.Bool("migrate", true, "Apply pending migrations first")
	)
	flag.Parse()

	if strings.TrimSpace(*name) == "" || strings.TrimSpace(*code) == "" || *password == "" {
		log.Fatal("--name, --code and --password are required")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}
	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if *migrate {
		if err := database.MigratePostgres(db); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal(err)
	}

	created, err := schools.NewPostgresRepository(db).Create(context.Background(), schools.NewSchool{
		Name:         strings.TrimSpace(*name),
		Code:         strings.TrimSpace(*code),
		PasswordHash: hash,
	})
	if errors.Is(err, schools.ErrDuplicateCode) {
		log.Fatalf("a school with code %q already exists", *code)
	}
	if err != nil {
		log.Fatalf("create school: %v", err)
	}

	fmt.Printf("Created school %d (%s, code %s)\n", created.ID, created.Name, created.Code)
}
