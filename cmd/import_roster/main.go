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

	"weighroom-backend/database"
	"weighroom-backend/roster"
	"weighroom-backend/schools"
)

func main() {
	if os.Getenv("RENDER") == "" {
		_ = godotenv.Load()
	}

	var (
		csvPath = flag.String("csv", "", "Path to roster CSV (first_name,last_name[,weight_class][,sex])")
		code    = flag.String("school", "", "Login code of the school receiving the roster")
		dryRun  = flag.Bool("dry-run", false, "Parse and report without writing")
	)
	flag.Parse()

	if err := validateFlags(*csvPath, *code); err != nil {
		log.Fatal(err)
	}

	file, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("open csv file: %v", err)
	}
	defer file.Close()

	wrestlers, err := roster.ParseRosterCSV(file)
	if err != nil {
		log.Fatalf("parse csv: %v", err)
	}

	if *dryRun {
		for _, w := range wrestlers {
			fmt.Printf("%s %s (%d)\n", w.FirstName, w.LastName, w.WeightClass)
		}
		fmt.Printf("Parsed %d wrestlers, nothing written\n", len(wrestlers))
		return
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

	ctx := context.Background()
	school, err := schools.NewPostgresRepository(db).GetByCode(ctx, strings.TrimSpace(*code))
	if errors.Is(err, schools.ErrNotFound) {
		log.Fatalf("no school with code %q", *code)
	}
	if err != nil {
		log.Fatalf("look up school: %v", err)
	}

	n, err := roster.NewPostgresRepository(db).CreateMany(ctx, school.ID, wrestlers)
	if err != nil {
		log.Fatalf("import roster: %v", err)
	}

	fmt.Printf("Imported %d wrestlers into %s\n", n, school.Name)
}

func validateFlags(csvPath, code string) error {
	if strings.TrimSpace(csvPath) == "" {
		return fmt.Errorf("--csv is required")
	}
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("--school is required")
	}
	return nil
}
