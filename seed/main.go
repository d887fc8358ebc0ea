package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/lac-hong-legacy/name_api/seed/seeders"
	"github.com/lac-hong-legacy/name_api/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, localizations, favorites")
		dbPath   = flag.String("db", "", "Database path (overrides DB_DATABASE env var)")
		userID   = flag.String("user", "demo-user", "User id that owns seeded favorites")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	databasePath := *dbPath
	if databasePath == "" {
		databasePath = os.Getenv("DB_DATABASE")
		if databasePath == "" {
			databasePath = "name_api.db"
		}
	}

	db := services.NewSqliteService(databasePath)
	if err := db.Open(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Shutdown()

	log.Printf("Connected to database: %s", databasePath)

	mainSeeder := seeders.NewMainSeeder(db, *userID)

	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		if err := mainSeeder.SeedAll(); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	case "localizations":
		log.Println("Seeding localizations only...")
		if _, err := mainSeeder.SeedLocalizationsOnly(); err != nil {
			log.Fatalf("Failed to seed localizations: %v", err)
		}
	case "favorites":
		log.Println("Seeding favorites for recent localizations...")
		if err := mainSeeder.SeedFavoritesOnly(); err != nil {
			log.Fatalf("Failed to seed favorites: %v", err)
		}
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all', 'localizations' or 'favorites'", *seedType)
	}

	log.Println("Seeding operation completed successfully!")
}

func showHelp() {
	log.Println(`
Database Seeding Tool for the Name Localization API

Usage: go run ./seed [flags]

Flags:
  -type string
        Type of seeding to perform (default "all")
        Options: all, localizations, favorites
  -db string
        Database path (overrides DB_DATABASE environment variable)
  -user string
        User id that owns seeded favorites (default "demo-user")
  -help
        Show this help message

Examples:
  # Seed everything
  go run ./seed

  # Seed only localizations into a custom database
  go run ./seed -type=localizations -db=./custom.db

Environment Variables:
  DB_DATABASE - Default database path (default: name_api.db)
`)
}
