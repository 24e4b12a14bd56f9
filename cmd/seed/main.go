// Command main runs the database seeder for StreamEvents.
package main

import (
	"flag"
	"log"

	"github.com/Izanmg/streamevents/internal/config"
	"github.com/Izanmg/streamevents/internal/database"
	"github.com/Izanmg/streamevents/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 25, "Number of users to create")
	numEvents := flag.Int("events", 120, "Number of events to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	dryRun := flag.Bool("dry-run", false, "Log what would be created without writing")
	fast := flag.Bool("fast", false, "Skip bcrypt hashing for faster large runs")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d events, clean=%v\n", *numUsers, *numEvents, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = seed.Seed(database.DB, seed.Options{
		NumUsers:    *numUsers,
		NumEvents:   *numEvents,
		ShouldClean: *shouldClean && !*dryRun,
		Factory: seed.SeedOptions{
			DryRun:     *dryRun,
			SkipBcrypt: *fast,
		},
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with demo data.")
	log.Println("All demo users have the password: password123")
}
