package main

import (
	"fmt"
	"log"
	"time"

	"skybook/internal/flights"
	"skybook/internal/planes"
	"skybook/internal/shared/config"
	"skybook/internal/shared/database"
	"skybook/internal/users"

	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("Starting Skybook Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\nCleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("Database cleaned successfully")

	fmt.Println("\nSeeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("Database seeded successfully")

	fmt.Println("\nSeeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"payments",
		"credit_cards",
		"tickets",
		"flights",
		"planes",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds users, the fleet and a week of flights
func (s *Seeder) SeedAll() error {
	if err := s.SeedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	fleet, err := s.SeedPlanes()
	if err != nil {
		return fmt.Errorf("failed to seed planes: %w", err)
	}

	if err := s.SeedFlights(fleet); err != nil {
		return fmt.Errorf("failed to seed flights: %w", err)
	}

	return nil
}

func (s *Seeder) SeedUsers() error {
	hash := func(password string) string {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		return string(hashed)
	}

	seedUsers := []users.User{
		{
			FirstName: "Ava",
			LastName:  "Sterling",
			Email:     "admin@skybook.io",
			Password:  hash("admin123"),
			Role:      users.RoleAdmin,
			Enabled:   true,
		},
		{
			FirstName: "Noah",
			LastName:  "Harper",
			Email:     "noah@example.com",
			Password:  hash("password123"),
			Role:      users.RoleUser,
			Enabled:   true,
		},
		{
			FirstName: "Mia",
			LastName:  "Castellanos",
			Email:     "mia@example.com",
			Password:  hash("password123"),
			Role:      users.RoleUser,
			Enabled:   true,
		},
	}

	for i := range seedUsers {
		if err := s.db.PostgreSQL.Create(&seedUsers[i]).Error; err != nil {
			return err
		}
		fmt.Printf("  Created user: %s (%s)\n", seedUsers[i].Email, seedUsers[i].Role)
	}
	return nil
}

func (s *Seeder) SeedPlanes() ([]planes.Plane, error) {
	now := time.Now()
	fleet := []planes.Plane{
		{
			Name:             "SB-100 Meadowlark",
			Type:             "JET",
			NEconomySeats:    90,
			NBusinessSeats:   24,
			NFirstClassSeats: 8,
			LastMaintenance:  now.AddDate(0, -1, 0),
			NextMaintenance:  now.AddDate(0, 5, 0),
		},
		{
			Name:             "SB-200 Kestrel",
			Type:             "PROPELLER",
			NEconomySeats:    48,
			NBusinessSeats:   12,
			NFirstClassSeats: 0,
			LastMaintenance:  now.AddDate(0, -2, 0),
			NextMaintenance:  now.AddDate(0, 4, 0),
		},
		{
			Name:             "SB-300 Albatross",
			Type:             "WIDEBODY",
			NEconomySeats:    180,
			NBusinessSeats:   42,
			NFirstClassSeats: 12,
			LastMaintenance:  now.AddDate(0, 0, -20),
			NextMaintenance:  now.AddDate(0, 6, 0),
		},
	}

	for i := range fleet {
		if err := s.db.PostgreSQL.Create(&fleet[i]).Error; err != nil {
			return nil, err
		}
		fmt.Printf("  Created plane: %s (%d seats)\n", fleet[i].Name, fleet[i].TotalSeats())
	}
	return fleet, nil
}

type route struct {
	source, sourceCode string
	dest, destCode     string
	durationMinutes    int
}

func (s *Seeder) SeedFlights(fleet []planes.Plane) error {
	routeTable := []route{
		{"New York", "JFK", "London", "LHR", 430},
		{"London", "LHR", "New York", "JFK", 455},
		{"San Francisco", "SFO", "Tokyo", "HND", 650},
		{"Tokyo", "HND", "San Francisco", "SFO", 560},
		{"Paris", "CDG", "Dubai", "DXB", 400},
		{"Dubai", "DXB", "Paris", "CDG", 420},
	}

	// Each plane flies one out-and-back pair per day; the return leg
	// departs well after the outbound lands so schedules never overlap.
	base := time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour).Add(8 * time.Hour)
	count := 0
	for day := 0; day < 7; day++ {
		for i, rt := range routeTable {
			plane := fleet[(i/2)%len(fleet)]
			departure := base.AddDate(0, 0, day)
			if i%2 == 1 {
				departure = departure.Add(14 * time.Hour)
			}

			flight := flights.Flight{
				Name:            fmt.Sprintf("SB%d%02d", day+1, i+1),
				Source:          rt.source,
				SourceCode:      rt.sourceCode,
				Destination:     rt.dest,
				DestinationCode: rt.destCode,
				DepartureDate:   departure,
				DurationMinutes: rt.durationMinutes,
				PlaneID:         plane.ID,
			}
			if err := s.db.PostgreSQL.Create(&flight).Error; err != nil {
				return err
			}
			count++
		}
	}

	fmt.Printf("  Created %d flights over 7 days\n", count)
	return nil
}
