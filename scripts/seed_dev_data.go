package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// Seeds a local SQLite database with sample restaurants and pizzas.
//
//	go run scripts/seed_dev_data.go -db app.db -reset
func main() {
	dbPath := flag.String("db", "app.db", "Path to the SQLite database")
	reset := flag.Bool("reset", false, "Drop all restaurant and pizza tables before seeding")
	flag.Parse()

	db, err := database.OpenSQLite(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if *reset {
		if err := db.Migrator().DropTable(&models.RestaurantPizza{}, &models.Restaurant{}, &models.Pizza{}); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		fmt.Println("Dropped existing tables")
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	seeded, err := database.SeedIfEmpty(db)
	if err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	if !seeded {
		fmt.Println("Database already has data; use -reset to start over")
		return
	}

	printSummary(db)
}

func printSummary(db *gorm.DB) {
	var restaurants, pizzas, links int64
	db.Model(&models.Restaurant{}).Count(&restaurants)
	db.Model(&models.Pizza{}).Count(&pizzas)
	db.Model(&models.RestaurantPizza{}).Count(&links)

	fmt.Println("✓ Seed data created")
	fmt.Printf("   Restaurants:       %d\n", restaurants)
	fmt.Printf("   Pizzas:            %d\n", pizzas)
	fmt.Printf("   Restaurant pizzas: %d\n", links)
}
