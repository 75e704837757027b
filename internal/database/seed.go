package database

import (
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedIfEmpty seeds the database when no pizzas exist yet.
// It reports whether seeding took place.
func SeedIfEmpty(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.Pizza{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}
	log.Info("Database is empty, seeding initial data")
	return true, Seed(db)
}

// Seed inserts sample restaurants, pizzas and their priced associations in one transaction
func Seed(db *gorm.DB) error {
	restaurants := []models.Restaurant{
		{Name: "Karen's Pizza Shack", Address: "address1"},
		{Name: "Sanjay's Pizza", Address: "address2"},
		{Name: "Kiki's Pizza", Address: "address3"},
	}
	pizzas := []models.Pizza{
		{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
		{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&restaurants).Error; err != nil {
			return err
		}
		if err := tx.Create(&pizzas).Error; err != nil {
			return err
		}

		associations := []models.RestaurantPizza{
			{Price: 1, RestaurantID: restaurants[0].ID, PizzaID: pizzas[0].ID},
			{Price: 4, RestaurantID: restaurants[1].ID, PizzaID: pizzas[1].ID},
			{Price: 5, RestaurantID: restaurants[2].ID, PizzaID: pizzas[2].ID},
		}
		for _, rp := range associations {
			if err := models.ValidatePrice(rp.Price); err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Create(&associations).Error
	})
	if err != nil {
		log.WithError(err).Error("Failed to seed database")
		return err
	}

	log.WithFields(logrus.Fields{
		"restaurants": len(restaurants),
		"pizzas":      len(pizzas),
	}).Info("Database seeded successfully")
	return nil
}
