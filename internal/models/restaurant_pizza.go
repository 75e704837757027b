package models

import "fmt"

// Bounds for RestaurantPizza.Price, inclusive
const (
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza is the priced association between a Restaurant and a Pizza.
// Both foreign keys cascade on delete so no association outlives its parents.
type RestaurantPizza struct {
	ID           int        `gorm:"primaryKey"`
	Price        int        `gorm:"not null;check:chk_restaurant_pizzas_price,price >= 1 AND price <= 30"`
	RestaurantID int        `gorm:"not null;index"`
	PizzaID      int        `gorm:"not null;index"`
	Restaurant   Restaurant `gorm:"constraint:OnDelete:CASCADE"`
	Pizza        Pizza      `gorm:"constraint:OnDelete:CASCADE"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// ValidatePrice checks that price is within [MinPrice, MaxPrice].
// Every write path that sets a price must call it before touching the database.
func ValidatePrice(price int) error {
	if price < MinPrice || price > MaxPrice {
		return NewValidationError(fmt.Sprintf("price must be between %d and %d", MinPrice, MaxPrice))
	}
	return nil
}
