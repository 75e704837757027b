package services

import (
	"errors"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateRestaurantPizzaInput is the payload for attaching a priced pizza to a restaurant.
// Fields are pointers so that missing values can be told apart from zero.
type CreateRestaurantPizzaInput struct {
	Price        *int `json:"price"`
	PizzaID      *int `json:"pizza_id"`
	RestaurantID *int `json:"restaurant_id"`
}

// RestaurantPizzaService provides methods to manage restaurant_pizzas associations
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates and inserts one association, returning it
	// with both Restaurant and Pizza loaded
	CreateRestaurantPizza(input CreateRestaurantPizzaInput) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(input CreateRestaurantPizzaInput) (models.RestaurantPizza, error) {
	if input.Price == nil || input.PizzaID == nil || input.RestaurantID == nil {
		return models.RestaurantPizza{}, models.NewValidationError("price, pizza_id and restaurant_id are required")
	}
	if err := models.ValidatePrice(*input.Price); err != nil {
		return models.RestaurantPizza{}, err
	}

	restaurantPizza := models.RestaurantPizza{
		Price:        *input.Price,
		PizzaID:      *input.PizzaID,
		RestaurantID: *input.RestaurantID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var messages []string
		if err := tx.First(&restaurantPizza.Pizza, restaurantPizza.PizzaID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			messages = append(messages, "pizza not found")
		}
		if err := tx.First(&restaurantPizza.Restaurant, restaurantPizza.RestaurantID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			messages = append(messages, "restaurant not found")
		}
		if len(messages) > 0 {
			return models.NewValidationError(messages...)
		}

		return tx.Omit(clause.Associations).Create(&restaurantPizza).Error
	})
	if err != nil {
		return models.RestaurantPizza{}, translateWriteError("create restaurant pizza", err)
	}

	log.WithFields(log.Fields{
		"restaurant_pizza_id": restaurantPizza.ID,
		"restaurant_id":       restaurantPizza.RestaurantID,
		"pizza_id":            restaurantPizza.PizzaID,
		"price":               restaurantPizza.Price,
	}).Info("Restaurant pizza created")
	return restaurantPizza, nil
}
