package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantWithPizzas is a restaurant together with its priced pizzas.
// Each association has its Pizza loaded; its Restaurant is left empty.
type RestaurantWithPizzas struct {
	models.Restaurant
	RestaurantPizzas []models.RestaurantPizza
}

// NestedPizzaInput references an existing pizza by ID, or describes one to create
type NestedPizzaInput struct {
	ID          *int   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// NestedRestaurantPizzaInput is one priced pizza to attach to a new restaurant
type NestedRestaurantPizzaInput struct {
	Price *int              `json:"price"`
	Pizza *NestedPizzaInput `json:"pizza"`
}

// CreateRestaurantInput is the payload for creating a restaurant with its pizzas
type CreateRestaurantInput struct {
	Name             string                       `json:"name"`
	Address          string                       `json:"address"`
	RestaurantPizzas []NestedRestaurantPizzaInput `json:"restaurant_pizzas"`
}

// RestaurantService provides methods to interact with the restaurant database
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants without their pizzas
	GetAllRestaurants() ([]models.Restaurant, error)
	// GetRestaurantWithPizzas retrieves a restaurant and its associations, each with its pizza
	GetRestaurantWithPizzas(id int) (RestaurantWithPizzas, error)
	// DeleteRestaurantCascade deletes a restaurant and all of its associations atomically
	DeleteRestaurantCascade(id int) error
	// CreateRestaurant creates a restaurant, any new pizzas and all associations in one transaction
	CreateRestaurant(input CreateRestaurantInput) (RestaurantWithPizzas, error)
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	restaurants := []models.Restaurant{}
	if err := s.db.Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantWithPizzas(id int) (RestaurantWithPizzas, error) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, id).Error; err != nil {
		return RestaurantWithPizzas{}, notFound(err, ErrRestaurantNotFound)
	}

	restaurantPizzas := []models.RestaurantPizza{}
	if err := s.db.Preload("Pizza").Where("restaurant_id = ?", id).Order("id").Find(&restaurantPizzas).Error; err != nil {
		return RestaurantWithPizzas{}, err
	}

	return RestaurantWithPizzas{Restaurant: restaurant, RestaurantPizzas: restaurantPizzas}, nil
}

func (s *restaurantService) DeleteRestaurantCascade(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, id).Error; err != nil {
			return notFound(err, ErrRestaurantNotFound)
		}

		result := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{})
		if result.Error != nil {
			return result.Error
		}
		if err := tx.Delete(&restaurant).Error; err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"restaurant_id":             id,
			"deleted_restaurant_pizzas": result.RowsAffected,
		}).Info("Restaurant deleted")
		return nil
	})
}

func (s *restaurantService) CreateRestaurant(input CreateRestaurantInput) (RestaurantWithPizzas, error) {
	if err := validateCreateRestaurant(input); err != nil {
		return RestaurantWithPizzas{}, err
	}

	created := RestaurantWithPizzas{
		Restaurant: models.Restaurant{
			Name:    strings.TrimSpace(input.Name),
			Address: strings.TrimSpace(input.Address),
		},
		RestaurantPizzas: []models.RestaurantPizza{},
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&created.Restaurant).Error; err != nil {
			return err
		}

		for i, item := range input.RestaurantPizzas {
			pizza, err := resolvePizza(tx, i, *item.Pizza)
			if err != nil {
				return err
			}
			if err := models.ValidatePrice(*item.Price); err != nil {
				return err
			}

			restaurantPizza := models.RestaurantPizza{
				Price:        *item.Price,
				RestaurantID: created.ID,
				PizzaID:      pizza.ID,
			}
			if err := tx.Omit(clause.Associations).Create(&restaurantPizza).Error; err != nil {
				return err
			}
			restaurantPizza.Pizza = pizza
			created.RestaurantPizzas = append(created.RestaurantPizzas, restaurantPizza)
		}
		return nil
	})
	if err != nil {
		return RestaurantWithPizzas{}, translateWriteError("create restaurant", err)
	}

	log.WithFields(log.Fields{
		"restaurant_id":     created.ID,
		"restaurant_pizzas": len(created.RestaurantPizzas),
	}).Info("Restaurant created")
	return created, nil
}

// resolvePizza returns the pizza referenced by ID when it exists, otherwise
// creates one from the supplied name and ingredients
func resolvePizza(tx *gorm.DB, index int, input NestedPizzaInput) (models.Pizza, error) {
	if input.ID != nil {
		var existing models.Pizza
		err := tx.First(&existing, *input.ID).Error
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Pizza{}, err
		}
	}

	pizza := models.Pizza{
		Name:        strings.TrimSpace(input.Name),
		Ingredients: strings.TrimSpace(input.Ingredients),
	}
	if err := validatePizza(pizza); err != nil {
		msg := fmt.Sprintf("restaurant_pizzas[%d]: pizza name and ingredients are required", index)
		if input.ID != nil {
			msg = fmt.Sprintf("restaurant_pizzas[%d]: pizza %d not found and no name and ingredients were given", index, *input.ID)
		}
		return models.Pizza{}, models.NewValidationError(msg)
	}
	if err := tx.Create(&pizza).Error; err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}

// validateCreateRestaurant checks everything that can be checked without the database.
// The first failure wins.
func validateCreateRestaurant(input CreateRestaurantInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Address) == "" {
		return models.NewValidationError("'name' and 'address' are required")
	}

	for i, item := range input.RestaurantPizzas {
		if item.Price == nil {
			return models.NewValidationError(fmt.Sprintf("restaurant_pizzas[%d]: price is required", i))
		}
		if err := models.ValidatePrice(*item.Price); err != nil {
			return models.NewValidationError(fmt.Sprintf("restaurant_pizzas[%d]: price must be between %d and %d",
				i, models.MinPrice, models.MaxPrice))
		}
		if item.Pizza == nil {
			return models.NewValidationError(fmt.Sprintf("restaurant_pizzas[%d]: pizza is required", i))
		}
		if item.Pizza.ID == nil {
			p := models.Pizza{Name: item.Pizza.Name, Ingredients: item.Pizza.Ingredients}
			if err := validatePizza(p); err != nil {
				return models.NewValidationError(fmt.Sprintf("restaurant_pizzas[%d]: pizza name and ingredients are required", i))
			}
		}
	}
	return nil
}
