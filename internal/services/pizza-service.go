package services

import (
	"strings"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza database
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas from the database
	GetAllPizzas() ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(id int) (models.Pizza, error)
	// CreatePizza creates a new pizza in the database
	CreatePizza(pizza models.Pizza) (models.Pizza, error)
	// DeletePizza deletes a pizza and every restaurant_pizzas row referencing it
	DeletePizza(id int) error
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas() ([]models.Pizza, error) {
	pizzas := []models.Pizza{}
	if err := s.db.Order("id").Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(id int) (models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.First(&pizza, id).Error; err != nil {
		return models.Pizza{}, notFound(err, ErrPizzaNotFound)
	}
	return pizza, nil
}

func (s *pizzaService) CreatePizza(pizza models.Pizza) (models.Pizza, error) {
	if err := validatePizza(pizza); err != nil {
		return models.Pizza{}, err
	}
	pizza.ID = 0
	if err := s.db.Create(&pizza).Error; err != nil {
		return models.Pizza{}, translateWriteError("create pizza", err)
	}
	return pizza, nil
}

func (s *pizzaService) DeletePizza(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var pizza models.Pizza
		if err := tx.First(&pizza, id).Error; err != nil {
			return notFound(err, ErrPizzaNotFound)
		}
		if err := tx.Where("pizza_id = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return err
		}
		return tx.Delete(&pizza).Error
	})
}

func validatePizza(pizza models.Pizza) error {
	if strings.TrimSpace(pizza.Name) == "" || strings.TrimSpace(pizza.Ingredients) == "" {
		return models.NewValidationError("pizza name and ingredients are required")
	}
	return nil
}
