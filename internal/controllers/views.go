package controllers

import (
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
)

// The views below decide how far each payload nests. models.Restaurant and
// models.Pizza carry no associations, so an embedded parent can never re-embed
// restaurant_pizzas.

// RestaurantPizzaItem is an association as listed under its restaurant
type RestaurantPizzaItem struct {
	ID           int          `json:"id"`
	Price        int          `json:"price"`
	PizzaID      int          `json:"pizza_id"`
	RestaurantID int          `json:"restaurant_id"`
	Pizza        models.Pizza `json:"pizza"`
}

// RestaurantDetail is a restaurant with its associations
type RestaurantDetail struct {
	ID               int                   `json:"id"`
	Name             string                `json:"name"`
	Address          string                `json:"address"`
	RestaurantPizzas []RestaurantPizzaItem `json:"restaurant_pizzas"`
}

// RestaurantPizzaResponse is a newly created association with both parents
type RestaurantPizzaResponse struct {
	ID           int               `json:"id"`
	Price        int               `json:"price"`
	PizzaID      int               `json:"pizza_id"`
	RestaurantID int               `json:"restaurant_id"`
	Pizza        models.Pizza      `json:"pizza"`
	Restaurant   models.Restaurant `json:"restaurant"`
}

func newRestaurantDetail(r services.RestaurantWithPizzas) RestaurantDetail {
	items := make([]RestaurantPizzaItem, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		items = append(items, RestaurantPizzaItem{
			ID:           rp.ID,
			Price:        rp.Price,
			PizzaID:      rp.PizzaID,
			RestaurantID: rp.RestaurantID,
			Pizza:        rp.Pizza,
		})
	}
	return RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: items,
	}
}

func newRestaurantPizzaResponse(rp models.RestaurantPizza) RestaurantPizzaResponse {
	return RestaurantPizzaResponse{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Pizza:        rp.Pizza,
		Restaurant:   rp.Restaurant,
	}
}
