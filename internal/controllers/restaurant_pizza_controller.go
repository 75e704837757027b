package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests related to restaurant_pizzas
type RestaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) *RestaurantPizzaController {
	return &RestaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Add a pizza to a restaurant
// @Description Create a priced association between an existing restaurant and an existing pizza. Price must be between 1 and 30.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body services.CreateRestaurantPizzaInput true "Association"
// @Success 201 {object} controllers.RestaurantPizzaResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Router /restaurant_pizzas [post]
func (rpc *RestaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var input services.CreateRestaurantPizzaInput
	if !bindJSON(ctx, &input) {
		return
	}

	restaurantPizza, err := rpc.service.CreateRestaurantPizza(input)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newRestaurantPizzaResponse(restaurantPizza))
}
