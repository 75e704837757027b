package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) *RestaurantController {
	return &RestaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants without their pizzas
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.Restaurant
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (rc *RestaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := rc.service.GetAllRestaurants()
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, restaurants)
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a restaurant with its restaurant_pizzas, each with its pizza
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} controllers.RestaurantDetail
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (rc *RestaurantController) GetRestaurantByID(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, restaurantNotFoundMessage)
	if !ok {
		return
	}

	restaurant, err := rc.service.GetRestaurantWithPizzas(restaurantID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newRestaurantDetail(restaurant))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and all of its restaurant_pizzas
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (rc *RestaurantController) DeleteRestaurant(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, restaurantNotFoundMessage)
	if !ok {
		return
	}

	if err := rc.service.DeleteRestaurantCascade(restaurantID); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// CreateRestaurant godoc
// @Summary Create a restaurant
// @Description Create a restaurant with nested restaurant_pizzas. A nested pizza is reused when its id exists, otherwise it is created from name and ingredients. Either everything is stored or nothing is.
// @Tags restaurants
// @Accept json
// @Produce json
// @Param restaurant body services.CreateRestaurantInput true "Restaurant with nested restaurant_pizzas"
// @Success 201 {object} controllers.RestaurantDetail
// @Failure 400 {object} models.ValidationErrorResponse
// @Router /restaurants [post]
func (rc *RestaurantController) CreateRestaurant(ctx *gin.Context) {
	var input services.CreateRestaurantInput
	if !bindJSON(ctx, &input) {
		return
	}

	created, err := rc.service.CreateRestaurant(input)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newRestaurantDetail(created))
}
