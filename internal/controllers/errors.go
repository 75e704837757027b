package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	restaurantNotFoundMessage = "Restaurant not found"
	pizzaNotFoundMessage      = "Pizza not found"
)

// respondWithError maps service errors onto the API's error bodies
func respondWithError(ctx *gin.Context, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.Is(err, services.ErrRestaurantNotFound):
		ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: restaurantNotFoundMessage})
	case errors.Is(err, services.ErrPizzaNotFound):
		ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: pizzaNotFoundMessage})
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse(validationErr))
	default:
		log.WithError(err).WithField("path", ctx.FullPath()).Error("Request failed")
		ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
}

// bindJSON decodes the request body, answering 400 when it is malformed.
// It reports whether the handler should continue.
func bindJSON(ctx *gin.Context, target interface{}) bool {
	if err := ctx.ShouldBindJSON(target); err != nil {
		message := "invalid request body"
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			message = fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type)
		}
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse(models.NewValidationError(message)))
		return false
	}
	return true
}

// pathID parses the :id parameter. IDs that are not integers match no row,
// so they get the entity's not-found response.
func pathID(ctx *gin.Context, notFoundMessage string) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: notFoundMessage})
		return 0, false
	}
	return id, true
}
