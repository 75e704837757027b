package services

import (
	"errors"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.OpenSQLite("")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func intPtr(v int) *int {
	return &v
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func seedRestaurantAndPizza(t *testing.T, db *gorm.DB) (models.Restaurant, models.Pizza) {
	restaurant := models.Restaurant{Name: "Karen's Pizza Shack", Address: "address1"}
	pizza := models.Pizza{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"}
	require.NoError(t, db.Create(&restaurant).Error)
	require.NoError(t, db.Create(&pizza).Error)
	return restaurant, pizza
}

func requireValidationError(t *testing.T, err error) *models.ValidationError {
	var validationErr *models.ValidationError
	require.True(t, errors.As(err, &validationErr), "expected validation error, got %v", err)
	require.NotEmpty(t, validationErr.Messages)
	return validationErr
}

func TestPizzaService(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)

	pizzas, err := service.GetAllPizzas()
	require.NoError(t, err)
	assert.Empty(t, pizzas)
	assert.NotNil(t, pizzas)

	created, err := service.CreatePizza(models.Pizza{Name: "Geri", Ingredients: "Dough, Pepperoni"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := service.GetPizzaByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = service.GetPizzaByID(999)
	assert.ErrorIs(t, err, ErrPizzaNotFound)

	_, err = service.CreatePizza(models.Pizza{Name: "  ", Ingredients: "Dough"})
	requireValidationError(t, err)
}

func TestDeletePizzaCascades(t *testing.T) {
	db := setupTestDB(t)
	restaurant, pizza := seedRestaurantAndPizza(t, db)
	require.NoError(t, db.Omit(clause.Associations).Create(&models.RestaurantPizza{
		Price: 5, RestaurantID: restaurant.ID, PizzaID: pizza.ID,
	}).Error)

	service := NewPizzaService(db)
	require.NoError(t, service.DeletePizza(pizza.ID))
	assert.Equal(t, int64(0), count(t, db, &models.RestaurantPizza{}))
	assert.Equal(t, int64(0), count(t, db, &models.Pizza{}))
	assert.Equal(t, int64(1), count(t, db, &models.Restaurant{}))

	assert.ErrorIs(t, service.DeletePizza(pizza.ID), ErrPizzaNotFound)
}

func TestGetRestaurantWithPizzas(t *testing.T) {
	db := setupTestDB(t)
	restaurant, pizza := seedRestaurantAndPizza(t, db)
	require.NoError(t, db.Omit(clause.Associations).Create(&models.RestaurantPizza{
		Price: 12, RestaurantID: restaurant.ID, PizzaID: pizza.ID,
	}).Error)

	service := NewRestaurantService(db)

	all, err := service.GetAllRestaurants()
	require.NoError(t, err)
	assert.Equal(t, []models.Restaurant{restaurant}, all)

	got, err := service.GetRestaurantWithPizzas(restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, restaurant, got.Restaurant)
	require.Len(t, got.RestaurantPizzas, 1)
	assert.Equal(t, 12, got.RestaurantPizzas[0].Price)
	assert.Equal(t, pizza, got.RestaurantPizzas[0].Pizza)

	_, err = service.GetRestaurantWithPizzas(999)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestDeleteRestaurantCascade(t *testing.T) {
	db := setupTestDB(t)
	restaurant, pizza := seedRestaurantAndPizza(t, db)
	other := models.Restaurant{Name: "Sanjay's Pizza", Address: "address2"}
	require.NoError(t, db.Create(&other).Error)
	for _, rp := range []models.RestaurantPizza{
		{Price: 1, RestaurantID: restaurant.ID, PizzaID: pizza.ID},
		{Price: 2, RestaurantID: restaurant.ID, PizzaID: pizza.ID},
		{Price: 3, RestaurantID: other.ID, PizzaID: pizza.ID},
	} {
		require.NoError(t, db.Omit(clause.Associations).Create(&rp).Error)
	}

	service := NewRestaurantService(db)
	require.NoError(t, service.DeleteRestaurantCascade(restaurant.ID))

	var remaining int64
	db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", restaurant.ID).Count(&remaining)
	assert.Equal(t, int64(0), remaining)
	assert.Equal(t, int64(1), count(t, db, &models.RestaurantPizza{}))
	assert.Equal(t, int64(1), count(t, db, &models.Pizza{}))

	_, err := service.GetRestaurantWithPizzas(restaurant.ID)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
	assert.ErrorIs(t, service.DeleteRestaurantCascade(restaurant.ID), ErrRestaurantNotFound)
}

func TestCreateRestaurantPizza(t *testing.T) {
	db := setupTestDB(t)
	restaurant, pizza := seedRestaurantAndPizza(t, db)
	service := NewRestaurantPizzaService(db)

	t.Run("valid association", func(t *testing.T) {
		rp, err := service.CreateRestaurantPizza(CreateRestaurantPizzaInput{
			Price: intPtr(15), PizzaID: intPtr(pizza.ID), RestaurantID: intPtr(restaurant.ID),
		})
		require.NoError(t, err)
		assert.NotZero(t, rp.ID)
		assert.Equal(t, 15, rp.Price)
		assert.Equal(t, pizza, rp.Pizza)
		assert.Equal(t, restaurant, rp.Restaurant)
	})

	testCases := []struct {
		name     string
		input    CreateRestaurantPizzaInput
		messages []string
	}{
		{
			name:     "missing price",
			input:    CreateRestaurantPizzaInput{PizzaID: intPtr(pizza.ID), RestaurantID: intPtr(restaurant.ID)},
			messages: []string{"price, pizza_id and restaurant_id are required"},
		},
		{
			name:     "missing restaurant",
			input:    CreateRestaurantPizzaInput{Price: intPtr(5), PizzaID: intPtr(pizza.ID)},
			messages: []string{"price, pizza_id and restaurant_id are required"},
		},
		{
			name:     "price too low",
			input:    CreateRestaurantPizzaInput{Price: intPtr(0), PizzaID: intPtr(pizza.ID), RestaurantID: intPtr(restaurant.ID)},
			messages: []string{"price must be between 1 and 30"},
		},
		{
			name:     "price too high",
			input:    CreateRestaurantPizzaInput{Price: intPtr(31), PizzaID: intPtr(pizza.ID), RestaurantID: intPtr(restaurant.ID)},
			messages: []string{"price must be between 1 and 30"},
		},
		{
			name:     "unknown pizza",
			input:    CreateRestaurantPizzaInput{Price: intPtr(5), PizzaID: intPtr(999), RestaurantID: intPtr(restaurant.ID)},
			messages: []string{"pizza not found"},
		},
		{
			name:     "unknown pizza and restaurant",
			input:    CreateRestaurantPizzaInput{Price: intPtr(5), PizzaID: intPtr(999), RestaurantID: intPtr(998)},
			messages: []string{"pizza not found", "restaurant not found"},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			before := count(t, db, &models.RestaurantPizza{})
			_, err := service.CreateRestaurantPizza(tt.input)
			validationErr := requireValidationError(t, err)
			assert.Equal(t, tt.messages, validationErr.Messages)
			assert.Equal(t, before, count(t, db, &models.RestaurantPizza{}))
		})
	}
}

func TestCreateRestaurantWithNewPizza(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)

	created, err := service.CreateRestaurant(CreateRestaurantInput{
		Name:    "Dough Bros",
		Address: "1 Main St",
		RestaurantPizzas: []NestedRestaurantPizzaInput{
			{Price: intPtr(12), Pizza: &NestedPizzaInput{ID: intPtr(999), Name: "Bianca", Ingredients: "Dough, Ricotta"}},
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Dough Bros", created.Name)
	require.Len(t, created.RestaurantPizzas, 1)
	assert.Equal(t, 12, created.RestaurantPizzas[0].Price)
	assert.Equal(t, "Bianca", created.RestaurantPizzas[0].Pizza.Name)
	assert.NotZero(t, created.RestaurantPizzas[0].Pizza.ID)

	assert.Equal(t, int64(1), count(t, db, &models.Restaurant{}))
	assert.Equal(t, int64(1), count(t, db, &models.Pizza{}))
	assert.Equal(t, int64(1), count(t, db, &models.RestaurantPizza{}))

	stored, err := service.GetRestaurantWithPizzas(created.ID)
	require.NoError(t, err)
	require.Len(t, stored.RestaurantPizzas, 1)
	assert.Equal(t, created.RestaurantPizzas[0].Pizza, stored.RestaurantPizzas[0].Pizza)
}

func TestCreateRestaurantReusesExistingPizza(t *testing.T) {
	db := setupTestDB(t)
	_, pizza := seedRestaurantAndPizza(t, db)
	service := NewRestaurantService(db)

	created, err := service.CreateRestaurant(CreateRestaurantInput{
		Name:    "Kiki's Pizza",
		Address: "address3",
		RestaurantPizzas: []NestedRestaurantPizzaInput{
			{Price: intPtr(5), Pizza: &NestedPizzaInput{ID: intPtr(pizza.ID)}},
			{Price: intPtr(7), Pizza: &NestedPizzaInput{Name: "Melanie", Ingredients: "Dough, Sauce"}},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.RestaurantPizzas, 2)
	assert.Equal(t, pizza, created.RestaurantPizzas[0].Pizza)
	assert.Equal(t, "Melanie", created.RestaurantPizzas[1].Pizza.Name)
	assert.Equal(t, int64(2), count(t, db, &models.Pizza{}))
}

func TestCreateRestaurantWithoutPizzas(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)

	created, err := service.CreateRestaurant(CreateRestaurantInput{Name: "Plain", Address: "2 Side St"})
	require.NoError(t, err)
	assert.NotNil(t, created.RestaurantPizzas)
	assert.Empty(t, created.RestaurantPizzas)
}

func TestCreateRestaurantIsAllOrNothing(t *testing.T) {
	testCases := []struct {
		name  string
		input CreateRestaurantInput
	}{
		{
			name:  "missing address",
			input: CreateRestaurantInput{Name: "Dough Bros"},
		},
		{
			name: "price out of range",
			input: CreateRestaurantInput{
				Name: "Dough Bros", Address: "1 Main St",
				RestaurantPizzas: []NestedRestaurantPizzaInput{
					{Price: intPtr(50), Pizza: &NestedPizzaInput{ID: intPtr(999), Name: "Bianca", Ingredients: "Dough"}},
				},
			},
		},
		{
			name: "missing price on a later item",
			input: CreateRestaurantInput{
				Name: "Dough Bros", Address: "1 Main St",
				RestaurantPizzas: []NestedRestaurantPizzaInput{
					{Price: intPtr(10), Pizza: &NestedPizzaInput{Name: "Bianca", Ingredients: "Dough"}},
					{Pizza: &NestedPizzaInput{Name: "Rossa", Ingredients: "Tomato"}},
				},
			},
		},
		{
			name: "missing pizza",
			input: CreateRestaurantInput{
				Name: "Dough Bros", Address: "1 Main St",
				RestaurantPizzas: []NestedRestaurantPizzaInput{{Price: intPtr(10)}},
			},
		},
		{
			name: "unresolvable pizza after earlier items were written",
			input: CreateRestaurantInput{
				Name: "Dough Bros", Address: "1 Main St",
				RestaurantPizzas: []NestedRestaurantPizzaInput{
					{Price: intPtr(10), Pizza: &NestedPizzaInput{Name: "Bianca", Ingredients: "Dough"}},
					{Price: intPtr(11), Pizza: &NestedPizzaInput{ID: intPtr(999)}},
				},
			},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			service := NewRestaurantService(db)

			_, err := service.CreateRestaurant(tt.input)
			requireValidationError(t, err)

			assert.Equal(t, int64(0), count(t, db, &models.Restaurant{}))
			assert.Equal(t, int64(0), count(t, db, &models.Pizza{}))
			assert.Equal(t, int64(0), count(t, db, &models.RestaurantPizza{}))
		})
	}
}

func TestTranslateWriteError(t *testing.T) {
	validation := models.NewValidationError("price must be between 1 and 30")
	assert.Same(t, validation, translateWriteError("op", validation))

	err := translateWriteError("op", gorm.ErrForeignKeyViolated)
	assert.Equal(t, []string{models.GenericValidationMessage}, requireValidationError(t, err).Messages)

	err = translateWriteError("op", errors.New("CHECK constraint failed: chk_restaurant_pizzas_price"))
	requireValidationError(t, err)

	other := errors.New("disk I/O error")
	err = translateWriteError("op", other)
	assert.ErrorIs(t, err, other)
	var validationErr *models.ValidationError
	assert.False(t, errors.As(err, &validationErr))

	assert.NoError(t, translateWriteError("op", nil))
}
