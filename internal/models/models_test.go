package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePrice(t *testing.T) {
	testCases := []struct {
		name    string
		price   int
		wantErr bool
	}{
		{name: "lower bound", price: 1},
		{name: "middle", price: 15},
		{name: "upper bound", price: 30},
		{name: "zero", price: 0, wantErr: true},
		{name: "negative", price: -1, wantErr: true},
		{name: "above upper bound", price: 31, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrice(tt.price)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, []string{"price must be between 1 and 30"}, validationErr.Messages)
		})
	}
}

func TestAllPricesInRangeAccepted(t *testing.T) {
	for p := MinPrice; p <= MaxPrice; p++ {
		assert.NoError(t, ValidatePrice(p), "price %d", p)
	}
}

func TestNewValidationErrorDefaultsToGenericMessage(t *testing.T) {
	err := NewValidationError()
	assert.Equal(t, []string{GenericValidationMessage}, err.Messages)
	assert.Equal(t, "validation failed: validation errors", err.Error())

	resp := NewValidationErrorResponse(NewValidationError("a", "b"))
	assert.Equal(t, []string{"a", "b"}, resp.Errors)
}
