package utils

import (
	"testing"

	"SmartServe-Backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestErrorFromValidation(t *testing.T) {
	InitValidator()

	t.Run("required field uses json name", func(t *testing.T) {
		req := domain.CreateDonationRequest{}
		err := Validate.Struct(&req)
		require.Error(t, err)

		reqErr := RequestErrorFromValidation(err)
		assert.Equal(t, 400, reqErr.Status)
		assert.Equal(t, "MISSING_DONOR_ID", reqErr.Code)
		assert.Equal(t, "donorId is required", reqErr.Message)
	})

	t.Run("oneof lists options", func(t *testing.T) {
		foodType := "sushi"
		title := "Leftover trays"
		unit := "kg"
		expiry := "2026-09-10"
		location := "12 Main St"
		req := domain.CreateDonationRequest{
			DonorID:        1,
			FoodType:       &foodType,
			Title:          &title,
			Unit:           &unit,
			ExpiryDate:     &expiry,
			PickupLocation: &location,
		}
		err := Validate.Struct(&req)
		require.Error(t, err)

		reqErr := RequestErrorFromValidation(err)
		assert.Equal(t, "INVALID_FOOD_TYPE", reqErr.Code)
		assert.Equal(t, "foodType must be one of: cooked, packaged, produce, bakery, dairy, other", reqErr.Message)
	})

	t.Run("email tag", func(t *testing.T) {
		req := domain.LoginUserRequest{Email: "not-an-email", Password: "whatever"}
		err := Validate.Struct(&req)
		require.Error(t, err)

		reqErr := RequestErrorFromValidation(err)
		assert.Equal(t, "INVALID_EMAIL_FORMAT", reqErr.Code)
	})

	t.Run("non-validation error", func(t *testing.T) {
		reqErr := RequestErrorFromValidation(assert.AnError)
		assert.Equal(t, "INVALID_REQUEST_BODY", reqErr.Code)
	})
}
