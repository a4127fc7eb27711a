package domain

var (
	MessageDonationDeleted = "Donation deleted successfully"

	ErrDonationNotFound     = NotFound("DONATION_NOT_FOUND", "Donation not found")
	ErrDonationNotAvailable = BadRequest("DONATION_NOT_AVAILABLE", "Donation is no longer available")
	ErrInvalidQuantity      = BadRequest("INVALID_QUANTITY", "quantity must be a positive number")
)

var (
	DonationFoodTypes  = []string{"cooked", "packaged", "produce", "bakery", "dairy", "other"}
	DonationUnits      = []string{"kg", "servings", "items"}
	DonationSortFields = []string{"createdAt", "distance", "expiryDate"}
)

type (
	// Numeric fields are typed loosely and coerced in the service so the
	// API keeps accepting both `"donorId": 1` and `"donorId": "1"`.
	CreateDonationRequest struct {
		DonorID        any     `json:"donorId" validate:"required"`
		FoodType       *string `json:"foodType" validate:"required,oneof=cooked packaged produce bakery dairy other"`
		Title          *string `json:"title" validate:"required"`
		Quantity       any     `json:"quantity"`
		Unit           *string `json:"unit" validate:"required,oneof=kg servings items"`
		ExpiryDate     *string `json:"expiryDate" validate:"required"`
		PickupLocation *string `json:"pickupLocation" validate:"required"`
		Description    *string `json:"description"`
		ImageURL       *string `json:"imageUrl"`
		AICategory     *string `json:"aiCategory"`
		AIConfidence   any     `json:"aiConfidence"`
		IsRecurring    *bool   `json:"isRecurring"`
		Distance       any     `json:"distance"`
	}

	DonationListQuery struct {
		Search     string
		Status     string
		AICategory string
		FoodType   string
		Sort       string
		Order      string
		Limit      int
		Offset     int
	}
)

// Normalize trims every free-text field before validation; required
// fields that are empty after trimming read as absent.
func (r *CreateDonationRequest) Normalize() {
	r.FoodType = trimPtr(r.FoodType)
	r.Title = trimPtr(r.Title)
	r.Unit = trimPtr(r.Unit)
	r.ExpiryDate = trimPtr(r.ExpiryDate)
	r.PickupLocation = trimPtr(r.PickupLocation)
	r.Description = trimPtr(r.Description)
	r.ImageURL = trimPtr(r.ImageURL)
	r.AICategory = trimPtr(r.AICategory)
}
