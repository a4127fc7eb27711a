package domain

var (
	MessageDeliveryDeleted = "Delivery deleted successfully"

	ErrDeliveryNotFound = NotFound("DELIVERY_NOT_FOUND", "Delivery not found")
)

type (
	CreateDeliveryRequest struct {
		DonationID      any     `json:"donationId" validate:"required"`
		ClaimID         any     `json:"claimId" validate:"required"`
		DriverID        any     `json:"driverId" validate:"required"`
		PickupAddress   *string `json:"pickupAddress" validate:"required"`
		DeliveryAddress *string `json:"deliveryAddress" validate:"required"`
		PickupTime      *string `json:"pickupTime"`
		DeliveryTime    *string `json:"deliveryTime"`
		DistanceKm      any     `json:"distanceKm"`
	}

	DeliveryListQuery struct {
		Status     string
		DriverID   int
		DonationID int
		ClaimID    int
		Limit      int
		Offset     int
	}
)

func (r *CreateDeliveryRequest) Normalize() {
	r.PickupAddress = trimPtr(r.PickupAddress)
	r.DeliveryAddress = trimPtr(r.DeliveryAddress)
	r.PickupTime = trimPtr(r.PickupTime)
	r.DeliveryTime = trimPtr(r.DeliveryTime)
}
