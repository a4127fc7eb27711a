package entities

type Delivery struct {
	ID              uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	DonationID      uint     `json:"donationId"`
	ClaimID         uint     `json:"claimId"`
	DriverID        uint     `json:"driverId"`
	TrackingCode    string   `gorm:"uniqueIndex" json:"trackingCode"`
	PickupAddress   string   `json:"pickupAddress"`
	DeliveryAddress string   `json:"deliveryAddress"`
	PickupTime      *string  `json:"pickupTime"`
	DeliveryTime    *string  `json:"deliveryTime"`
	DistanceKm      *float64 `json:"distanceKm"`
	Status          string   `gorm:"default:pickup_pending" json:"status"` // pickup_pending, in_transit, completed, cancelled

	Donation *Donation `gorm:"foreignKey:DonationID" json:"-"`
	Claim    *Claim    `gorm:"foreignKey:ClaimID" json:"-"`
	Driver   *User     `gorm:"foreignKey:DriverID" json:"-"`
	Timestamp
}
