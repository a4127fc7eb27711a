package entities

type Donation struct {
	ID             uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	DonorID        uint     `json:"donorId"`
	FoodType       string   `json:"foodType"` // cooked, packaged, produce, bakery, dairy, other
	Title          string   `json:"title"`
	Quantity       int      `json:"quantity"`
	Unit           string   `json:"unit"` // kg, servings, items
	ExpiryDate     string   `json:"expiryDate"`
	PickupLocation string   `json:"pickupLocation"`
	Description    *string  `json:"description"`
	ImageURL       *string  `json:"imageUrl"`
	AICategory     *string  `gorm:"column:ai_category" json:"aiCategory"` // human, animal
	AIConfidence   *float64 `gorm:"column:ai_confidence" json:"aiConfidence"`
	Status         string   `gorm:"default:available" json:"status"` // available, claimed, in_transit, completed, cancelled
	IsRecurring    bool     `gorm:"default:false" json:"isRecurring"`
	Distance       *float64 `json:"distance"`

	Donor *User `gorm:"foreignKey:DonorID" json:"-"`
	Timestamp
}
