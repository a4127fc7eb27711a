package entities

import (
	"time"
)

type Claim struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DonationID  uint      `json:"donationId"`
	RecipientID uint      `json:"recipientId"`
	Status      string    `gorm:"default:pending" json:"status"` // pending, accepted, completed, cancelled
	ClaimedAt   time.Time `json:"claimedAt"`

	Donation  *Donation `gorm:"foreignKey:DonationID" json:"-"`
	Recipient *User     `gorm:"foreignKey:RecipientID" json:"-"`
}
