package entities

import (
	"time"
)

type Partnership struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrganizationName string    `json:"organizationName"`
	ContactName      string    `json:"contactName"`
	Email            string    `json:"email"`
	Phone            *string   `json:"phone"`
	City             string    `json:"city"`
	PartnershipType  string    `json:"partnershipType"`
	Message          *string   `json:"message"`
	Status           string    `gorm:"default:pending" json:"status"` // pending, approved, rejected
	CreatedAt        time.Time `json:"createdAt"`
}
