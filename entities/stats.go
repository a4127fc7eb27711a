package entities

import (
	"time"
)

type DonorStats struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint      `json:"userId"`
	TotalDonations  int       `json:"totalDonations"`
	MealsProvided   int       `json:"mealsProvided"`
	ActiveDonations int       `json:"activeDonations"`
	SuccessRate     float64   `json:"successRate"`
	UpdatedAt       time.Time `json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

type RecipientStats struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint      `json:"userId"`
	TotalReceived int       `json:"totalReceived"`
	PeopleFed     int       `json:"peopleFed"`
	ActiveClaims  int       `json:"activeClaims"`
	NewAlerts     int       `json:"newAlerts"`
	UpdatedAt     time.Time `json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

type LogisticsStats struct {
	ID                     uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID                 uint      `json:"userId"`
	ActiveJobs             int       `json:"activeJobs"`
	TotalDeliveries        int       `json:"totalDeliveries"`
	SuccessRate            float64   `json:"successRate"`
	AvgDeliveryTimeMinutes int       `json:"avgDeliveryTimeMinutes"`
	UpdatedAt              time.Time `json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
