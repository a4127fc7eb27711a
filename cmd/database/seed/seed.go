package seed

import (
	"context"
	"fmt"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"
	"SmartServe-Backend/pkg/user"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// Seed installs the demo accounts and their dashboard stats rows. It is a
// no-op when users already exist.
func Seed(db *gorm.DB) error {
	count, err := user.NewUserRepository(db).CountUsers(context.Background())
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []*entities.User{
		{
			Name:         "Green Plate Kitchen",
			Email:        "donor@smartserve.local",
			Password:     string(hash),
			Role:         domain.RoleDonor,
			Organization: strPtr("Green Plate Kitchen"),
			Location:     strPtr("Central District"),
		},
		{
			Name:         "Hope Shelter",
			Email:        "shelter@smartserve.local",
			Password:     string(hash),
			Role:         domain.RoleShelter,
			Organization: strPtr("Hope Shelter"),
			Location:     strPtr("East District"),
		},
		{
			Name:         "Swift Logistics",
			Email:        "driver@smartserve.local",
			Password:     string(hash),
			Role:         domain.RoleLogistics,
			Organization: strPtr("Swift Logistics"),
		},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	donor, shelter, driver := users[0], users[1], users[2]
	if err := db.Create(&entities.DonorStats{
		UserID:          donor.ID,
		TotalDonations:  24,
		MealsProvided:   310,
		ActiveDonations: 2,
		SuccessRate:     96.5,
	}).Error; err != nil {
		return err
	}
	if err := db.Create(&entities.RecipientStats{
		UserID:        shelter.ID,
		TotalReceived: 18,
		PeopleFed:     240,
		ActiveClaims:  1,
		NewAlerts:     3,
	}).Error; err != nil {
		return err
	}
	if err := db.Create(&entities.LogisticsStats{
		UserID:                 driver.ID,
		ActiveJobs:             2,
		TotalDeliveries:        41,
		SuccessRate:            98.1,
		AvgDeliveryTimeMinutes: 34,
	}).Error; err != nil {
		return err
	}

	fmt.Println("Database seed complete")
	return nil
}
