package migration

import (
	"fmt"
	"log"

	"SmartServe-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	models := []interface{}{
		&entities.User{},
		&entities.Donation{},
		&entities.Claim{},
		&entities.Delivery{},
		&entities.SensorReading{},
		&entities.Notification{},
		&entities.Partnership{},
		&entities.DonorStats{},
		&entities.RecipientStats{},
		&entities.LogisticsStats{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating %T: %v", model, err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
