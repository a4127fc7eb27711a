package entities

import (
	"time"
)

type SensorReading struct {
	ID                 uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	DeliveryID         uint     `json:"deliveryId"`
	PhLevel            *float64 `gorm:"column:ph_level" json:"phLevel"`
	GasPpm             *float64 `json:"gasPpm"`
	TemperatureCelsius *float64 `json:"temperatureCelsius"`
	BioSafetyPercent   *float64 `json:"bioSafetyPercent"`
	Status             string   `json:"status"` // normal, warning, critical
	RecordedAt         time.Time `json:"recordedAt"`

	Delivery *Delivery `gorm:"foreignKey:DeliveryID" json:"-"`
}
