package domain

type (
	CreateSensorReadingRequest struct {
		DeliveryID         any     `json:"deliveryId" validate:"required"`
		PhLevel            any     `json:"phLevel"`
		GasPpm             any     `json:"gasPpm"`
		TemperatureCelsius any     `json:"temperatureCelsius"`
		BioSafetyPercent   any     `json:"bioSafetyPercent"`
		Status             *string `json:"status" validate:"required,oneof=normal warning critical"`
	}

	SensorListQuery struct {
		DeliveryID int
		Limit      int
		Offset     int
	}
)

func (r *CreateSensorReadingRequest) Normalize() {
	r.Status = trimPtr(r.Status)
}
