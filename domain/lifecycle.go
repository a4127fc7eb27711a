package domain

import (
	"fmt"
	"strings"
)

const (
	DonationStatusAvailable = "available"
	DonationStatusClaimed   = "claimed"
	DonationStatusInTransit = "in_transit"
	DonationStatusCompleted = "completed"
	DonationStatusCancelled = "cancelled"

	ClaimStatusPending   = "pending"
	ClaimStatusAccepted  = "accepted"
	ClaimStatusCompleted = "completed"
	ClaimStatusCancelled = "cancelled"

	DeliveryStatusPickupPending = "pickup_pending"
	DeliveryStatusInTransit     = "in_transit"
	DeliveryStatusCompleted     = "completed"
	DeliveryStatusCancelled     = "cancelled"

	SensorStatusNormal   = "normal"
	SensorStatusWarning  = "warning"
	SensorStatusCritical = "critical"
)

var (
	DonationStatuses = []string{DonationStatusAvailable, DonationStatusClaimed, DonationStatusInTransit, DonationStatusCompleted, DonationStatusCancelled}
	ClaimStatuses    = []string{ClaimStatusPending, ClaimStatusAccepted, ClaimStatusCompleted, ClaimStatusCancelled}
	DeliveryStatuses = []string{DeliveryStatusPickupPending, DeliveryStatusInTransit, DeliveryStatusCompleted, DeliveryStatusCancelled}
	SensorStatuses   = []string{SensorStatusNormal, SensorStatusWarning, SensorStatusCritical}

	// Transition tables. A status may only move along these edges;
	// statuses with no entry are terminal. Re-asserting the current
	// value is always accepted as a no-op.
	donationTransitions = map[string][]string{
		DonationStatusAvailable: {DonationStatusClaimed, DonationStatusCancelled},
		DonationStatusClaimed:   {DonationStatusInTransit, DonationStatusCancelled},
		DonationStatusInTransit: {DonationStatusCompleted, DonationStatusCancelled},
	}
	claimTransitions = map[string][]string{
		ClaimStatusPending:  {ClaimStatusAccepted, ClaimStatusCancelled},
		ClaimStatusAccepted: {ClaimStatusCompleted, ClaimStatusCancelled},
	}
	deliveryTransitions = map[string][]string{
		DeliveryStatusPickupPending: {DeliveryStatusInTransit, DeliveryStatusCancelled},
		DeliveryStatusInTransit:     {DeliveryStatusCompleted, DeliveryStatusCancelled},
	}
)

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func validateStatus(statuses []string, target string) *RequestError {
	if !contains(statuses, target) {
		return BadRequest("INVALID_STATUS", "Status must be one of: "+strings.Join(statuses, ", "))
	}
	return nil
}

func validateTransition(table map[string][]string, current, target string) *RequestError {
	if current == target {
		return nil
	}
	if !contains(table[current], target) {
		return BadRequest("INVALID_STATUS_TRANSITION", fmt.Sprintf("Cannot change status from %s to %s", current, target))
	}
	return nil
}

func ValidateDonationStatus(target string) *RequestError {
	return validateStatus(DonationStatuses, target)
}

func ValidateDonationTransition(current, target string) *RequestError {
	return validateTransition(donationTransitions, current, target)
}

func ValidateClaimStatus(target string) *RequestError {
	return validateStatus(ClaimStatuses, target)
}

func ValidateClaimTransition(current, target string) *RequestError {
	return validateTransition(claimTransitions, current, target)
}

func ValidateDeliveryStatus(target string) *RequestError {
	return validateStatus(DeliveryStatuses, target)
}

func ValidateDeliveryTransition(current, target string) *RequestError {
	return validateTransition(deliveryTransitions, current, target)
}

func ValidateSensorStatus(target string) *RequestError {
	if !contains(SensorStatuses, target) {
		return BadRequest("INVALID_STATUS", "status must be one of: "+strings.Join(SensorStatuses, ", "))
	}
	return nil
}
