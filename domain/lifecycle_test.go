package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDonationStatus(t *testing.T) {
	for _, status := range DonationStatuses {
		assert.Nil(t, ValidateDonationStatus(status), status)
	}

	err := ValidateDonationStatus("shipped")
	require.NotNil(t, err)
	assert.Equal(t, "INVALID_STATUS", err.Code)
	assert.Equal(t, "Status must be one of: available, claimed, in_transit, completed, cancelled", err.Message)
}

func TestValidateClaimStatusMessage(t *testing.T) {
	err := ValidateClaimStatus("done")
	require.NotNil(t, err)
	assert.Equal(t, "Status must be one of: pending, accepted, completed, cancelled", err.Message)
}

func TestDonationTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{DonationStatusAvailable, DonationStatusClaimed, true},
		{DonationStatusAvailable, DonationStatusCancelled, true},
		{DonationStatusAvailable, DonationStatusCompleted, false},
		{DonationStatusClaimed, DonationStatusInTransit, true},
		{DonationStatusClaimed, DonationStatusAvailable, false},
		{DonationStatusInTransit, DonationStatusCompleted, true},
		{DonationStatusCompleted, DonationStatusAvailable, false},
		{DonationStatusCancelled, DonationStatusClaimed, false},
	}
	for _, tc := range cases {
		err := ValidateDonationTransition(tc.from, tc.to)
		if tc.ok {
			assert.Nil(t, err, "%s -> %s", tc.from, tc.to)
		} else {
			require.NotNil(t, err, "%s -> %s", tc.from, tc.to)
			assert.Equal(t, "INVALID_STATUS_TRANSITION", err.Code)
			assert.Equal(t, "Cannot change status from "+tc.from+" to "+tc.to, err.Message)
		}
	}
}

func TestSameStatusTransitionIsNoOp(t *testing.T) {
	assert.Nil(t, ValidateDonationTransition(DonationStatusCompleted, DonationStatusCompleted))
	assert.Nil(t, ValidateClaimTransition(ClaimStatusCancelled, ClaimStatusCancelled))
	assert.Nil(t, ValidateDeliveryTransition(DeliveryStatusCompleted, DeliveryStatusCompleted))
}

func TestClaimTransitions(t *testing.T) {
	assert.Nil(t, ValidateClaimTransition(ClaimStatusPending, ClaimStatusAccepted))
	assert.Nil(t, ValidateClaimTransition(ClaimStatusAccepted, ClaimStatusCompleted))
	assert.NotNil(t, ValidateClaimTransition(ClaimStatusPending, ClaimStatusCompleted))
	assert.NotNil(t, ValidateClaimTransition(ClaimStatusCompleted, ClaimStatusPending))
}

func TestDeliveryTransitions(t *testing.T) {
	assert.Nil(t, ValidateDeliveryTransition(DeliveryStatusPickupPending, DeliveryStatusInTransit))
	assert.Nil(t, ValidateDeliveryTransition(DeliveryStatusInTransit, DeliveryStatusCancelled))
	assert.NotNil(t, ValidateDeliveryTransition(DeliveryStatusPickupPending, DeliveryStatusCompleted))
	assert.NotNil(t, ValidateDeliveryTransition(DeliveryStatusCancelled, DeliveryStatusInTransit))
}

func TestUpperSnake(t *testing.T) {
	assert.Equal(t, "DONOR_ID", UpperSnake("donorId"))
	assert.Equal(t, "IS_RECURRING", UpperSnake("isRecurring"))
	assert.Equal(t, "QUANTITY", UpperSnake("quantity"))
}

func TestMissingField(t *testing.T) {
	err := MissingField("pickupLocation")
	assert.Equal(t, 400, err.Status)
	assert.Equal(t, "MISSING_PICKUP_LOCATION", err.Code)
	assert.Equal(t, "pickupLocation is required", err.Message)
}
