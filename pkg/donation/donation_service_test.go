package donation

import (
	"context"
	"testing"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDonationRepository keeps donations in a map and mirrors the gated
// update the real repository performs.
type fakeDonationRepository struct {
	nextID    uint
	donations map[uint]*entities.Donation
}

func newFakeDonationRepository() *fakeDonationRepository {
	return &fakeDonationRepository{nextID: 1, donations: map[uint]*entities.Donation{}}
}

func (f *fakeDonationRepository) CreateDonation(_ context.Context, donation *entities.Donation) error {
	donation.ID = f.nextID
	f.nextID++
	copied := *donation
	f.donations[donation.ID] = &copied
	return nil
}

func (f *fakeDonationRepository) GetDonationByID(_ context.Context, id uint) (*entities.Donation, error) {
	donation, ok := f.donations[id]
	if !ok {
		return nil, domain.ErrDonationNotFound
	}
	copied := *donation
	return &copied, nil
}

func (f *fakeDonationRepository) ListDonations(_ context.Context, _ domain.DonationListQuery) ([]*entities.Donation, error) {
	var out []*entities.Donation
	for _, d := range f.donations {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDonationRepository) ListDonorDonations(_ context.Context, donorID uint, _ string, _, _ int) ([]*entities.Donation, error) {
	var out []*entities.Donation
	for _, d := range f.donations {
		if d.DonorID == donorID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDonationRepository) UpdateDonation(_ context.Context, id uint, updates map[string]interface{}, expectStatus *string) (int64, error) {
	donation, ok := f.donations[id]
	if !ok {
		return 0, nil
	}
	if expectStatus != nil && donation.Status != *expectStatus {
		return 0, nil
	}
	if v, ok := updates["status"]; ok {
		donation.Status = v.(string)
	}
	if v, ok := updates["quantity"]; ok {
		donation.Quantity = v.(int)
	}
	if v, ok := updates["title"]; ok {
		donation.Title = v.(string)
	}
	if v, ok := updates["description"]; ok {
		if v == nil {
			donation.Description = nil
		} else {
			s := v.(string)
			donation.Description = &s
		}
	}
	return 1, nil
}

func (f *fakeDonationRepository) DeleteDonation(_ context.Context, id uint) error {
	delete(f.donations, id)
	return nil
}

func strPtr(s string) *string { return &s }

func validCreateRequest() domain.CreateDonationRequest {
	return domain.CreateDonationRequest{
		DonorID:        1,
		FoodType:       strPtr("cooked"),
		Title:          strPtr("Leftover catering trays"),
		Quantity:       12,
		Unit:           strPtr("servings"),
		ExpiryDate:     strPtr("2026-09-03"),
		PickupLocation: strPtr("12 Main St"),
	}
}

func TestCreateDonation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeDonationRepository()
	svc := NewDonationService(repo, nil)

	t.Run("forces status available", func(t *testing.T) {
		created, err := svc.CreateDonation(ctx, validCreateRequest())
		require.NoError(t, err)
		assert.Equal(t, domain.DonationStatusAvailable, created.Status)
		assert.Equal(t, 12, created.Quantity)
		assert.NotZero(t, created.ID)
	})

	t.Run("accepts numeric strings", func(t *testing.T) {
		req := validCreateRequest()
		req.DonorID = "1"
		req.Quantity = "5"
		created, err := svc.CreateDonation(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, uint(1), created.DonorID)
		assert.Equal(t, 5, created.Quantity)
	})

	t.Run("missing quantity", func(t *testing.T) {
		req := validCreateRequest()
		req.Quantity = nil
		_, err := svc.CreateDonation(ctx, req)
		var reqErr *domain.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "MISSING_QUANTITY", reqErr.Code)
	})

	t.Run("zero quantity", func(t *testing.T) {
		req := validCreateRequest()
		req.Quantity = 0
		_, err := svc.CreateDonation(ctx, req)
		var reqErr *domain.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "INVALID_QUANTITY", reqErr.Code)
	})

	t.Run("negative quantity", func(t *testing.T) {
		req := validCreateRequest()
		req.Quantity = -3
		_, err := svc.CreateDonation(ctx, req)
		var reqErr *domain.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "INVALID_QUANTITY", reqErr.Code)
	})

	t.Run("bad donor id", func(t *testing.T) {
		req := validCreateRequest()
		req.DonorID = "abc"
		_, err := svc.CreateDonation(ctx, req)
		var reqErr *domain.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "INVALID_DONOR_ID", reqErr.Code)
	})
}

func TestUpdateDonationStatus(t *testing.T) {
	ctx := context.Background()
	repo := newFakeDonationRepository()
	svc := NewDonationService(repo, nil)

	created, err := svc.CreateDonation(ctx, validCreateRequest())
	require.NoError(t, err)

	t.Run("valid transition", func(t *testing.T) {
		updated, err := svc.UpdateDonation(ctx, created.ID, map[string]any{"status": "claimed"})
		require.NoError(t, err)
		assert.Equal(t, domain.DonationStatusClaimed, updated.Status)
	})

	t.Run("skipping a step is rejected", func(t *testing.T) {
		_, err := svc.UpdateDonation(ctx, created.ID, map[string]any{"status": "completed"})
		var reqErr *domain.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "INVALID_STATUS_TRANSITION", reqErr.Code)
		assert.Equal(t, "Cannot change status from claimed to completed", reqErr.Message)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := svc.UpdateDonation(ctx, created.ID, map[string]any{"status": "shipped"})
		var reqErr *domain.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "INVALID_STATUS", reqErr.Code)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		updated, err := svc.UpdateDonation(ctx, created.ID, map[string]any{"status": "claimed"})
		require.NoError(t, err)
		assert.Equal(t, domain.DonationStatusClaimed, updated.Status)
	})

	t.Run("terminal status is frozen", func(t *testing.T) {
		_, err := svc.UpdateDonation(ctx, created.ID, map[string]any{"status": "in_transit"})
		require.NoError(t, err)
		_, err = svc.UpdateDonation(ctx, created.ID, map[string]any{"status": "completed"})
		require.NoError(t, err)

		_, err = svc.UpdateDonation(ctx, created.ID, map[string]any{"status": "available"})
		var reqErr *domain.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "INVALID_STATUS_TRANSITION", reqErr.Code)
	})
}

func TestUpdateDonationFields(t *testing.T) {
	ctx := context.Background()
	repo := newFakeDonationRepository()
	svc := NewDonationService(repo, nil)

	created, err := svc.CreateDonation(ctx, validCreateRequest())
	require.NoError(t, err)

	t.Run("explicit null clears description", func(t *testing.T) {
		_, err := svc.UpdateDonation(ctx, created.ID, map[string]any{"description": "fresh today"})
		require.NoError(t, err)

		updated, err := svc.UpdateDonation(ctx, created.ID, map[string]any{"description": nil})
		require.NoError(t, err)
		assert.Nil(t, updated.Description)
	})

	t.Run("bad food type", func(t *testing.T) {
		_, err := svc.UpdateDonation(ctx, created.ID, map[string]any{"foodType": "sushi"})
		var reqErr *domain.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "INVALID_FOOD_TYPE", reqErr.Code)
	})

	t.Run("bad is recurring", func(t *testing.T) {
		_, err := svc.UpdateDonation(ctx, created.ID, map[string]any{"isRecurring": "yes"})
		var reqErr *domain.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "INVALID_IS_RECURRING", reqErr.Code)
	})

	t.Run("missing donation", func(t *testing.T) {
		_, err := svc.UpdateDonation(ctx, 999, map[string]any{"title": "x"})
		assert.ErrorIs(t, err, domain.ErrDonationNotFound)
	})
}

func TestDeleteDonationReturnsRow(t *testing.T) {
	ctx := context.Background()
	repo := newFakeDonationRepository()
	svc := NewDonationService(repo, nil)

	created, err := svc.CreateDonation(ctx, validCreateRequest())
	require.NoError(t, err)

	deleted, err := svc.DeleteDonation(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = svc.DeleteDonation(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrDonationNotFound)
}

func TestNormalizeTrimsFields(t *testing.T) {
	req := domain.CreateDonationRequest{
		FoodType:       strPtr("  cooked  "),
		Title:          strPtr(" Trays "),
		PickupLocation: strPtr("   "),
	}
	req.Normalize()
	assert.Equal(t, "cooked", *req.FoodType)
	assert.Equal(t, "Trays", *req.Title)
	assert.Nil(t, req.PickupLocation)
}
