package partnership

import (
	"context"
	"testing"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePartnershipRepository struct {
	nextID       uint
	partnerships []*entities.Partnership
}

func (f *fakePartnershipRepository) CreatePartnership(_ context.Context, p *entities.Partnership) error {
	f.nextID++
	p.ID = f.nextID
	copied := *p
	f.partnerships = append(f.partnerships, &copied)
	return nil
}

func (f *fakePartnershipRepository) ListPartnerships(_ context.Context, q domain.PartnershipListQuery) ([]*entities.Partnership, error) {
	var out []*entities.Partnership
	for _, p := range f.partnerships {
		if q.Status != "" && p.Status != q.Status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func strPtr(s string) *string { return &s }

func validPartnershipRequest() domain.CreatePartnershipRequest {
	return domain.CreatePartnershipRequest{
		OrganizationName: strPtr("City Food Bank"),
		ContactName:      strPtr("Dana Reyes"),
		Email:            strPtr("Dana@FoodBank.org"),
		City:             strPtr("Springfield"),
		PartnershipType:  strPtr("distribution"),
	}
}

func TestCreatePartnership(t *testing.T) {
	ctx := context.Background()

	t.Run("lowercases email and defaults pending", func(t *testing.T) {
		svc := NewPartnershipService(&fakePartnershipRepository{})
		created, err := svc.CreatePartnership(ctx, validPartnershipRequest())
		require.NoError(t, err)
		assert.Equal(t, "dana@foodbank.org", created.Email)
		assert.Equal(t, "pending", created.Status)
	})

	t.Run("missing fields report their own code", func(t *testing.T) {
		svc := NewPartnershipService(&fakePartnershipRepository{})
		cases := []struct {
			mutate func(*domain.CreatePartnershipRequest)
			code   string
		}{
			{func(r *domain.CreatePartnershipRequest) { r.OrganizationName = nil }, "MISSING_ORGANIZATION_NAME"},
			{func(r *domain.CreatePartnershipRequest) { r.ContactName = strPtr("   ") }, "MISSING_CONTACT_NAME"},
			{func(r *domain.CreatePartnershipRequest) { r.Email = nil }, "MISSING_EMAIL"},
			{func(r *domain.CreatePartnershipRequest) { r.City = nil }, "MISSING_CITY"},
			{func(r *domain.CreatePartnershipRequest) { r.PartnershipType = nil }, "MISSING_PARTNERSHIP_TYPE"},
		}
		for _, tc := range cases {
			req := validPartnershipRequest()
			tc.mutate(&req)
			_, err := svc.CreatePartnership(ctx, req)
			var reqErr *domain.RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, tc.code, reqErr.Code)
		}
	})

	t.Run("bad email", func(t *testing.T) {
		svc := NewPartnershipService(&fakePartnershipRepository{})
		for _, email := range []string{"plainaddress", "a b@x.org", "no@tld", "@missing.org"} {
			req := validPartnershipRequest()
			req.Email = strPtr(email)
			_, err := svc.CreatePartnership(ctx, req)
			var reqErr *domain.RequestError
			require.ErrorAs(t, err, &reqErr, email)
			assert.Equal(t, "INVALID_EMAIL_FORMAT", reqErr.Code, email)
		}
	})
}

func TestListPartnershipsStatusFilter(t *testing.T) {
	ctx := context.Background()
	repo := &fakePartnershipRepository{}
	svc := NewPartnershipService(repo)

	_, err := svc.CreatePartnership(ctx, validPartnershipRequest())
	require.NoError(t, err)
	repo.partnerships[0].Status = "approved"

	req := validPartnershipRequest()
	req.Email = strPtr("second@foodbank.org")
	_, err = svc.CreatePartnership(ctx, req)
	require.NoError(t, err)

	list, err := svc.ListPartnerships(ctx, domain.PartnershipListQuery{Status: "approved"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = svc.ListPartnerships(ctx, domain.PartnershipListQuery{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
