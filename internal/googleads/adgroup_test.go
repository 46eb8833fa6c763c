package googleads

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedMutateService plays back one response per call, in order.
type scriptedMutateService struct {
	responses []*MutateResponse
	errs      []error
	calls     []struct {
		kind ResourceKind
		ops  []Operation
	}
}

func (m *scriptedMutateService) Mutate(ctx context.Context, customerID string, kind ResourceKind, ops []Operation) (*MutateResponse, error) {
	i := len(m.calls)
	m.calls = append(m.calls, struct {
		kind ResourceKind
		ops  []Operation
	}{kind, ops})
	if i < len(m.errs) && m.errs[i] != nil {
		return nil, m.errs[i]
	}
	return m.responses[i], nil
}

func TestCreateAdGroup(t *testing.T) {
	t.Run("requires a campaign", func(t *testing.T) {
		m := NewAdGroupManager(&mockMutateService{}, "1", "")
		_, err := m.CreateAdGroup(context.Background(), AdGroupConfig{Name: "g"})
		assert.ErrorIs(t, err, ErrMissingCampaign)
	})

	t.Run("builds the wire payload", func(t *testing.T) {
		svc := &mockMutateService{resp: adGroupResponse(1)}
		m := NewAdGroupManager(svc, "1", "999")

		id, err := m.CreateAdGroup(context.Background(), AdGroupConfig{
			Name:         "My Group",
			Type:         "SEARCH_STANDARD",
			Status:       "ENABLED",
			CPCBidMicros: 5_000_000,
		})
		require.NoError(t, err)
		assert.Equal(t, "100", id)

		payload := svc.gotOps[0].Create.(AdGroup)
		assert.Equal(t, "My Group", payload.Name)
		assert.Equal(t, "customers/1/campaigns/999", payload.Campaign)
		assert.Equal(t, int64(5_000_000), payload.CPCBidMicros)
	})
}

func TestCreateStandardAdGroup(t *testing.T) {
	svc := &mockMutateService{resp: adGroupResponse(1)}
	m := NewAdGroupManager(svc, "1", "999")

	_, err := m.CreateStandardAdGroup(context.Background(), "https://example.com")
	require.NoError(t, err)

	payload := svc.gotOps[0].Create.(AdGroup)
	assert.True(t, strings.HasPrefix(payload.Name, "Gl-https://example.com-"))
	assert.Equal(t, "SEARCH_STANDARD", payload.Type)
	assert.Equal(t, "ENABLED", payload.Status)
	assert.Equal(t, int64(defaultCPCBidMicros), payload.CPCBidMicros)
}

func TestCreateDynamicAdGroup(t *testing.T) {
	svc := &mockMutateService{resp: adGroupResponse(1)}
	m := NewAdGroupManager(svc, "1", "999")

	_, err := m.CreateDynamicAdGroup(context.Background())
	require.NoError(t, err)

	payload := svc.gotOps[0].Create.(AdGroup)
	assert.True(t, strings.HasPrefix(payload.Name, "Dynamic Ad Group #"))
	assert.Equal(t, "SEARCH_DYNAMIC_ADS", payload.Type)
	assert.Equal(t, "PAUSED", payload.Status)
	assert.Zero(t, payload.CPCBidMicros)
}

func TestCreateDynamicSearchAd(t *testing.T) {
	t.Run("creates the group then the ad", func(t *testing.T) {
		svc := &scriptedMutateService{responses: []*MutateResponse{
			adGroupResponse(1),
			{Results: []MutateResult{{ResourceName: "customers/1/adGroupAds/100~7"}}},
		}}
		ai := NewAdIntegration(svc, "1", "999")

		groupID, err := ai.CreateDynamicSearchAd(context.Background(), "We sell shoes.", "Shoes Campaign")
		require.NoError(t, err)
		assert.Equal(t, "100", groupID)

		require.Len(t, svc.calls, 2)
		assert.Equal(t, KindAdGroup, svc.calls[0].kind)
		group := svc.calls[0].ops[0].Create.(AdGroup)
		assert.Equal(t, "Dynamic Search Ad Group for Shoes Campaign", group.Name)
		assert.Equal(t, "SEARCH_DYNAMIC_ADS", group.Type)
		assert.Equal(t, "ENABLED", group.Status)

		assert.Equal(t, KindAdGroupAd, svc.calls[1].kind)
		ad := svc.calls[1].ops[0].Create.(AdGroupAd)
		require.NotNil(t, ad.Ad.ExpandedDynamicSearchAd)
		assert.Equal(t, "We sell shoes.", ad.Ad.ExpandedDynamicSearchAd.Description)
		assert.Nil(t, ad.Ad.ResponsiveSearchAd)
	})

	t.Run("ad failure is recorded, group id still returned", func(t *testing.T) {
		svc := &scriptedMutateService{
			responses: []*MutateResponse{adGroupResponse(1), nil},
			errs:      []error{nil, &APIError{StatusCode: 400, Status: "INVALID_ARGUMENT"}},
		}
		ai := NewAdIntegration(svc, "1", "999")

		groupID, err := ai.CreateDynamicSearchAd(context.Background(), "desc", "Camp")
		require.NoError(t, err)
		assert.Equal(t, "100", groupID)
		require.Len(t, ai.Errors(), 1)
		assert.Equal(t, "100", ai.Errors()[0].RelatedID)
	})
}
