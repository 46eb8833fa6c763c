package googleads

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Ad group enum values used by this integration.
const (
	adGroupStatusEnabled = "ENABLED"
	adGroupStatusPaused  = "PAUSED"

	adGroupTypeSearchStandard = "SEARCH_STANDARD"
	adGroupTypeSearchDynamic  = "SEARCH_DYNAMIC_ADS"

	defaultCPCBidMicros = 10_000_000
)

// AdGroupConfig carries the settings for creating an ad group.
type AdGroupConfig struct {
	Name                string
	Type                string
	Status              string
	CPCBidMicros        int64
	TrackingURLTemplate string
}

// AdGroupManager creates ad groups under one campaign of one account.
type AdGroupManager struct {
	correlator *Correlator
	accountID  string
	campaignID string
}

// NewAdGroupManager builds a manager. campaignID may be empty for callers
// that never create; CreateAdGroup fails without it.
func NewAdGroupManager(svc MutateService, accountID, campaignID string) *AdGroupManager {
	return &AdGroupManager{
		correlator: NewCorrelator(svc),
		accountID:  accountID,
		campaignID: campaignID,
	}
}

// CreateAdGroup creates an ad group and returns its remote ID.
func (m *AdGroupManager) CreateAdGroup(ctx context.Context, cfg AdGroupConfig) (string, error) {
	if m.campaignID == "" {
		return "", ErrMissingCampaign
	}

	op := m.buildCreateOperation(cfg)
	result, err := m.correlator.Execute(ctx, m.accountID, []Operation{op}, []int64{0})
	if err != nil {
		return "", fmt.Errorf("create ad group %q: %w", cfg.Name, err)
	}
	return result[0].RemoteID, nil
}

func (m *AdGroupManager) buildCreateOperation(cfg AdGroupConfig) Operation {
	return NewCreate(KindAdGroup, AdGroup{
		Name:                cfg.Name,
		Status:              cfg.Status,
		Type:                cfg.Type,
		Campaign:            CampaignPath(m.accountID, m.campaignID),
		CPCBidMicros:        cfg.CPCBidMicros,
		TrackingURLTemplate: cfg.TrackingURLTemplate,
	})
}

// CreateStandardAdGroup creates an enabled standard search ad group named
// after the landing URL, with the default CPC bid.
func (m *AdGroupManager) CreateStandardAdGroup(ctx context.Context, url string) (string, error) {
	return m.CreateAdGroup(ctx, AdGroupConfig{
		Name:         fmt.Sprintf("Gl-%s-%s", url, uuid.New()),
		Type:         adGroupTypeSearchStandard,
		Status:       adGroupStatusEnabled,
		CPCBidMicros: defaultCPCBidMicros,
	})
}

// CreateDynamicAdGroup creates a paused dynamic search ad group.
func (m *AdGroupManager) CreateDynamicAdGroup(ctx context.Context) (string, error) {
	return m.CreateAdGroup(ctx, AdGroupConfig{
		Name:   fmt.Sprintf("Dynamic Ad Group #%s", uuid.New()),
		Type:   adGroupTypeSearchDynamic,
		Status: adGroupStatusPaused,
	})
}
