package googleads

import (
	"context"
	"errors"

	"adpilot/internal/logging"
)

const campaignAssetStatusEnabled = "ENABLED"

// AssetIntegration is the extension-asset facade for one campaign, covering
// sitelink, callout, structured snippet, call, and price assets. All remote
// failures from any kind land in this facade's single error list. Not safe
// for concurrent use.
type AssetIntegration struct {
	correlator *Correlator
	accountID  string
	campaignID string
	errs       []NormalizedError
}

// NewAssetIntegration builds the facade for one account/campaign pair.
func NewAssetIntegration(svc MutateService, accountID, campaignID string) *AssetIntegration {
	return &AssetIntegration{
		correlator: NewCorrelator(svc),
		accountID:  accountID,
		campaignID: campaignID,
	}
}

// Errors returns the accumulated normalized failures.
func (s *AssetIntegration) Errors() []NormalizedError { return s.errs }

// createAssets submits asset creates in one batch, recording any remote
// failure under the given class name.
func (s *AssetIntegration) createAssets(ctx context.Context, className string, ops []Operation, ids []int64) (BatchResult, error) {
	result, err := s.correlator.Execute(ctx, s.accountID, ops, ids)
	if err != nil {
		if s.recordError(err, className) {
			return nil, nil
		}
		return nil, err
	}
	if len(result) > 0 {
		logging.Mutate("created %d %s assets for campaign %s", len(result), className, s.campaignID)
	}
	return result, nil
}

// updateAssets submits sparse asset updates; each operation carries the field
// mask computed from its populated payload.
func (s *AssetIntegration) updateAssets(ctx context.Context, className string, ops []Operation, ids []int64) (BatchResult, error) {
	result, err := s.correlator.Execute(ctx, s.accountID, ops, ids)
	if err != nil {
		if s.recordError(err, className) {
			return nil, nil
		}
		return nil, err
	}
	if len(result) > 0 {
		logging.Mutate("updated %d %s assets for campaign %s", len(result), className, s.campaignID)
	}
	return result, nil
}

// AttachToCampaign links an existing asset to the facade's campaign under
// the given field type (e.g. "SITELINK", "CALL").
func (s *AssetIntegration) AttachToCampaign(ctx context.Context, assetResourceName, fieldType string) (string, error) {
	op := NewCreate(KindCampaignAsset, CampaignAsset{
		Campaign:  CampaignPath(s.accountID, s.campaignID),
		Asset:     assetResourceName,
		FieldType: fieldType,
		Status:    campaignAssetStatusEnabled,
	})
	result, err := s.correlator.Execute(ctx, s.accountID, []Operation{op}, []int64{0})
	if err != nil {
		if s.recordError(err, "CampaignAsset") {
			return "", nil
		}
		return "", err
	}
	return result[0].ResourceName, nil
}

func (s *AssetIntegration) recordError(err error, className string) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	s.errs = append(s.errs, Normalize(apiErr, className, s.campaignID, s.campaignID))
	logging.MutateError("%s mutate failed: campaign=%s code=%s", className, s.campaignID, apiErr.Status)
	return true
}
