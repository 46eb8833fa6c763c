package googleads

import (
	"context"
	"fmt"

	"adpilot/internal/logging"
)

// CreateDynamicSearchAd provisions a dynamic-search setup: an enabled dynamic
// ad group named after the campaign, then an expanded dynamic search ad whose
// headline and landing page Google derives from the crawled site. Returns the
// new ad group ID.
func (a *AdIntegration) CreateDynamicSearchAd(ctx context.Context, description, campaignName string) (string, error) {
	adGroupID, err := a.groups.CreateAdGroup(ctx, AdGroupConfig{
		Name:   fmt.Sprintf("Dynamic Search Ad Group for %s", campaignName),
		Type:   adGroupTypeSearchDynamic,
		Status: adGroupStatusEnabled,
	})
	if err != nil {
		return "", err
	}

	op := NewCreate(KindAdGroupAd, AdGroupAd{
		Status:  adGroupAdStatusEnabled,
		AdGroup: AdGroupPath(a.accountID, adGroupID),
		Ad: &Ad{
			ExpandedDynamicSearchAd: &ExpandedDynamicSearchAdInfo{Description: description},
		},
	})
	if _, err := a.correlator.Execute(ctx, a.accountID, []Operation{op}, []int64{0}); err != nil {
		if a.recordError(err, adGroupID) {
			return adGroupID, nil
		}
		return "", err
	}
	logging.Mutate("created dynamic search ad in ad group %s", adGroupID)
	return adGroupID, nil
}
