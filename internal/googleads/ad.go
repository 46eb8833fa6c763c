package googleads

import (
	"context"
	"errors"
	"fmt"

	"adpilot/internal/domain"
	"adpilot/internal/logging"
)

const adGroupAdStatusEnabled = "ENABLED"

// AdUpdateConfig names the ad sub-fields an update touches. A nil slice
// leaves the corresponding remote field untouched; only populated fields
// enter the update mask.
type AdUpdateConfig struct {
	Headlines    []domain.TextLine
	Descriptions []domain.TextLine
	FinalURLs    []string
}

// AdIntegration is the responsive-search-ad facade for one campaign. It owns
// a mutable error list and is therefore not safe for concurrent use; callers
// serialize externally or use one instance per worker.
type AdIntegration struct {
	correlator *Correlator
	accountID  string
	campaignID string
	groups     *AdGroupManager
	errs       []NormalizedError
}

// NewAdIntegration builds the facade for one account/campaign pair.
func NewAdIntegration(svc MutateService, accountID, campaignID string) *AdIntegration {
	return &AdIntegration{
		correlator: NewCorrelator(svc),
		accountID:  accountID,
		campaignID: campaignID,
		groups:     NewAdGroupManager(svc, accountID, campaignID),
	}
}

// Errors returns every normalized remote failure recorded so far. The list
// grows across calls and is never cleared automatically.
func (a *AdIntegration) Errors() []NormalizedError { return a.errs }

// CreateResponsiveSearchAd validates the ad, submits it to the given ad
// group, and returns the composite adGroupAd ID. A remote failure is
// normalized into the error list and reported as an empty ID with nil error;
// precondition violations are returned directly and never recorded.
func (a *AdIntegration) CreateResponsiveSearchAd(ctx context.Context, adGroupID string, ad domain.AdData) (string, error) {
	if adGroupID == "" {
		return "", fmt.Errorf("googleads: ad group id is required")
	}
	if err := ValidateURL(ad.URL); err != nil {
		return "", err
	}
	if err := ValidateCounts(len(ad.Headlines), len(ad.Descriptions)); err != nil {
		return "", err
	}

	op := a.buildCreateOperation(adGroupID, ad)
	result, err := a.correlator.Execute(ctx, a.accountID, []Operation{op}, []int64{ad.ID})
	if err != nil {
		if a.recordError(err, fmt.Sprintf("%d", ad.ID)) {
			return "", nil
		}
		return "", err
	}
	logging.Mutate("created responsive search ad %s in ad group %s", result[0].RemoteID, adGroupID)
	return result[0].RemoteID, nil
}

func (a *AdIntegration) buildCreateOperation(adGroupID string, ad domain.AdData) Operation {
	headlines := ad.Headlines
	if len(headlines) > MaxHeadlines {
		headlines = headlines[:MaxHeadlines]
	}
	descriptions := ad.Descriptions
	if len(descriptions) > MaxDescriptions {
		descriptions = descriptions[:MaxDescriptions]
	}

	return NewCreate(KindAdGroupAd, AdGroupAd{
		Status:  adGroupAdStatusEnabled,
		AdGroup: AdGroupPath(a.accountID, adGroupID),
		Ad: &Ad{
			FinalURLs: []string{ad.URL + utmSuffix},
			ResponsiveSearchAd: &ResponsiveSearchAdInfo{
				Headlines:    TextAssets(headlines),
				Descriptions: TextAssets(descriptions),
			},
		},
	})
}

// UpdateResponsiveSearchAd replaces the headlines and descriptions of an
// existing ad, silently capping the input at the platform maximums.
func (a *AdIntegration) UpdateResponsiveSearchAd(ctx context.Context, adID string, ad domain.Ad) error {
	if adID == "" {
		return fmt.Errorf("googleads: ad id is required")
	}
	if err := ValidateCounts(len(ad.Headlines), len(ad.Descriptions)); err != nil {
		return err
	}

	headlines := ad.Headlines
	if len(headlines) > MaxHeadlines {
		headlines = headlines[:MaxHeadlines]
	}
	descriptions := ad.Descriptions
	if len(descriptions) > MaxDescriptions {
		descriptions = descriptions[:MaxDescriptions]
	}

	return a.update(ctx, adID, AdUpdateConfig{Headlines: headlines, Descriptions: descriptions})
}

// UpdateAdURLs replaces only the final URLs of an ad.
func (a *AdIntegration) UpdateAdURLs(ctx context.Context, adID string, urls []string) error {
	return a.update(ctx, adID, AdUpdateConfig{FinalURLs: urls})
}

// update builds the sparse payload, derives the field mask from exactly the
// fields the config populated, and submits the partial update. Remote
// failures land in the error list.
func (a *AdIntegration) update(ctx context.Context, adID string, cfg AdUpdateConfig) error {
	payload := Ad{ResourceName: AdPath(a.accountID, adID)}
	if cfg.Headlines != nil || cfg.Descriptions != nil {
		rsa := &ResponsiveSearchAdInfo{}
		if cfg.Headlines != nil {
			rsa.Headlines = TruncateHeadlines(cfg.Headlines)
		}
		if cfg.Descriptions != nil {
			rsa.Descriptions = TextAssets(cfg.Descriptions)
		}
		payload.ResponsiveSearchAd = rsa
	}
	if cfg.FinalURLs != nil {
		payload.FinalURLs = cfg.FinalURLs
	}

	op := NewUpdate(KindAd, payload, FieldMaskString(payload))
	_, err := a.correlator.Execute(ctx, a.accountID, []Operation{op}, []int64{0})
	if err != nil {
		if a.recordError(err, adID) {
			return nil
		}
		return err
	}
	logging.Mutate("updated ad %s (mask %s)", adID, FieldMaskString(payload))
	return nil
}

// CreateAdGroupForAd creates a standard ad group named after the ad's URL.
func (a *AdIntegration) CreateAdGroupForAd(ctx context.Context, ad domain.AdData) (string, error) {
	return a.groups.CreateStandardAdGroup(ctx, ad.URL)
}

// CreateDynamicAdGroup creates a paused dynamic search ad group.
func (a *AdIntegration) CreateDynamicAdGroup(ctx context.Context) (string, error) {
	return a.groups.CreateDynamicAdGroup(ctx)
}

// recordError normalizes and stores a remote mutate failure. Non-API errors
// (transport problems, contract errors) are not swallowed.
func (a *AdIntegration) recordError(err error, relatedID string) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	a.errs = append(a.errs, Normalize(apiErr, "Ad", a.campaignID, relatedID))
	logging.MutateError("ad mutate failed: campaign=%s ad=%s code=%s", a.campaignID, relatedID, apiErr.Status)
	return true
}
