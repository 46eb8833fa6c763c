package googleads

import (
	"fmt"
	"regexp"
)

// Resource name builders. Names are constructed, never parsed, except through
// the kind-specific ID extractors below.

// CampaignPath returns customers/{cid}/campaigns/{id}.
func CampaignPath(accountID, campaignID string) string {
	return fmt.Sprintf("customers/%s/campaigns/%s", accountID, campaignID)
}

// AdGroupPath returns customers/{cid}/adGroups/{id}.
func AdGroupPath(accountID, adGroupID string) string {
	return fmt.Sprintf("customers/%s/adGroups/%s", accountID, adGroupID)
}

// AdPath returns customers/{cid}/ads/{id}.
func AdPath(accountID, adID string) string {
	return fmt.Sprintf("customers/%s/ads/%s", accountID, adID)
}

// AssetPath returns customers/{cid}/assets/{id}.
func AssetPath(accountID, assetID string) string {
	return fmt.Sprintf("customers/%s/assets/%s", accountID, assetID)
}

// ID extraction patterns per kind. Ad-group-ads and criteria use composite
// NNN~MMM identifiers; the rest are plain trailing integers.
var (
	adGroupIDPattern       = regexp.MustCompile(`adGroups/(\d+)`)
	adGroupAdIDPattern     = regexp.MustCompile(`adGroupAds/(\d+~\d+)`)
	criterionIDPattern     = regexp.MustCompile(`adGroupCriteria/(\d+~\d+)`)
	adIDPattern            = regexp.MustCompile(`ads/(\d+)`)
	assetIDPattern         = regexp.MustCompile(`assets/(\d+)`)
	campaignAssetIDPattern = regexp.MustCompile(`campaignAssets/(\d+~\d+~[A-Z_]+)`)
)

func (k ResourceKind) idPattern() *regexp.Regexp {
	switch k {
	case KindAdGroup:
		return adGroupIDPattern
	case KindAdGroupAd:
		return adGroupAdIDPattern
	case KindAdGroupCriterion:
		return criterionIDPattern
	case KindAd:
		return adIDPattern
	case KindAsset:
		return assetIDPattern
	case KindCampaignAsset:
		return campaignAssetIDPattern
	}
	panic(fmt.Sprintf("googleads: no id pattern for kind %d", int(k)))
}

// ExtractID pulls the trailing identifier out of a returned resource name.
// A mismatch means Google changed its resource-name format; that is a
// contract violation, not a recoverable condition, so it panics.
func ExtractID(kind ResourceKind, resourceName string) string {
	m := kind.idPattern().FindStringSubmatch(resourceName)
	if m == nil {
		panic(fmt.Sprintf("googleads: resource name %q does not match %s pattern", resourceName, kind))
	}
	return m[1]
}
