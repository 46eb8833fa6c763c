package googleads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathBuilders(t *testing.T) {
	assert.Equal(t, "customers/12/campaigns/34", CampaignPath("12", "34"))
	assert.Equal(t, "customers/12/adGroups/56", AdGroupPath("12", "56"))
	assert.Equal(t, "customers/12/ads/78", AdPath("12", "78"))
	assert.Equal(t, "customers/12/assets/90", AssetPath("12", "90"))
}

func TestExtractID(t *testing.T) {
	tests := []struct {
		kind ResourceKind
		name string
		want string
	}{
		{KindAdGroup, "customers/123/adGroups/456", "456"},
		{KindAdGroupAd, "customers/123/adGroupAds/456~789", "456~789"},
		{KindAdGroupCriterion, "customers/123/adGroupCriteria/456~789", "456~789"},
		{KindAd, "customers/123/ads/456", "456"},
		{KindAsset, "customers/123/assets/456", "456"},
		{KindCampaignAsset, "customers/123/campaignAssets/456~789~SITELINK", "456~789~SITELINK"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractID(tt.kind, tt.name), "kind %s", tt.kind)
	}
}

func TestExtractIDPanicsOnMismatch(t *testing.T) {
	assert.Panics(t, func() {
		ExtractID(KindAdGroup, "customers/123/campaigns/456")
	})
	assert.Panics(t, func() {
		// composite id required, plain integer must not pass
		ExtractID(KindAdGroupAd, "customers/123/adGroupAds/456")
	})
}
