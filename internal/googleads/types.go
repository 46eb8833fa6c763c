// Package googleads implements the mutation pipeline against the Google Ads
// REST API: operation construction, batch execution with positional
// correlation, partial-update field masks, and normalization of the API's
// variable-shape failure payloads.
//
// The package never owns persistence or routing; it receives validated
// domain objects and returns remote identifiers or normalized errors.
package googleads

import "fmt"

// Text constraints enforced before any mutate call is made.
const (
	HeadlineMaxLength = 30
	MinHeadlines      = 3
	MinDescriptions   = 2
	MaxHeadlines      = 15
	MaxDescriptions   = 4
)

// utmSuffix is appended to every submitted final URL. The {{...}} placeholders
// are ValueTrack parameters resolved by Google at serving time, not by us.
const utmSuffix = "?utm_source=google&utm_medium=cpc&utm_campaign={{campaignid}}&utm_term={{keyword}}&utm_content={{creative}}"

// ResourceKind identifies which remote resource a mutate operation targets.
type ResourceKind int

const (
	KindAdGroup ResourceKind = iota
	KindAdGroupAd
	KindAd
	KindAdGroupCriterion
	KindAsset
	KindCampaignAsset
)

var kindNames = map[ResourceKind]string{
	KindAdGroup:          "adGroup",
	KindAdGroupAd:        "adGroupAd",
	KindAd:               "ad",
	KindAdGroupCriterion: "adGroupCriterion",
	KindAsset:            "asset",
	KindCampaignAsset:    "campaignAsset",
}

func (k ResourceKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("ResourceKind(%d)", int(k))
}

// mutatePath returns the REST mutate collection for the kind, e.g.
// "adGroups" for customers/{cid}/adGroups:mutate.
func (k ResourceKind) mutatePath() string {
	switch k {
	case KindAdGroup:
		return "adGroups"
	case KindAdGroupAd:
		return "adGroupAds"
	case KindAd:
		return "ads"
	case KindAdGroupCriterion:
		return "adGroupCriteria"
	case KindAsset:
		return "assets"
	case KindCampaignAsset:
		return "campaignAssets"
	}
	panic(fmt.Sprintf("googleads: unknown resource kind %d", int(k)))
}

// Operation is one entry of a mutate request. Exactly one of Create, Update,
// Remove is populated; the constructors below enforce that.
type Operation struct {
	kind ResourceKind

	Create     any    `json:"create,omitempty"`
	Update     any    `json:"update,omitempty"`
	UpdateMask string `json:"updateMask,omitempty"`
	Remove     string `json:"remove,omitempty"`
}

// Kind reports which resource the operation targets.
func (o Operation) Kind() ResourceKind { return o.kind }

// NewCreate builds a create operation for the given kind.
func NewCreate(kind ResourceKind, payload any) Operation {
	return Operation{kind: kind, Create: payload}
}

// NewUpdate builds a partial update. mask is the comma-joined field mask
// computed by FieldMask; only the named paths are touched server-side.
func NewUpdate(kind ResourceKind, payload any, mask string) Operation {
	return Operation{kind: kind, Update: payload, UpdateMask: mask}
}

// NewRemove builds a remove operation for an existing resource name.
func NewRemove(kind ResourceKind, resourceName string) Operation {
	return Operation{kind: kind, Remove: resourceName}
}

// ---------------------------------------------------------------------------
// Wire payloads (Google Ads REST v17 JSON shapes)
// ---------------------------------------------------------------------------

// AdGroup is the ad group create/update payload.
type AdGroup struct {
	ResourceName        string `json:"resourceName,omitempty"`
	Name                string `json:"name,omitempty"`
	Status              string `json:"status,omitempty"`
	Type                string `json:"type,omitempty"`
	Campaign            string `json:"campaign,omitempty"`
	CPCBidMicros        int64  `json:"cpcBidMicros,omitempty"`
	TrackingURLTemplate string `json:"trackingUrlTemplate,omitempty"`
}

// TextAsset is one headline or description line of a responsive search ad,
// optionally pinned to a fixed serving slot.
type TextAsset struct {
	Text        string `json:"text"`
	PinnedField string `json:"pinnedField,omitempty"`
}

// ResponsiveSearchAdInfo carries the creative text of an RSA.
type ResponsiveSearchAdInfo struct {
	Headlines    []TextAsset `json:"headlines,omitempty"`
	Descriptions []TextAsset `json:"descriptions,omitempty"`
}

// ExpandedDynamicSearchAdInfo is the creative of a dynamic search ad; Google
// generates the headline and landing page from the crawled site.
type ExpandedDynamicSearchAdInfo struct {
	Description string `json:"description,omitempty"`
}

// Ad is the ad payload shared by adGroupAds:mutate (nested) and ads:mutate
// (top level, for updates).
type Ad struct {
	ResourceName            string                       `json:"resourceName,omitempty"`
	FinalURLs               []string                     `json:"finalUrls,omitempty"`
	ResponsiveSearchAd      *ResponsiveSearchAdInfo      `json:"responsiveSearchAd,omitempty"`
	ExpandedDynamicSearchAd *ExpandedDynamicSearchAdInfo `json:"expandedDynamicSearchAd,omitempty"`
}

// AdGroupAd links an Ad into an ad group.
type AdGroupAd struct {
	Status  string `json:"status,omitempty"`
	AdGroup string `json:"adGroup,omitempty"`
	Ad      *Ad    `json:"ad,omitempty"`
}

// KeywordInfo is the keyword criterion payload.
type KeywordInfo struct {
	Text      string `json:"text,omitempty"`
	MatchType string `json:"matchType,omitempty"`
}

// AdGroupCriterion is the criterion create payload; only keyword criteria are
// built here.
type AdGroupCriterion struct {
	AdGroup  string       `json:"adGroup,omitempty"`
	Status   string       `json:"status,omitempty"`
	Negative bool         `json:"negative,omitempty"`
	Keyword  *KeywordInfo `json:"keyword,omitempty"`
}

// Asset wraps the per-kind asset payloads; exactly one sub-asset is set.
type Asset struct {
	ResourceName           string                  `json:"resourceName,omitempty"`
	Name                   string                  `json:"name,omitempty"`
	FinalURLs              []string                `json:"finalUrls,omitempty"`
	SitelinkAsset          *SitelinkAsset          `json:"sitelinkAsset,omitempty"`
	CalloutAsset           *CalloutAsset           `json:"calloutAsset,omitempty"`
	StructuredSnippetAsset *StructuredSnippetAsset `json:"structuredSnippetAsset,omitempty"`
	CallAsset              *CallAsset              `json:"callAsset,omitempty"`
	PriceAsset             *PriceAssetInfo         `json:"priceAsset,omitempty"`
}

// SitelinkAsset is a sitelink extension.
type SitelinkAsset struct {
	LinkText     string `json:"linkText,omitempty"`
	Description1 string `json:"description1,omitempty"`
	Description2 string `json:"description2,omitempty"`
}

// CalloutAsset is a short promotional snippet.
type CalloutAsset struct {
	CalloutText string `json:"calloutText,omitempty"`
}

// StructuredSnippetAsset is a header with a list of values.
type StructuredSnippetAsset struct {
	Header string   `json:"header,omitempty"`
	Values []string `json:"values,omitempty"`
}

// CallAsset carries a phone number for call extensions.
type CallAsset struct {
	CountryCode           string `json:"countryCode,omitempty"`
	PhoneNumber           string `json:"phoneNumber,omitempty"`
	CallConversionAction  string `json:"callConversionAction,omitempty"`
	CallConversionSetting string `json:"callConversionReportingState,omitempty"`
}

// PriceOffering is one row of a price asset.
type PriceOffering struct {
	Header      string `json:"header,omitempty"`
	Description string `json:"description,omitempty"`
	FinalURL    string `json:"finalUrl,omitempty"`
	Price       *Money `json:"price,omitempty"`
	Unit        string `json:"unit,omitempty"`
}

// Money is an amount in micros with a currency code.
type Money struct {
	AmountMicros int64  `json:"amountMicros,omitempty,string"`
	CurrencyCode string `json:"currencyCode,omitempty"`
}

// PriceAssetInfo is a price extension.
type PriceAssetInfo struct {
	Type           string          `json:"type,omitempty"`
	PriceQualifier string          `json:"priceQualifier,omitempty"`
	PriceOfferings []PriceOffering `json:"priceOfferings,omitempty"`
}

// CampaignAsset attaches an asset to a campaign under a field type.
type CampaignAsset struct {
	Campaign  string `json:"campaign,omitempty"`
	Asset     string `json:"asset,omitempty"`
	FieldType string `json:"fieldType,omitempty"`
	Status    string `json:"status,omitempty"`
}

// MutateResult is one entry of a mutate response.
type MutateResult struct {
	ResourceName string `json:"resourceName"`
}

// MutateResponse is the success body of a mutate call.
type MutateResponse struct {
	Results []MutateResult `json:"results"`
}
