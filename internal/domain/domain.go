// Package domain holds the validated objects handed to the integration layer
// by the web/persistence side of the product. Nothing here talks to the
// network; these are plain data carriers.
package domain

// TextLine is a single headline or description produced either by a human or
// by the copy generator.
type TextLine struct {
	Text string
}

// AdData describes an ad that has not been submitted to Google Ads yet.
type AdData struct {
	ID           int64
	URL          string
	Headlines    []TextLine
	Descriptions []TextLine
}

// Ad is a previously submitted ad being edited.
type Ad struct {
	ID           int64
	Headlines    []TextLine
	Descriptions []TextLine
	FinalURLs    []string
}

// Keyword is a local keyword row awaiting remote criterion creation.
type Keyword struct {
	ID   int64
	Text string
}

// SiteLinkData describes one sitelink asset.
type SiteLinkData struct {
	ID           int64
	LinkText     string
	URL          string
	Description1 string
	Description2 string
	// AssetResourceName is set once the asset exists remotely; updates need it.
	AssetResourceName string
}

// Callout is a short promotional snippet asset.
type Callout struct {
	ID                int64
	Text              string
	AssetResourceName string
}

// StructuredSnippetData is a header plus a list of values.
type StructuredSnippetData struct {
	ID                int64
	Header            string
	Values            []string
	AssetResourceName string
}

// PhoneNumber backs a call asset.
type PhoneNumber struct {
	ID                int64
	CountryCode       string
	Number            string
	AssetResourceName string
}

// Price is one entry of a price asset.
type Price struct {
	ID           int64
	Header       string
	Description  string
	URL          string
	AmountMicros int64
	CurrencyCode string
	Unit         string
}

// PriceAsset groups price entries under a shared type and qualifier.
type PriceAsset struct {
	ID                int64
	Type              string
	PriceQualifier    string
	Entries           []Price
	AssetResourceName string
}
