package googleads

import (
	"context"

	"adpilot/internal/domain"
)

// Per-kind asset entry points. Each builds the wire payloads for its kind
// and funnels them through the shared create/update batch paths, so every
// failure is normalized into the facade's one error list.

// CreateSiteLinkAssets creates one sitelink asset per entry.
func (s *AssetIntegration) CreateSiteLinkAssets(ctx context.Context, links []domain.SiteLinkData) (BatchResult, error) {
	ops := make([]Operation, len(links))
	ids := make([]int64, len(links))
	for i, l := range links {
		ops[i] = NewCreate(KindAsset, buildSiteLinkAsset(l))
		ids[i] = l.ID
	}
	return s.createAssets(ctx, "SiteLink", ops, ids)
}

// UpdateSiteLinkAssets rewrites the text fields of existing sitelink assets.
func (s *AssetIntegration) UpdateSiteLinkAssets(ctx context.Context, links []domain.SiteLinkData) (BatchResult, error) {
	ops := make([]Operation, len(links))
	ids := make([]int64, len(links))
	for i, l := range links {
		payload := buildSiteLinkAsset(l)
		payload.ResourceName = l.AssetResourceName
		ops[i] = NewUpdate(KindAsset, payload, FieldMaskString(payload))
		ids[i] = l.ID
	}
	return s.updateAssets(ctx, "SiteLink", ops, ids)
}

func buildSiteLinkAsset(l domain.SiteLinkData) Asset {
	return Asset{
		FinalURLs: []string{l.URL},
		SitelinkAsset: &SitelinkAsset{
			LinkText:     l.LinkText,
			Description1: l.Description1,
			Description2: l.Description2,
		},
	}
}

// CreateCalloutAssets creates one callout asset per entry.
func (s *AssetIntegration) CreateCalloutAssets(ctx context.Context, callouts []domain.Callout) (BatchResult, error) {
	ops := make([]Operation, len(callouts))
	ids := make([]int64, len(callouts))
	for i, c := range callouts {
		ops[i] = NewCreate(KindAsset, Asset{CalloutAsset: &CalloutAsset{CalloutText: c.Text}})
		ids[i] = c.ID
	}
	return s.createAssets(ctx, "Callout", ops, ids)
}

// UpdateCalloutAssets rewrites the text of existing callout assets.
func (s *AssetIntegration) UpdateCalloutAssets(ctx context.Context, callouts []domain.Callout) (BatchResult, error) {
	ops := make([]Operation, len(callouts))
	ids := make([]int64, len(callouts))
	for i, c := range callouts {
		payload := Asset{
			ResourceName: c.AssetResourceName,
			CalloutAsset: &CalloutAsset{CalloutText: c.Text},
		}
		ops[i] = NewUpdate(KindAsset, payload, FieldMaskString(payload))
		ids[i] = c.ID
	}
	return s.updateAssets(ctx, "Callout", ops, ids)
}

// CreateStructuredSnippetAssets creates one structured snippet asset per entry.
func (s *AssetIntegration) CreateStructuredSnippetAssets(ctx context.Context, snippets []domain.StructuredSnippetData) (BatchResult, error) {
	ops := make([]Operation, len(snippets))
	ids := make([]int64, len(snippets))
	for i, sn := range snippets {
		ops[i] = NewCreate(KindAsset, buildSnippetAsset(sn))
		ids[i] = sn.ID
	}
	return s.createAssets(ctx, "StructuredSnippet", ops, ids)
}

// UpdateStructuredSnippetAssets rewrites existing structured snippet assets.
func (s *AssetIntegration) UpdateStructuredSnippetAssets(ctx context.Context, snippets []domain.StructuredSnippetData) (BatchResult, error) {
	ops := make([]Operation, len(snippets))
	ids := make([]int64, len(snippets))
	for i, sn := range snippets {
		payload := buildSnippetAsset(sn)
		payload.ResourceName = sn.AssetResourceName
		ops[i] = NewUpdate(KindAsset, payload, FieldMaskString(payload))
		ids[i] = sn.ID
	}
	return s.updateAssets(ctx, "StructuredSnippet", ops, ids)
}

func buildSnippetAsset(sn domain.StructuredSnippetData) Asset {
	return Asset{
		StructuredSnippetAsset: &StructuredSnippetAsset{
			Header: sn.Header,
			Values: sn.Values,
		},
	}
}

// CreateCallAsset creates a call asset from a phone number and returns its
// resource name, optionally wiring a call conversion action.
func (s *AssetIntegration) CreateCallAsset(ctx context.Context, phone domain.PhoneNumber, conversionActionID string) (string, error) {
	call := &CallAsset{
		CountryCode: phone.CountryCode,
		PhoneNumber: phone.Number,
	}
	if conversionActionID != "" {
		call.CallConversionAction = conversionActionID
		call.CallConversionSetting = "USE_RESOURCE_LEVEL_CALL_CONVERSION_ACTION"
	}
	result, err := s.createAssets(ctx, "Call", []Operation{NewCreate(KindAsset, Asset{CallAsset: call})}, []int64{phone.ID})
	if err != nil || result == nil {
		return "", err
	}
	return result[0].ResourceName, nil
}

// UpdateCallAssets rewrites the numbers of existing call assets.
func (s *AssetIntegration) UpdateCallAssets(ctx context.Context, phones []domain.PhoneNumber) (BatchResult, error) {
	ops := make([]Operation, len(phones))
	ids := make([]int64, len(phones))
	for i, p := range phones {
		payload := Asset{
			ResourceName: p.AssetResourceName,
			CallAsset: &CallAsset{
				CountryCode: p.CountryCode,
				PhoneNumber: p.Number,
			},
		}
		ops[i] = NewUpdate(KindAsset, payload, FieldMaskString(payload))
		ids[i] = p.ID
	}
	return s.updateAssets(ctx, "Call", ops, ids)
}

// CreatePriceAsset creates a price asset with its offerings.
func (s *AssetIntegration) CreatePriceAsset(ctx context.Context, price domain.PriceAsset) (string, error) {
	result, err := s.createAssets(ctx, "Price", []Operation{NewCreate(KindAsset, buildPriceAsset(price))}, []int64{price.ID})
	if err != nil || result == nil {
		return "", err
	}
	return result[0].ResourceName, nil
}

// UpdatePriceAssets rewrites existing price assets.
func (s *AssetIntegration) UpdatePriceAssets(ctx context.Context, prices []domain.PriceAsset) (BatchResult, error) {
	ops := make([]Operation, len(prices))
	ids := make([]int64, len(prices))
	for i, p := range prices {
		payload := buildPriceAsset(p)
		payload.ResourceName = p.AssetResourceName
		ops[i] = NewUpdate(KindAsset, payload, FieldMaskString(payload))
		ids[i] = p.ID
	}
	return s.updateAssets(ctx, "Price", ops, ids)
}

func buildPriceAsset(p domain.PriceAsset) Asset {
	offerings := make([]PriceOffering, len(p.Entries))
	for i, e := range p.Entries {
		offerings[i] = PriceOffering{
			Header:      e.Header,
			Description: e.Description,
			FinalURL:    e.URL,
			Price: &Money{
				AmountMicros: e.AmountMicros,
				CurrencyCode: e.CurrencyCode,
			},
			Unit: e.Unit,
		}
	}
	return Asset{
		PriceAsset: &PriceAssetInfo{
			Type:           p.Type,
			PriceQualifier: p.PriceQualifier,
			PriceOfferings: offerings,
		},
	}
}
