package googleads

import (
	"context"
	"errors"
	"fmt"

	"adpilot/internal/domain"
	"adpilot/internal/logging"
)

// MatchType is the keyword match type requested by the caller.
type MatchType string

const (
	MatchExact  MatchType = "EXACT"
	MatchBroad  MatchType = "BROAD"
	MatchPhrase MatchType = "PHRASE"
)

// wire maps the match type onto the API enum, defaulting anything outside
// the closed set to BROAD.
func (m MatchType) wire() string {
	switch m {
	case MatchExact, MatchBroad, MatchPhrase:
		return string(m)
	default:
		return string(MatchBroad)
	}
}

const criterionStatusEnabled = "ENABLED"

// KeywordIntegration is the keyword-criterion facade for one ad group. Like
// the other facades it owns a mutable error list and must not be shared
// across goroutines without external serialization.
type KeywordIntegration struct {
	correlator *Correlator
	accountID  string
	adGroupID  string
	campaignID string
	matchType  MatchType
	errs       []NormalizedError
}

// NewKeywordIntegration builds the facade. campaignID is only used to label
// normalized errors.
func NewKeywordIntegration(svc MutateService, accountID, adGroupID, campaignID string, matchType MatchType) *KeywordIntegration {
	return &KeywordIntegration{
		correlator: NewCorrelator(svc),
		accountID:  accountID,
		adGroupID:  adGroupID,
		campaignID: campaignID,
		matchType:  matchType,
	}
}

// Errors returns the accumulated normalized failures.
func (k *KeywordIntegration) Errors() []NormalizedError { return k.errs }

// AddKeywords creates one criterion per keyword in a single atomic batch and
// returns the positional correlation of local IDs to remote resource names.
// A remote failure is recorded once and the call returns a nil result; the
// batch is never partially applied.
func (k *KeywordIntegration) AddKeywords(ctx context.Context, keywords []domain.Keyword) (BatchResult, error) {
	return k.addKeywords(ctx, keywords, false)
}

// AddNegativeKeywords creates negative criteria for the ad group.
func (k *KeywordIntegration) AddNegativeKeywords(ctx context.Context, keywords []domain.Keyword) (BatchResult, error) {
	return k.addKeywords(ctx, keywords, true)
}

func (k *KeywordIntegration) addKeywords(ctx context.Context, keywords []domain.Keyword, negative bool) (BatchResult, error) {
	if len(keywords) == 0 {
		return BatchResult{}, nil
	}
	if k.adGroupID == "" {
		return nil, fmt.Errorf("googleads: ad group id is required for keyword creation")
	}

	ops := make([]Operation, len(keywords))
	ids := make([]int64, len(keywords))
	for i, kw := range keywords {
		ops[i] = k.buildCreateOperation(kw.Text, negative)
		ids[i] = kw.ID
	}

	result, err := k.correlator.Execute(ctx, k.accountID, ops, ids)
	if err != nil {
		if k.recordError(err) {
			return nil, nil
		}
		return nil, err
	}
	logging.Mutate("added %d keywords to ad group %s (negative=%v)", len(result), k.adGroupID, negative)
	return result, nil
}

func (k *KeywordIntegration) buildCreateOperation(text string, negative bool) Operation {
	return NewCreate(KindAdGroupCriterion, AdGroupCriterion{
		AdGroup:  AdGroupPath(k.accountID, k.adGroupID),
		Status:   criterionStatusEnabled,
		Negative: negative,
		Keyword: &KeywordInfo{
			Text:      text,
			MatchType: k.matchType.wire(),
		},
	})
}

// RemoveKeywords removes the given criteria by resource name in one batch.
func (k *KeywordIntegration) RemoveKeywords(ctx context.Context, resourceNames []string) error {
	if len(resourceNames) == 0 {
		return nil
	}

	ops := make([]Operation, len(resourceNames))
	ids := make([]int64, len(resourceNames))
	for i, rn := range resourceNames {
		ops[i] = NewRemove(KindAdGroupCriterion, rn)
	}

	_, err := k.correlator.Execute(ctx, k.accountID, ops, ids)
	if err != nil {
		if k.recordError(err) {
			return nil
		}
		return err
	}
	logging.Mutate("removed %d keywords from ad group %s", len(resourceNames), k.adGroupID)
	return nil
}

func (k *KeywordIntegration) recordError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	k.errs = append(k.errs, Normalize(apiErr, "Keyword", k.campaignID, ""))
	logging.MutateError("keyword mutate failed: campaign=%s ad_group=%s code=%s", k.campaignID, k.adGroupID, apiErr.Status)
	return true
}
