// Package recommend produces campaign improvement recommendations. Each
// generator variant implements the same Generate contract and is selected by
// name through the registry; the persistence side is reached only through
// the narrow Store/Sink interfaces so the web layer stays out of this
// module.
package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"adpilot/internal/domain"
)

// Severity grades a recommendation.
type Severity string

const (
	SeveritySuggestion Severity = "SUGGESTION"
	SeverityFix        Severity = "FIX"
)

// StatePending is the initial state of every stored recommendation.
const StatePending = "PENDING"

// Campaign is the read view of a local campaign.
type Campaign struct {
	ID               int64
	Name             string
	Content          string
	BusinessDesc     string
	AccountID        string
	RemoteCampaignID string
}

// AdRef locates one ad of a campaign.
type AdRef struct {
	ID        int64
	AdGroupID string
}

// KeywordPerformance is one keyword's aggregated metrics.
type KeywordPerformance struct {
	AdGroupID   string
	KeywordText string
	Clicks      int64
	Impressions int64
	Cost        float64
	Conversions float64
}

// Recommendation is the produced artifact, stored via the Sink.
type Recommendation struct {
	Kind        string
	Title       string
	Description string
	Severity    Severity
	State       string
	CampaignID  int64
	AdID        int64
	KeywordText string
	CreatedAt   time.Time
}

// Store supplies local campaign data. Implemented by the persistence layer.
type Store interface {
	Campaigns(ctx context.Context, limit int) ([]Campaign, error)
	AdsForCampaign(ctx context.Context, campaignID int64, limit int) ([]AdRef, error)
	KeywordsForAd(ctx context.Context, adID int64, limit int) ([]domain.Keyword, error)
}

// PerformanceSource supplies remote keyword metrics for a campaign.
type PerformanceSource interface {
	KeywordPerformance(ctx context.Context, campaign Campaign) ([]KeywordPerformance, error)
}

// Sink stores produced recommendations. Implementations must be safe for
// concurrent use; generators write from multiple goroutines.
type Sink interface {
	SaveRecommendation(ctx context.Context, rec Recommendation) error
}

// KeywordAnalyst is the slice of the copy generator the keyword variants
// need: theme derivation, keyword expansion, and fitness scoring.
type KeywordAnalyst interface {
	ThemeRepresentation(ctx context.Context, contextualInfo string, keywords []string) (string, error)
	SpecificKeywords(ctx context.Context, content string, keywords []string) ([]string, error)
	GenericKeywords(ctx context.Context, content string, keywords []string) ([]string, error)
	KeywordFitness(ctx context.Context, candidate string, training []string, theme string) (float64, error)
}

// Options bounds one generation run.
type Options struct {
	NumCampaigns   int
	AdsPerCampaign int
	KeywordsPerAd  int
}

// Generator is the contract every recommendation variant implements.
type Generator interface {
	Generate(ctx context.Context, opts Options) error
}

// Deps carries the collaborators a generator may need.
type Deps struct {
	Store      Store
	Perf       PerformanceSource
	Sink       Sink
	Analyst    KeywordAnalyst
	MinFitness float64
	Workers    int
}

func (d Deps) workers() int {
	if d.Workers <= 0 {
		return 4
	}
	return d.Workers
}

// registry maps generator names to constructors.
var registry = map[string]func(Deps) Generator{
	"underperforming_keywords": func(d Deps) Generator { return &UnderperformingKeywords{deps: d} },
	"new_keywords":             func(d Deps) Generator { return &NewKeywords{deps: d} },
	"optimised_keywords":       func(d Deps) Generator { return &OptimisedKeywords{deps: d} },
}

// aliases are the short CLI names.
var aliases = map[string]string{
	"u": "underperforming_keywords",
	"n": "new_keywords",
	"o": "optimised_keywords",
}

// New resolves a generator by full name or short alias.
func New(kind string, deps Deps) (Generator, error) {
	if full, ok := aliases[kind]; ok {
		kind = full
	}
	ctor, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("recommend: unknown generator %q, available: %v", kind, Kinds())
	}
	return ctor(deps), nil
}

// Kinds lists the registered generator names, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
