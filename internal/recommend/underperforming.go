package recommend

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"adpilot/internal/logging"
)

// Thresholds for flagging a keyword as underperforming.
const (
	minImpressionsForJudgment = 100
	minCTR                    = 0.01
)

// UnderperformingKeywords flags keywords that accumulate impressions without
// clicks or convert nothing despite spend.
type UnderperformingKeywords struct {
	deps Deps
}

// Generate scans up to NumCampaigns campaigns in parallel; campaigns are
// independent, so one campaign's failure does not abort the others' work
// already written, but the first error is reported.
func (g *UnderperformingKeywords) Generate(ctx context.Context, opts Options) error {
	campaigns, err := g.deps.Store.Campaigns(ctx, opts.NumCampaigns)
	if err != nil {
		return fmt.Errorf("load campaigns: %w", err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.deps.workers())
	for _, c := range campaigns {
		eg.Go(func() error {
			return g.processCampaign(ctx, c)
		})
	}
	return eg.Wait()
}

func (g *UnderperformingKeywords) processCampaign(ctx context.Context, c Campaign) error {
	rows, err := g.deps.Perf.KeywordPerformance(ctx, c)
	if err != nil {
		return fmt.Errorf("keyword performance for campaign %d: %w", c.ID, err)
	}

	flagged := 0
	for _, row := range rows {
		reason, ok := judge(row)
		if !ok {
			continue
		}
		rec := Recommendation{
			Kind:        "underperforming_keywords",
			Title:       "Underperforming Keyword",
			Description: reason,
			Severity:    SeverityFix,
			State:       StatePending,
			CampaignID:  c.ID,
			KeywordText: row.KeywordText,
			CreatedAt:   time.Now().UTC(),
		}
		if err := g.deps.Sink.SaveRecommendation(ctx, rec); err != nil {
			return fmt.Errorf("save recommendation: %w", err)
		}
		flagged++
	}
	logging.Recommend("campaign %d: flagged %d of %d keywords as underperforming", c.ID, flagged, len(rows))
	return nil
}

// judge decides whether a keyword's metrics warrant a recommendation.
// Keywords with too few impressions are left alone; the data is not there
// yet.
func judge(row KeywordPerformance) (string, bool) {
	if row.Impressions < minImpressionsForJudgment {
		return "", false
	}
	if row.Clicks == 0 {
		return fmt.Sprintf("Keyword %q has %d impressions and no clicks; consider pausing it or changing its match type.",
			row.KeywordText, row.Impressions), true
	}
	ctr := float64(row.Clicks) / float64(row.Impressions)
	if ctr < minCTR {
		return fmt.Sprintf("Keyword %q has a CTR of %.2f%% over %d impressions; consider tightening the ad copy around it.",
			row.KeywordText, ctr*100, row.Impressions), true
	}
	if row.Cost > 0 && row.Conversions == 0 {
		return fmt.Sprintf("Keyword %q has spent %.2f with no conversions; review its landing page fit.",
			row.KeywordText, row.Cost), true
	}
	return "", false
}
