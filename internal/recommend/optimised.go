package recommend

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"adpilot/internal/logging"
)

// OptimisedKeywords scores each existing keyword against the theme of its
// own ad and suggests pruning the ones that no longer fit.
type OptimisedKeywords struct {
	deps Deps
}

// Generate processes campaigns in parallel.
func (g *OptimisedKeywords) Generate(ctx context.Context, opts Options) error {
	campaigns, err := g.deps.Store.Campaigns(ctx, opts.NumCampaigns)
	if err != nil {
		return fmt.Errorf("load campaigns: %w", err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.deps.workers())
	for _, c := range campaigns {
		eg.Go(func() error {
			return g.processCampaign(ctx, c, opts)
		})
	}
	return eg.Wait()
}

func (g *OptimisedKeywords) processCampaign(ctx context.Context, c Campaign, opts Options) error {
	ads, err := g.deps.Store.AdsForCampaign(ctx, c.ID, opts.AdsPerCampaign)
	if err != nil {
		return fmt.Errorf("load ads for campaign %d: %w", c.ID, err)
	}

	for _, ad := range ads {
		keywords, err := g.deps.Store.KeywordsForAd(ctx, ad.ID, opts.KeywordsPerAd)
		if err != nil {
			return fmt.Errorf("load keywords for ad %d: %w", ad.ID, err)
		}
		if len(keywords) < 2 {
			// A theme derived from a single keyword scores that keyword
			// against itself; skip.
			continue
		}

		texts := make([]string, len(keywords))
		for i, kw := range keywords {
			texts[i] = kw.Text
		}
		theme, err := g.deps.Analyst.ThemeRepresentation(ctx, c.BusinessDesc, texts)
		if err != nil {
			return fmt.Errorf("theme for ad %d: %w", ad.ID, err)
		}

		for i, kw := range keywords {
			others := append(append([]string{}, texts[:i]...), texts[i+1:]...)
			score, err := g.deps.Analyst.KeywordFitness(ctx, kw.Text, others, theme)
			if err != nil {
				return fmt.Errorf("fitness for %q: %w", kw.Text, err)
			}
			if score >= g.deps.MinFitness {
				continue
			}
			rec := Recommendation{
				Kind:        "optimised_keywords",
				Title:       "Keyword Optimisation",
				Description: fmt.Sprintf("Keyword %q fits the ad theme %q at %.2f; consider replacing it.", kw.Text, theme, score),
				Severity:    SeveritySuggestion,
				State:       StatePending,
				CampaignID:  c.ID,
				AdID:        ad.ID,
				KeywordText: kw.Text,
				CreatedAt:   time.Now().UTC(),
			}
			if err := g.deps.Sink.SaveRecommendation(ctx, rec); err != nil {
				return fmt.Errorf("save recommendation: %w", err)
			}
			logging.Recommend("ad %d: keyword %q flagged for optimisation (%.2f)", ad.ID, kw.Text, score)
		}
	}
	return nil
}
