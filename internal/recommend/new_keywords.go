package recommend

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"adpilot/internal/domain"
	"adpilot/internal/logging"
)

// NewKeywords proposes additional keywords per ad: the current keyword set
// is distilled into a theme, expanded in both specific and generic
// directions, and every candidate is admitted only above the fitness bound.
type NewKeywords struct {
	deps Deps
}

// Generate processes campaigns in parallel, ads within a campaign serially.
func (g *NewKeywords) Generate(ctx context.Context, opts Options) error {
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

func (g *NewKeywords) processCampaign(ctx context.Context, c Campaign, opts Options) error {
	ads, err := g.deps.Store.AdsForCampaign(ctx, c.ID, opts.AdsPerCampaign)
	if err != nil {
		return fmt.Errorf("load ads for campaign %d: %w", c.ID, err)
	}

	for _, ad := range ads {
		keywords, err := g.deps.Store.KeywordsForAd(ctx, ad.ID, opts.KeywordsPerAd)
		if err != nil {
			return fmt.Errorf("load keywords for ad %d: %w", ad.ID, err)
		}
		if len(keywords) == 0 {
			continue
		}
		if err := g.proposeForAd(ctx, c, ad, keywords); err != nil {
			return err
		}
	}
	return nil
}

func (g *NewKeywords) proposeForAd(ctx context.Context, c Campaign, ad AdRef, keywords []domain.Keyword) error {
	training := make([]string, len(keywords))
	for i, kw := range keywords {
		training[i] = kw.Text
	}

	theme, err := g.deps.Analyst.ThemeRepresentation(ctx, c.BusinessDesc, training)
	if err != nil {
		return fmt.Errorf("theme for ad %d: %w", ad.ID, err)
	}

	specific, err := g.deps.Analyst.SpecificKeywords(ctx, c.Content, training)
	if err != nil {
		return fmt.Errorf("specific keywords for ad %d: %w", ad.ID, err)
	}
	generic, err := g.deps.Analyst.GenericKeywords(ctx, c.Content, training)
	if err != nil {
		return fmt.Errorf("generic keywords for ad %d: %w", ad.ID, err)
	}

	accepted := 0
	for _, candidate := range dedupe(append(specific, generic...), training) {
		score, err := g.deps.Analyst.KeywordFitness(ctx, candidate, training, theme)
		if err != nil {
			return fmt.Errorf("fitness for %q: %w", candidate, err)
		}
		if score < g.deps.MinFitness {
			logging.Recommend("rejected candidate %q for ad %d: fitness %.2f", candidate, ad.ID, score)
			continue
		}
		rec := Recommendation{
			Kind:        "new_keywords",
			Title:       "New Keywords Recommendation",
			Description: fmt.Sprintf("Add keyword %q (theme %q, fitness %.2f).", candidate, theme, score),
			Severity:    SeverityFix,
			State:       StatePending,
			CampaignID:  c.ID,
			AdID:        ad.ID,
			KeywordText: candidate,
			CreatedAt:   time.Now().UTC(),
		}
		if err := g.deps.Sink.SaveRecommendation(ctx, rec); err != nil {
			return fmt.Errorf("save recommendation: %w", err)
		}
		accepted++
	}
	logging.Recommend("ad %d: accepted %d new keyword candidates", ad.ID, accepted)
	return nil
}

// dedupe drops duplicate candidates and anything already in the training
// set, preserving order.
func dedupe(candidates, training []string) []string {
	seen := make(map[string]bool, len(candidates)+len(training))
	for _, t := range training {
		seen[t] = true
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
