package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/domain"
)

func TestOptimisedKeywordsGenerate(t *testing.T) {
	store := &memStore{
		campaigns: []Campaign{
			{ID: 1, Name: "Shoes", BusinessDesc: "Shoe shop"},
		},
		ads: map[int64][]AdRef{
			1: {{ID: 10, AdGroupID: "500"}},
		},
		keywords: map[int64][]domain.Keyword{
			10: {
				{ID: 1, Text: "running shoes"},
				{ID: 2, Text: "cheap laptops"},
				{ID: 3, Text: "trail shoes"},
			},
		},
	}
	analyst := &mockAnalyst{
		theme: "running footwear",
		fitness: map[string]float64{
			"running shoes": 0.95,
			"cheap laptops": 0.05,
			"trail shoes":   0.85,
		},
	}
	sink := &memSink{}
	g, err := New("o", Deps{Store: store, Sink: sink, Analyst: analyst, MinFitness: 0.6})
	require.NoError(t, err)

	err = g.Generate(context.Background(), Options{NumCampaigns: 1, AdsPerCampaign: 1, KeywordsPerAd: 5})
	require.NoError(t, err)

	recs := sink.all()
	require.Len(t, recs, 1)
	assert.Equal(t, "optimised_keywords", recs[0].Kind)
	assert.Equal(t, "cheap laptops", recs[0].KeywordText)
	assert.Equal(t, SeveritySuggestion, recs[0].Severity)
	assert.Contains(t, recs[0].Description, "running footwear")
}

func TestOptimisedKeywordsSkipsSingleKeywordAds(t *testing.T) {
	store := &memStore{
		campaigns: []Campaign{{ID: 1}},
		ads:       map[int64][]AdRef{1: {{ID: 10}}},
		keywords: map[int64][]domain.Keyword{
			10: {{ID: 1, Text: "only one"}},
		},
	}
	sink := &memSink{}
	g, err := New("o", Deps{Store: store, Sink: sink, Analyst: &mockAnalyst{}, MinFitness: 0.6})
	require.NoError(t, err)

	err = g.Generate(context.Background(), Options{NumCampaigns: 1, AdsPerCampaign: 1, KeywordsPerAd: 5})
	require.NoError(t, err)
	assert.Empty(t, sink.all())
}
