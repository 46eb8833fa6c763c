package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJudge(t *testing.T) {
	t.Run("too few impressions are left alone", func(t *testing.T) {
		_, flagged := judge(KeywordPerformance{KeywordText: "k", Impressions: 99, Clicks: 0})
		assert.False(t, flagged)
	})

	t.Run("impressions without clicks", func(t *testing.T) {
		reason, flagged := judge(KeywordPerformance{KeywordText: "k", Impressions: 500, Clicks: 0})
		require.True(t, flagged)
		assert.Contains(t, reason, "no clicks")
	})

	t.Run("low CTR", func(t *testing.T) {
		reason, flagged := judge(KeywordPerformance{KeywordText: "k", Impressions: 1000, Clicks: 5})
		require.True(t, flagged)
		assert.Contains(t, reason, "CTR")
	})

	t.Run("spend without conversions", func(t *testing.T) {
		reason, flagged := judge(KeywordPerformance{
			KeywordText: "k", Impressions: 1000, Clicks: 50, Cost: 120.5, Conversions: 0,
		})
		require.True(t, flagged)
		assert.Contains(t, reason, "no conversions")
	})

	t.Run("healthy keyword is not flagged", func(t *testing.T) {
		_, flagged := judge(KeywordPerformance{
			KeywordText: "k", Impressions: 1000, Clicks: 50, Cost: 120.5, Conversions: 3,
		})
		assert.False(t, flagged)
	})
}

func TestUnderperformingKeywordsGenerate(t *testing.T) {
	store := &memStore{
		campaigns: []Campaign{
			{ID: 1, Name: "C1"},
			{ID: 2, Name: "C2"},
		},
		perf: map[int64][]KeywordPerformance{
			1: {
				{KeywordText: "dead keyword", Impressions: 300, Clicks: 0},
				{KeywordText: "healthy", Impressions: 300, Clicks: 30, Conversions: 2},
			},
			2: {
				{KeywordText: "money pit", Impressions: 200, Clicks: 20, Cost: 99, Conversions: 0},
			},
		},
	}
	sink := &memSink{}
	g, err := New("u", Deps{Store: store, Perf: store, Sink: sink, Analyst: &mockAnalyst{}, Workers: 2})
	require.NoError(t, err)

	err = g.Generate(context.Background(), Options{NumCampaigns: 5})
	require.NoError(t, err)

	recs := sink.all()
	require.Len(t, recs, 2)
	texts := map[string]bool{}
	for _, r := range recs {
		texts[r.KeywordText] = true
		assert.Equal(t, "underperforming_keywords", r.Kind)
		assert.Equal(t, SeverityFix, r.Severity)
		assert.Equal(t, StatePending, r.State)
	}
	assert.True(t, texts["dead keyword"])
	assert.True(t, texts["money pit"])
}

func TestUnderperformingKeywordsStoreFailure(t *testing.T) {
	g, err := New("u", Deps{
		Store:   &memStore{failCampaigns: true},
		Perf:    &memStore{},
		Sink:    &memSink{},
		Analyst: &mockAnalyst{},
	})
	require.NoError(t, err)
	assert.Error(t, g.Generate(context.Background(), Options{NumCampaigns: 1}))
}
