package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"adpilot/internal/domain"
	"adpilot/internal/recommend"
)

// The CLI reads campaigns from a YAML snapshot exported by the product's
// persistence layer rather than talking to a database directly. Performance
// rows ride along in the same file.

type campaignFile struct {
	Campaigns []campaignRecord `yaml:"campaigns"`
}

type campaignRecord struct {
	ID               int64        `yaml:"id"`
	Name             string       `yaml:"name"`
	Content          string       `yaml:"content"`
	BusinessDesc     string       `yaml:"business_desc"`
	AccountID        string       `yaml:"account_id"`
	RemoteCampaignID string       `yaml:"remote_campaign_id"`
	Ads              []adRecord   `yaml:"ads"`
	Performance      []perfRecord `yaml:"performance"`
}

type adRecord struct {
	ID        int64           `yaml:"id"`
	AdGroupID string          `yaml:"ad_group_id"`
	Keywords  []keywordRecord `yaml:"keywords"`
}

type keywordRecord struct {
	ID   int64  `yaml:"id"`
	Text string `yaml:"text"`
}

type perfRecord struct {
	AdGroupID   string  `yaml:"ad_group_id"`
	KeywordText string  `yaml:"keyword_text"`
	Clicks      int64   `yaml:"clicks"`
	Impressions int64   `yaml:"impressions"`
	Cost        float64 `yaml:"cost"`
	Conversions float64 `yaml:"conversions"`
}

// workspaceStore serves the recommend package from the snapshot file. It is
// read-only and safe for concurrent use.
type workspaceStore struct {
	campaigns []campaignRecord
	byID      map[int64]*campaignRecord
	adsByID   map[int64]*adRecord
}

func snapshotPath(ws string) string {
	return filepath.Join(ws, ".adpilot", "campaigns.yaml")
}

func openWorkspaceStore(ws string) (*workspaceStore, error) {
	data, err := os.ReadFile(snapshotPath(ws))
	if err != nil {
		return nil, fmt.Errorf("failed to read campaign snapshot: %w", err)
	}
	var file campaignFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse campaign snapshot: %w", err)
	}

	s := &workspaceStore{
		campaigns: file.Campaigns,
		byID:      make(map[int64]*campaignRecord, len(file.Campaigns)),
		adsByID:   make(map[int64]*adRecord),
	}
	for i := range s.campaigns {
		c := &s.campaigns[i]
		s.byID[c.ID] = c
		for j := range c.Ads {
			s.adsByID[c.Ads[j].ID] = &c.Ads[j]
		}
	}
	return s, nil
}

func (s *workspaceStore) Campaigns(ctx context.Context, limit int) ([]recommend.Campaign, error) {
	out := make([]recommend.Campaign, 0, limit)
	for _, c := range s.campaigns {
		if len(out) >= limit {
			break
		}
		out = append(out, recommend.Campaign{
			ID:               c.ID,
			Name:             c.Name,
			Content:          c.Content,
			BusinessDesc:     c.BusinessDesc,
			AccountID:        c.AccountID,
			RemoteCampaignID: c.RemoteCampaignID,
		})
	}
	return out, nil
}

func (s *workspaceStore) AdsForCampaign(ctx context.Context, campaignID int64, limit int) ([]recommend.AdRef, error) {
	c, ok := s.byID[campaignID]
	if !ok {
		return nil, fmt.Errorf("unknown campaign %d", campaignID)
	}
	out := make([]recommend.AdRef, 0, limit)
	for _, ad := range c.Ads {
		if len(out) >= limit {
			break
		}
		out = append(out, recommend.AdRef{ID: ad.ID, AdGroupID: ad.AdGroupID})
	}
	return out, nil
}

func (s *workspaceStore) KeywordsForAd(ctx context.Context, adID int64, limit int) ([]domain.Keyword, error) {
	ad, ok := s.adsByID[adID]
	if !ok {
		return nil, fmt.Errorf("unknown ad %d", adID)
	}
	out := make([]domain.Keyword, 0, limit)
	for _, kw := range ad.Keywords {
		if len(out) >= limit {
			break
		}
		out = append(out, domain.Keyword{ID: kw.ID, Text: kw.Text})
	}
	return out, nil
}

func (s *workspaceStore) KeywordPerformance(ctx context.Context, campaign recommend.Campaign) ([]recommend.KeywordPerformance, error) {
	c, ok := s.byID[campaign.ID]
	if !ok {
		return nil, fmt.Errorf("unknown campaign %d", campaign.ID)
	}
	out := make([]recommend.KeywordPerformance, 0, len(c.Performance))
	for _, p := range c.Performance {
		out = append(out, recommend.KeywordPerformance{
			AdGroupID:   p.AdGroupID,
			KeywordText: p.KeywordText,
			Clicks:      p.Clicks,
			Impressions: p.Impressions,
			Cost:        p.Cost,
			Conversions: p.Conversions,
		})
	}
	return out, nil
}

// fileSink accumulates recommendations in memory and appends them to the
// workspace's recommendations file on Flush. Generators save from multiple
// goroutines.
type fileSink struct {
	mu   sync.Mutex
	ws   string
	recs []recommend.Recommendation
}

func sinkPath(ws string) string {
	return filepath.Join(ws, ".adpilot", "recommendations.json")
}

func newFileSink(ws string) *fileSink {
	return &fileSink{ws: ws}
}

func (s *fileSink) SaveRecommendation(ctx context.Context, rec recommend.Recommendation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs = append(s.recs, rec)
	return nil
}

// Flush appends the accumulated recommendations to the workspace file and
// returns how many were written.
func (s *fileSink) Flush() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := sinkPath(s.ws)
	var existing []recommend.Recommendation
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &existing); err != nil {
			return 0, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	existing = append(existing, s.recs...)
	data, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to marshal recommendations: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, fmt.Errorf("failed to create workspace directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return len(s.recs), nil
}
