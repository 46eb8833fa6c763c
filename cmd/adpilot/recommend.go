package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"adpilot/internal/config"
	"adpilot/internal/copygen"
	"adpilot/internal/logging"
	"adpilot/internal/recommend"
)

var (
	recommendType  string
	numCampaigns   int
	adsPerCampaign int
	keywordsPerAd  int
)

// recommendCmd runs one recommendation generator over the local campaign
// snapshot and appends its findings to the workspace.
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate keyword recommendations",
	Long: `Runs a recommendation generator over the campaign snapshot in
.adpilot/campaigns.yaml and appends its findings to
.adpilot/recommendations.json.

Generator types:
  u, underperforming_keywords  flag keywords with poor performance metrics
  n, new_keywords              propose additional keywords per ad
  o, optimised_keywords        flag existing keywords that drift off-theme

Example:
  adpilot recommend --type u`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVarP(&recommendType, "type", "r", "u", "Generator type (u|n|o or full name)")
	recommendCmd.Flags().IntVar(&numCampaigns, "num-campaigns", 0, "Campaigns to process (0 = config default)")
	recommendCmd.Flags().IntVar(&adsPerCampaign, "ads-per-campaign", 0, "Ads per campaign (0 = config default)")
	recommendCmd.Flags().IntVar(&keywordsPerAd, "keywords-per-ad", 0, "Keywords per ad (0 = config default)")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Received shutdown signal")
		cancel()
	}()

	ws := resolveWorkspace()
	cfg, err := config.Load(ws)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logging.Initialize(ws); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.CloseAll()

	// Long runs pick up logging config edits without a restart.
	stopWatch := make(chan struct{})
	defer close(stopWatch)
	go func() {
		if err := config.Watch(ws, stopWatch, nil); err != nil {
			logger.Warn("config watcher stopped", zap.Error(err))
		}
	}()

	analyst, err := copygen.NewClient(ctx, cfg.Generation.APIKey, cfg.Generation.Model)
	if err != nil {
		return fmt.Errorf("failed to create copy client: %w", err)
	}

	store, err := openWorkspaceStore(ws)
	if err != nil {
		return fmt.Errorf("failed to open campaign snapshot: %w", err)
	}
	sink := newFileSink(ws)

	gen, err := recommend.New(recommendType, recommend.Deps{
		Store:      store,
		Perf:       store,
		Sink:       sink,
		Analyst:    analyst,
		MinFitness: cfg.Recommend.MinFitness,
		Workers:    cfg.Recommend.Workers,
	})
	if err != nil {
		return err
	}

	opts := recommend.Options{
		NumCampaigns:   numCampaigns,
		AdsPerCampaign: adsPerCampaign,
		KeywordsPerAd:  keywordsPerAd,
	}
	if opts.NumCampaigns <= 0 {
		opts.NumCampaigns = cfg.Recommend.NumCampaigns
	}
	if opts.AdsPerCampaign <= 0 {
		opts.AdsPerCampaign = cfg.Recommend.AdsPerCampaign
	}
	if opts.KeywordsPerAd <= 0 {
		opts.KeywordsPerAd = cfg.Recommend.KeywordsPerAd
	}

	logger.Info("Running recommendation generator",
		zap.String("type", recommendType),
		zap.Int("campaigns", opts.NumCampaigns))
	logging.Recommend("run start: type=%s campaigns=%d", recommendType, opts.NumCampaigns)

	if err := gen.Generate(ctx, opts); err != nil {
		logging.RecommendError("run failed: %v", err)
		return fmt.Errorf("recommendation run failed: %w", err)
	}

	saved, err := sink.Flush()
	if err != nil {
		return fmt.Errorf("failed to write recommendations: %w", err)
	}
	logger.Info("Recommendation run complete", zap.Int("saved", saved))
	fmt.Printf("Saved %d recommendations to %s\n", saved, sinkPath(ws))
	return nil
}
