package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1is1/dota-stat-calculator/internal/config"
	"github.com/1is1/dota-stat-calculator/internal/dataset"
	"github.com/1is1/dota-stat-calculator/internal/pkg/clock"
	"github.com/1is1/dota-stat-calculator/internal/pkg/idgen"
	redisclient "github.com/1is1/dota-stat-calculator/internal/redis"
	"github.com/1is1/dota-stat-calculator/internal/repositories/hero"
	"github.com/1is1/dota-stat-calculator/internal/scraper"
)

var (
	scrapeSource     string
	scrapeOut        string
	scrapeStoreRedis bool
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape a hero attribute table into a snapshot",
	Long: `Scrape parses the hero attribute table from a wiki URL or a saved HTML
file and writes the snapshot JSON the serve and render commands consume.
With --store-redis the heroes also go to Redis (HEROSTATS_REDIS_ADDR).`,
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().StringVar(&scrapeSource, "source", "", "wiki URL or local HTML file (required)")
	scrapeCmd.Flags().StringVar(&scrapeOut, "out", "heroes.json", "snapshot output path, empty to skip writing the file")
	scrapeCmd.Flags().BoolVar(&scrapeStoreRedis, "store-redis", false, "also store the heroes in Redis")
	_ = scrapeCmd.MarkFlagRequired("source")
}

func runScrape(cmd *cobra.Command, _ []string) error {
	cfg := config.LoadFromEnv()
	setupLogging(cfg)

	s, err := scraper.New(&scraper.Config{
		Clock: clock.New(),
		IDGen: idgen.NewUUID("scrape"),
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	snap, err := s.Scrape(ctx, scrapeSource)
	if err != nil {
		return err
	}

	if scrapeOut != "" {
		if err := dataset.Write(scrapeOut, snap); err != nil {
			return err
		}
		fmt.Printf("Wrote %d heroes to %s\n", len(snap.Heroes), scrapeOut)
	}

	if scrapeStoreRedis {
		if cfg.RedisAddr == "" {
			return errors.New("--store-redis requires HEROSTATS_REDIS_ADDR")
		}
		client, err := redisclient.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return err
		}
		repo, err := hero.NewRedisRepository(&hero.Config{Client: client})
		if err != nil {
			return err
		}
		if err := repo.PutAll(ctx, snap.HeroList()); err != nil {
			return err
		}
		fmt.Printf("Stored %d heroes in Redis at %s\n", len(snap.Heroes), cfg.RedisAddr)
	}

	return nil
}
