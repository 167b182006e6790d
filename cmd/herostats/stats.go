package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1is1/dota-stat-calculator/internal/config"
	"github.com/1is1/dota-stat-calculator/internal/entities"
	"github.com/1is1/dota-stat-calculator/internal/orchestrators/comparison"
)

var (
	statsID      string
	statsLevel   int
	statsDataset string
	statsJSON    bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print one hero's derived stats at a level",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsID, "id", "", "hero id (required)")
	statsCmd.Flags().IntVar(&statsLevel, "level", entities.MinLevel, "level to compute")
	statsCmd.Flags().StringVar(&statsDataset, "dataset", "", "snapshot path (overrides HEROSTATS_DATASET_PATH)")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
	_ = statsCmd.MarkFlagRequired("id")
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg := config.LoadFromEnv()
	setupLogging(cfg)

	svc, err := buildLocalService(cfg, statsDataset)
	if err != nil {
		return err
	}

	out, err := svc.GetHeroStats(cmd.Context(), &comparison.GetHeroStatsInput{
		HeroID: statsID,
		Level:  statsLevel,
	})
	if err != nil {
		return err
	}

	if statsJSON {
		data, err := json.MarshalIndent(map[string]any{
			"hero":  out.Hero,
			"stats": out.Stats,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	s := out.Stats
	fmt.Printf("%s (%s) at level %d\n", out.Hero.Name, out.Hero.PrimaryAttribute, s.Level)
	fmt.Printf("  Strength:         %.1f\n", s.Strength)
	fmt.Printf("  Agility:          %.1f\n", s.Agility)
	fmt.Printf("  Intelligence:     %.1f\n", s.Intelligence)
	fmt.Printf("  HP:               %.0f\n", s.HP)
	fmt.Printf("  Effective HP:     %.0f\n", s.EffectiveHP)
	fmt.Printf("  Armor:            %.2f\n", s.Armor)
	fmt.Printf("  Damage reduction: %.1f%%\n", s.DamageReduction*100)
	fmt.Printf("  Attack speed:     %.0f\n", s.AttackSpeed)
	fmt.Printf("  Attacks/second:   %.2f\n", s.AttacksPerSecond)
	fmt.Printf("  Average damage:   %.1f\n", s.AvgDamage)
	fmt.Printf("  DPS:              %.1f\n", s.DPS)
	return nil
}
