package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/1is1/dota-stat-calculator/internal/chart"
	"github.com/1is1/dota-stat-calculator/internal/config"
	"github.com/1is1/dota-stat-calculator/internal/engine"
	"github.com/1is1/dota-stat-calculator/internal/entities"
	"github.com/1is1/dota-stat-calculator/internal/orchestrators/comparison"
	"github.com/1is1/dota-stat-calculator/internal/repositories/hero"
)

var (
	renderIDs     string
	renderMetric  string
	renderFrom    int
	renderTo      int
	renderFormat  string
	renderOut     string
	renderDataset string
	renderWidth   int
	renderHeight  int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a comparison chart to a file",
	Long: `Render computes the chosen metric for the named heroes across a level
range and writes the chart image, without running the server.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderIDs, "ids", "", "comma-separated hero ids (required)")
	renderCmd.Flags().StringVar(&renderMetric, "metric", "dps", "metric to plot")
	renderCmd.Flags().IntVar(&renderFrom, "from", entities.MinLevel, "first level to plot")
	renderCmd.Flags().IntVar(&renderTo, "to", entities.MaxLevel, "last level to plot")
	renderCmd.Flags().StringVar(&renderFormat, "format", "svg", "output format: svg or png")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "output path (default chart.<format>)")
	renderCmd.Flags().StringVar(&renderDataset, "dataset", "", "snapshot path (overrides HEROSTATS_DATASET_PATH)")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "image width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "image height in pixels")
	_ = renderCmd.MarkFlagRequired("ids")
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg := config.LoadFromEnv()
	setupLogging(cfg)

	format := strings.ToLower(renderFormat)
	if format != "svg" && format != "png" {
		return fmt.Errorf("unknown format %q (want svg or png)", renderFormat)
	}
	outPath := renderOut
	if outPath == "" {
		outPath = "chart." + format
	}

	svc, err := buildLocalService(cfg, renderDataset)
	if err != nil {
		return err
	}

	out, err := svc.CompareHeroes(cmd.Context(), &comparison.CompareHeroesInput{
		HeroIDs:    splitList(renderIDs),
		Metric:     entities.Metric(renderMetric),
		LevelRange: engine.LevelRange{From: renderFrom, To: renderTo},
	})
	if err != nil {
		return err
	}

	plan, err := chart.BuildPlan(out.Series, out.YLabel, out.Step)
	if err != nil {
		return err
	}

	f, err := os.Create(outPath) // #nosec G304 - path is an operator-supplied flag
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer func() { _ = f.Close() }()

	renderer := chart.NewRenderer(&chart.RendererConfig{Width: renderWidth, Height: renderHeight})
	switch format {
	case "png":
		err = renderer.RenderPNG(plan, f)
	default:
		err = renderer.RenderSVG(plan, f)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Rendered %d series to %s\n", len(plan.Series), outPath)
	return nil
}

// buildLocalService wires an in-memory repository and the formula engine into
// a comparison service for the offline commands.
func buildLocalService(cfg config.Config, datasetFlag string) (comparison.Service, error) {
	path := datasetFlag
	if path == "" {
		path = cfg.DatasetPath
	}
	snap, err := loadSnapshot(path)
	if err != nil {
		return nil, err
	}

	repo, err := hero.NewInMemoryFromSnapshot(snap)
	if err != nil {
		return nil, err
	}

	calc, err := newCalculator(cfg.ConstantsPath)
	if err != nil {
		return nil, err
	}

	return comparison.NewOrchestrator(&comparison.Config{
		HeroRepo:   repo,
		Calculator: calc,
	})
}

// splitList parses a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
