package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/1is1/dota-stat-calculator/internal/chart"
	"github.com/1is1/dota-stat-calculator/internal/engine"
	"github.com/1is1/dota-stat-calculator/internal/entities"
	"github.com/1is1/dota-stat-calculator/internal/errors"
	"github.com/1is1/dota-stat-calculator/internal/orchestrators/comparison"
)

// handleListHeroes serves GET /api/v1alpha1/heroes[?q=term].
func (h *Handler) handleListHeroes(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.ListHeroes(r.Context(), &comparison.ListHeroesInput{
		Search: r.URL.Query().Get("q"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"heroes": output.Heroes,
		"count":  len(output.Heroes),
	})
}

// handleHeroStats serves GET /api/v1alpha1/heroes/{id}/stats?level=n.
func (h *Handler) handleHeroStats(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	level, err := optionalIntParam(query, "level")
	if err != nil {
		writeError(w, err)
		return
	}

	output, err := h.service.GetHeroStats(r.Context(), &comparison.GetHeroStatsInput{
		HeroID: r.PathValue("id"),
		Level:  level,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"hero":  output.Hero,
		"stats": output.Stats,
	})
}

// handleCompare serves GET /api/v1alpha1/compare?ids=a,b&metric=dps&level=25.
func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	input, err := compareInput(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	output, err := h.service.CompareHeroes(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"metric":  output.Metric,
		"label":   output.YLabel,
		"level":   output.Level,
		"series":  output.Series,
		"ranking": output.Ranking,
	})
}

// handleChartSVG serves GET /chart.svg with the same query contract as the
// compare endpoint. Every request re-renders from scratch; the no-store
// header keeps intermediaries from serving a stale chart after a rescrape.
func (h *Handler) handleChartSVG(w http.ResponseWriter, r *http.Request) {
	input, err := compareInput(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	output, err := h.service.CompareHeroes(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	plan, err := chart.BuildPlan(output.Series, output.YLabel, output.Step)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	if err := h.renderer.RenderSVG(plan, w); err != nil {
		// The status line is already out; nothing coherent can follow a
		// partial SVG body.
		slog.ErrorContext(r.Context(), "chart render failed", "error", err)
	}
}

// compareInput parses the shared query contract of the compare and chart
// endpoints.
func compareInput(query url.Values) (*comparison.CompareHeroesInput, error) {
	input := &comparison.CompareHeroesInput{
		HeroIDs: idsParam(query),
	}

	if raw := query.Get("metric"); raw != "" {
		metric, ok := entities.ParseMetric(raw)
		if !ok {
			return nil, errors.InvalidArgumentf("unknown metric %q", raw)
		}
		input.Metric = metric
	}

	level, err := optionalIntParam(query, "level")
	if err != nil {
		return nil, err
	}
	input.Level = level

	from, err := optionalIntParam(query, "from")
	if err != nil {
		return nil, err
	}
	to, err := optionalIntParam(query, "to")
	if err != nil {
		return nil, err
	}
	if from != 0 || to != 0 {
		input.LevelRange = engine.LevelRange{From: from, To: to}
	}

	return input, nil
}

// idsParam collects hero ids from the query. The page form submits one
// ids parameter per checkbox; the API documents a comma-separated list.
// Both shapes are accepted, and empty parts are dropped so trailing
// commas stay harmless.
func idsParam(query url.Values) []string {
	var ids []string
	for _, raw := range query["ids"] {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				ids = append(ids, p)
			}
		}
	}
	return ids
}

func joinIDs(ids []string) string {
	return strings.Join(ids, ",")
}

// optionalIntParam parses an integer query parameter, with zero meaning
// absent.
func optionalIntParam(query url.Values, name string) (int, error) {
	raw := query.Get(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidArgumentf("%s must be an integer, got %q", name, raw)
	}
	return v, nil
}

// intParam parses an integer query parameter with a fallback for absent or
// malformed values. Page rendering wants lenient parsing; the API wants
// strict.
func intParam(query url.Values, name string, fallback int) int {
	raw := query.Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps the error's code to an HTTP status and emits a small
// JSON body. Unknown error types surface as 500s with their message
// withheld.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)

	message := errors.GetMessage(err)
	if code == errors.CodeInternal {
		message = "internal error"
	}

	writeJSON(w, code.HTTPStatus(), map[string]any{
		"code":  code.String(),
		"error": message,
	})
}
