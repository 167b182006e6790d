// Package web serves the hero comparison page, its JSON API, and the
// rendered chart image.
package web

import (
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/1is1/dota-stat-calculator/internal/chart"
	"github.com/1is1/dota-stat-calculator/internal/entities"
	"github.com/1is1/dota-stat-calculator/internal/errors"
	"github.com/1is1/dota-stat-calculator/internal/orchestrators/comparison"
)

// ChartRenderer draws a chart plan. The web surface only ever needs SVG;
// PNG stays a CLI concern.
type ChartRenderer interface {
	RenderSVG(plan chart.Plan, w io.Writer) error
}

// Config holds dependencies for the handler
type Config struct {
	Service  comparison.Service
	Renderer ChartRenderer
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.Renderer == nil {
		vb.RequiredField("Renderer")
	}

	return vb.Build()
}

// Handler routes comparison page and API requests
type Handler struct {
	service  comparison.Service
	renderer ChartRenderer
}

// NewHandler creates the HTTP handler with the given configuration
func NewHandler(cfg *Config) (http.Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	h := &Handler{
		service:  cfg.Service,
		renderer: cfg.Renderer,
	}
	return h.routes(), nil
}

func (h *Handler) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("GET /api/v1alpha1/heroes", h.handleListHeroes)
	mux.HandleFunc("GET /api/v1alpha1/heroes/{id}/stats", h.handleHeroStats)
	mux.HandleFunc("GET /api/v1alpha1/compare", h.handleCompare)
	mux.HandleFunc("GET /chart.svg", h.handleChartSVG)
	mux.HandleFunc("GET /healthz", h.handleHealthz)
	return mux
}

// pageData feeds the index template. Everything is precomputed here so the
// template stays a dumb printer.
type pageData struct {
	Search   string
	Heroes   []heroOption
	Metrics  []metricOption
	Level    int
	MaxLevel int

	// Comparison results for the current selection; empty until the user
	// picks at least one hero.
	HasSelection bool
	MetricLabel  string
	Ranking      []comparison.RankingEntry
	ChartURL     string

	// LoadError carries a human-readable message when the comparison
	// itself failed; the page still renders the selection controls.
	LoadError string
}

type heroOption struct {
	ID      string
	Name    string
	Checked bool
}

type metricOption struct {
	Value    string
	Label    string
	Selected bool
}

// handleIndex renders the comparison page. All state lives in the query
// string, so the page is bookmarkable and needs no session.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	search := query.Get("q")
	ids := idsParam(query)
	level := intParam(query, "level", entities.MaxLevel)

	metric := entities.MetricDPS
	if m, ok := entities.ParseMetric(query.Get("metric")); ok {
		metric = m
	}

	listOut, err := h.service.ListHeroes(ctx, &comparison.ListHeroesInput{Search: search})
	if err != nil {
		writeError(w, err)
		return
	}

	data := pageData{
		Search:   search,
		Level:    level,
		MaxLevel: entities.MaxLevel,
	}

	checked := make(map[string]bool, len(ids))
	for _, id := range ids {
		checked[id] = true
	}
	for _, hero := range listOut.Heroes {
		data.Heroes = append(data.Heroes, heroOption{
			ID:      hero.ID,
			Name:    hero.Name,
			Checked: checked[hero.ID],
		})
	}

	for _, m := range entities.Metrics() {
		data.Metrics = append(data.Metrics, metricOption{
			Value:    string(m),
			Label:    m.Label(),
			Selected: m == metric,
		})
	}

	if len(ids) > 0 {
		compareOut, err := h.service.CompareHeroes(ctx, &comparison.CompareHeroesInput{
			HeroIDs: ids,
			Metric:  metric,
			Level:   level,
		})
		if err != nil {
			data.LoadError = errors.GetMessage(err)
		} else {
			data.HasSelection = true
			data.MetricLabel = compareOut.YLabel
			data.Ranking = compareOut.Ranking
			data.ChartURL = chartURL(ids, metric, level)
		}
	}

	renderPage(w, data)
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// chartURL assembles the image URL for the current selection.
func chartURL(ids []string, metric entities.Metric, level int) string {
	v := url.Values{}
	v.Set("ids", joinIDs(ids))
	v.Set("metric", string(metric))
	v.Set("level", strconv.Itoa(level))
	return "/chart.svg?" + v.Encode()
}
