// Package scraper parses a hero attribute HTML table into a dataset
// snapshot. The source is either a wiki URL or a saved local page; the
// output is the same JSON artifact the rest of the system loads read-only.
package scraper

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/1is1/dota-stat-calculator/internal/dataset"
	"github.com/1is1/dota-stat-calculator/internal/errors"
	"github.com/1is1/dota-stat-calculator/internal/pkg/clock"
	"github.com/1is1/dota-stat-calculator/internal/pkg/idgen"
)

const (
	// defaultUserAgent keeps picky wiki frontends from rejecting the
	// request outright.
	defaultUserAgent = "Mozilla/5.0 (compatible; herostats/1.0; +https://github.com/1is1/dota-stat-calculator)"

	defaultHTTPTimeout = 30 * time.Second
)

// Config holds the dependencies for the scraper.
type Config struct {
	// HTTPClient is optional; a client with a 30s timeout is used when nil.
	HTTPClient *http.Client
	// UserAgent is optional; a browser-shaped default is used when empty.
	UserAgent string
	Clock     clock.Clock
	IDGen     idgen.Generator
}

// Validate ensures all required dependencies are provided.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGen == nil {
		vb.RequiredField("IDGen")
	}
	return vb.Build()
}

// Scraper fetches and parses hero attribute tables.
type Scraper struct {
	httpClient *http.Client
	userAgent  string
	clock      clock.Clock
	idGen      idgen.Generator
}

// New creates a scraper with the provided dependencies.
func New(cfg *Config) (*Scraper, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Scraper{
		httpClient: httpClient,
		userAgent:  userAgent,
		clock:      cfg.Clock,
		idGen:      cfg.IDGen,
	}, nil
}

// Scrape loads the source document, extracts the hero attribute table, and
// returns the snapshot with heroes sorted by name.
func (s *Scraper) Scrape(ctx context.Context, source string) (*dataset.Snapshot, error) {
	runID := s.idGen.Generate()
	started := s.clock.Now()
	slog.Info("scrape started", "run_id", runID, "source", source)

	doc, resolvedSource, err := s.loadDocument(ctx, source)
	if err != nil {
		return nil, err
	}

	heroes, err := parseHeroTable(doc)
	if err != nil {
		return nil, err
	}

	snap := &dataset.Snapshot{
		Source:    resolvedSource,
		Count:     len(heroes),
		ScrapedAt: s.clock.Now(),
		Heroes:    heroes,
	}

	slog.Info("scrape finished",
		"run_id", runID,
		"heroes", snap.Count,
		"duration", s.clock.Now().Sub(started))
	return snap, nil
}

// loadDocument reads HTML from a URL or a local file. For files the
// resolved absolute path goes into the snapshot metadata, so the artifact
// records what was actually scraped.
func (s *Scraper) loadDocument(ctx context.Context, source string) (*html.Node, string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, "", errors.WrapWithCodef(err, errors.CodeInvalidArgument,
				"invalid source URL %s", source)
		}
		req.Header.Set("User-Agent", s.userAgent)

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return nil, "", errors.WrapWithCodef(err, errors.CodeUnavailable,
				"failed to fetch %s", source)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			return nil, "", errors.Unavailablef("source %s returned status %d", source, resp.StatusCode)
		}

		doc, err := html.Parse(resp.Body)
		if err != nil {
			return nil, "", errors.Wrapf(err, "failed to parse HTML from %s", source)
		}
		return doc, source, nil
	}

	f, err := os.Open(source) // #nosec G304 - source is an operator-supplied path
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to open local HTML file %s", source)
	}
	defer func() { _ = f.Close() }()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to parse HTML from %s", source)
	}

	resolved, err := filepath.Abs(source)
	if err != nil {
		resolved = source
	}
	return doc, resolved, nil
}
