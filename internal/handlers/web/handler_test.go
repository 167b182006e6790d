package web_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/1is1/dota-stat-calculator/internal/chart"
	"github.com/1is1/dota-stat-calculator/internal/entities"
	"github.com/1is1/dota-stat-calculator/internal/errors"
	"github.com/1is1/dota-stat-calculator/internal/handlers/web"
	"github.com/1is1/dota-stat-calculator/internal/orchestrators/comparison"
	comparisonmock "github.com/1is1/dota-stat-calculator/internal/orchestrators/comparison/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *comparisonmock.MockService
	handler     http.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = comparisonmock.NewMockService(s.ctrl)

	handler, err := web.NewHandler(&web.Config{
		Service:  s.mockService,
		Renderer: chart.NewRenderer(nil),
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func rosterHeroes() []entities.Hero {
	return []entities.Hero{
		{ID: "anti-mage", Name: "Anti-Mage", PrimaryAttribute: entities.PrimaryAttributeAgility,
			Base: entities.BaseStats{Str: 19, Agi: 24, HP: 538, DmgMin: 53, DmgMax: 57}},
		{ID: "axe", Name: "Axe", PrimaryAttribute: entities.PrimaryAttributeStrength,
			Base: entities.BaseStats{Str: 25, Agi: 20, HP: 670, DmgMin: 49, DmgMax: 53}},
	}
}

// compareOutput builds a plausible two-series comparison result without
// involving the real calculator.
func compareOutput() *comparison.CompareHeroesOutput {
	mkSeries := func(id, name string, base float64) entities.Series {
		points := make([]entities.Point, 0, entities.MaxLevel)
		for lvl := 1; lvl <= entities.MaxLevel; lvl++ {
			points = append(points, entities.Point{Level: lvl, Value: base + float64(lvl)*12})
		}
		return entities.Series{HeroID: id, Name: name, Points: points}
	}

	return &comparison.CompareHeroesOutput{
		Series:  []entities.Series{mkSeries("anti-mage", "Anti-Mage", 90), mkSeries("axe", "Axe", 70)},
		Ranking: []comparison.RankingEntry{{HeroID: "anti-mage", Name: "Anti-Mage", Value: 450}, {HeroID: "axe", Name: "Axe", Value: 430}},
		Metric:  entities.MetricDPS,
		Level:   30,
		YLabel:  "Damage / Second",
		Step:    25,
	}
}

func (s *HandlerTestSuite) TestIndexPage() {
	s.mockService.EXPECT().
		ListHeroes(gomock.Any(), &comparison.ListHeroesInput{}).
		Return(&comparison.ListHeroesOutput{Heroes: rosterHeroes()}, nil)

	rec := s.get("/")

	s.Assert().Equal(http.StatusOK, rec.Code)
	s.Assert().Contains(rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	s.Assert().Contains(body, "Anti-Mage")
	s.Assert().Contains(body, "Axe")
	s.Assert().Contains(body, "Pick one or more heroes")
}

func (s *HandlerTestSuite) TestIndexPageWithSelection() {
	s.mockService.EXPECT().
		ListHeroes(gomock.Any(), &comparison.ListHeroesInput{}).
		Return(&comparison.ListHeroesOutput{Heroes: rosterHeroes()}, nil)
	s.mockService.EXPECT().
		CompareHeroes(gomock.Any(), &comparison.CompareHeroesInput{
			HeroIDs: []string{"anti-mage", "axe"},
			Metric:  entities.MetricDPS,
			Level:   30,
		}).
		Return(compareOutput(), nil)

	rec := s.get("/?ids=anti-mage,axe&metric=dps&level=30")

	s.Assert().Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	s.Assert().Contains(body, "/chart.svg?ids=anti-mage%2Caxe&amp;level=30&amp;metric=dps")
	s.Assert().Contains(body, "Damage / Second at level 30")
	// Selection survives the round trip as checked boxes.
	s.Assert().Contains(body, `value="anti-mage" checked`)
}

func (s *HandlerTestSuite) TestIndexPageSearchFilters() {
	s.mockService.EXPECT().
		ListHeroes(gomock.Any(), &comparison.ListHeroesInput{Search: "mage"}).
		Return(&comparison.ListHeroesOutput{Heroes: rosterHeroes()[:1]}, nil)

	rec := s.get("/?q=mage")

	s.Assert().Equal(http.StatusOK, rec.Code)
	s.Assert().Contains(rec.Body.String(), "Anti-Mage")
	s.Assert().NotContains(rec.Body.String(), `value="axe"`)
}

func (s *HandlerTestSuite) TestListHeroesJSON() {
	s.mockService.EXPECT().
		ListHeroes(gomock.Any(), &comparison.ListHeroesInput{Search: "axe"}).
		Return(&comparison.ListHeroesOutput{Heroes: rosterHeroes()[1:]}, nil)

	rec := s.get("/api/v1alpha1/heroes?q=axe")

	s.Assert().Equal(http.StatusOK, rec.Code)
	s.Assert().Contains(rec.Header().Get("Content-Type"), "application/json")

	var payload struct {
		Heroes []entities.Hero `json:"heroes"`
		Count  int             `json:"count"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &payload))
	s.Assert().Equal(1, payload.Count)
	s.Require().Len(payload.Heroes, 1)
	s.Assert().Equal("axe", payload.Heroes[0].ID)
}

func (s *HandlerTestSuite) TestHeroStatsJSON() {
	hero := rosterHeroes()[1]
	s.mockService.EXPECT().
		GetHeroStats(gomock.Any(), &comparison.GetHeroStatsInput{HeroID: "axe", Level: 12}).
		Return(&comparison.GetHeroStatsOutput{
			Hero:  &hero,
			Stats: entities.DerivedStats{Level: 12, HP: 1200},
		}, nil)

	rec := s.get("/api/v1alpha1/heroes/axe/stats?level=12")

	s.Assert().Equal(http.StatusOK, rec.Code)

	var payload struct {
		Hero  entities.Hero         `json:"hero"`
		Stats entities.DerivedStats `json:"stats"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &payload))
	s.Assert().Equal("axe", payload.Hero.ID)
	s.Assert().Equal(12, payload.Stats.Level)
	s.Assert().InDelta(1200.0, payload.Stats.HP, 1e-9)
}

func (s *HandlerTestSuite) TestHeroStatsNotFound() {
	s.mockService.EXPECT().
		GetHeroStats(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFoundf("hero %s not found", "ghost"))

	rec := s.get("/api/v1alpha1/heroes/ghost/stats")

	s.Assert().Equal(http.StatusNotFound, rec.Code)

	var payload map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &payload))
	s.Assert().Equal("NOT_FOUND", payload["code"])
}

func (s *HandlerTestSuite) TestHeroStatsRejectsMalformedLevel() {
	rec := s.get("/api/v1alpha1/heroes/axe/stats?level=potato")

	s.Assert().Equal(http.StatusBadRequest, rec.Code)

	var payload map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &payload))
	s.Assert().Equal("INVALID_ARGUMENT", payload["code"])
}

func (s *HandlerTestSuite) TestCompareJSON() {
	s.mockService.EXPECT().
		CompareHeroes(gomock.Any(), &comparison.CompareHeroesInput{
			HeroIDs: []string{"anti-mage", "axe"},
			Metric:  entities.MetricDPS,
			Level:   25,
		}).
		Return(compareOutput(), nil)

	rec := s.get("/api/v1alpha1/compare?ids=anti-mage,axe&metric=dps&level=25")

	s.Assert().Equal(http.StatusOK, rec.Code)

	var payload struct {
		Metric  string                    `json:"metric"`
		Label   string                    `json:"label"`
		Series  []entities.Series         `json:"series"`
		Ranking []comparison.RankingEntry `json:"ranking"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &payload))
	s.Assert().Equal("dps", payload.Metric)
	s.Assert().Equal("Damage / Second", payload.Label)
	s.Require().Len(payload.Series, 2)
	s.Assert().Len(payload.Series[0].Points, 30)
	s.Require().Len(payload.Ranking, 2)
	s.Assert().Equal("Anti-Mage", payload.Ranking[0].Name)
}

// TestCompareAcceptsRepeatedIDs covers the shape the page form submits:
// one ids parameter per checkbox instead of a comma list.
func (s *HandlerTestSuite) TestCompareAcceptsRepeatedIDs() {
	s.mockService.EXPECT().
		CompareHeroes(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *comparison.CompareHeroesInput) (*comparison.CompareHeroesOutput, error) {
			s.Assert().Equal([]string{"anti-mage", "axe"}, input.HeroIDs)
			return compareOutput(), nil
		})

	rec := s.get("/api/v1alpha1/compare?ids=anti-mage&ids=axe")

	s.Assert().Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestCompareRejectsUnknownMetric() {
	rec := s.get("/api/v1alpha1/compare?ids=axe&metric=nonsense")

	s.Assert().Equal(http.StatusBadRequest, rec.Code)
	s.Assert().Contains(rec.Body.String(), "unknown metric")
}

func (s *HandlerTestSuite) TestCompareCustomRangePassedThrough() {
	s.mockService.EXPECT().
		CompareHeroes(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *comparison.CompareHeroesInput) (*comparison.CompareHeroesOutput, error) {
			s.Assert().Equal(5, input.LevelRange.From)
			s.Assert().Equal(15, input.LevelRange.To)
			return compareOutput(), nil
		})

	rec := s.get("/api/v1alpha1/compare?ids=axe&from=5&to=15")

	s.Assert().Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestChartSVG() {
	s.mockService.EXPECT().
		CompareHeroes(gomock.Any(), gomock.Any()).
		Return(compareOutput(), nil)

	rec := s.get("/chart.svg?ids=anti-mage,axe&metric=dps")

	s.Assert().Equal(http.StatusOK, rec.Code)
	s.Assert().Equal("image/svg+xml", rec.Header().Get("Content-Type"))
	s.Assert().Equal("no-store", rec.Header().Get("Cache-Control"))
	s.Assert().True(strings.Contains(rec.Body.String(), "<svg"), "body should be an SVG document")
}

func (s *HandlerTestSuite) TestChartSVGValidationError() {
	s.mockService.EXPECT().
		CompareHeroes(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidArgument("at least one hero is required"))

	rec := s.get("/chart.svg")

	s.Assert().Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestHealthz() {
	rec := s.get("/healthz")

	s.Assert().Equal(http.StatusOK, rec.Code)
	s.Assert().Contains(rec.Body.String(), "ok")
}

func (s *HandlerTestSuite) TestMethodNotAllowed() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1alpha1/heroes", nil)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	s.Assert().Equal(http.StatusMethodNotAllowed, rec.Code)
}

func TestNewHandler(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		handler, err := web.NewHandler(nil)
		if handler != nil || err == nil {
			t.Fatalf("expected error, got handler=%v err=%v", handler, err)
		}
	})

	t.Run("missing service", func(t *testing.T) {
		handler, err := web.NewHandler(&web.Config{Renderer: chart.NewRenderer(nil)})
		if handler != nil || err == nil {
			t.Fatalf("expected error, got handler=%v err=%v", handler, err)
		}
		if !errors.IsInvalidArgument(err) {
			t.Fatalf("expected InvalidArgument, got %v", err)
		}
	})
}
