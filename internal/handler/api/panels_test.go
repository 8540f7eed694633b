package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalrepo "StorePulse/internal/repository"
	"StorePulse/internal/service/ratelimit"
	"StorePulse/internal/usecase"
	"StorePulse/pkg/cache"
	xlogger "StorePulse/pkg/logger"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type noopMetrics struct{}

func (noopMetrics) RecordPanelCompute(string, float64) {}
func (noopMetrics) RecordDatasetCacheHit(string) {}
func (noopMetrics) RecordDatasetCacheMiss(string) {}
func (noopMetrics) RecordError(string) {}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "console", Output: "stderr"})
	require.NoError(t, err)

	mc := cache.NewMemoryCache()
	t.Cleanup(func() { _ = mc.Close() })

	datasets := internalrepo.NewCachedDatasetRepository(mc, noopMetrics{})
	svc := usecase.NewPanelService(datasets, internalrepo.NewStaticRuleCatalog(), noopMetrics{})
	h := NewPanelsHandler(l, svc, usecase.NewSession(), ratelimit.New())

	e := echo.New()
	h.RegisterRoutes(e)
	return e
}

func doGet(t *testing.T, e *echo.Echo, target string) envelope {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// The envelope always travels over HTTP 200; the inner status carries
	// the outcome.
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestHealthz(t *testing.T) {
	e := newTestServer(t)
	env := doGet(t, e, "/healthz")

	assert.Equal(t, http.StatusOK, env.Status)
}

func TestSessionEndpoint(t *testing.T) {
	e := newTestServer(t)
	env := doGet(t, e, "/api/session")
	require.Equal(t, http.StatusOK, env.Status)

	var info struct {
		ID     string   `json:"id"`
		Panels []string `json:"panels"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &info))
	assert.NotEmpty(t, info.ID)
	assert.Equal(t, []string{"segmentation", "replenishment", "basket", "pricing", "geo"}, info.Panels)
}

func TestSegmentationDefaults(t *testing.T) {
	e := newTestServer(t)
	env := doGet(t, e, "/api/segmentation?count=50")
	require.Equal(t, http.StatusOK, env.Status)

	var view struct {
		Thresholds struct {
			VIPMonetaryMin float64 `json:"vip_monetary_min"`
		} `json:"thresholds"`
		Rows    []json.RawMessage `json:"rows"`
		Summary struct {
			VIPCount    int `json:"vip_count"`
			AtRiskCount int `json:"at_risk_count"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, 3000.0, view.Thresholds.VIPMonetaryMin, "absent thresholds take their defaults")
	assert.Len(t, view.Rows, 50)
	assert.LessOrEqual(t, view.Summary.VIPCount+view.Summary.AtRiskCount, 50)
}

func TestSegmentationRejectsNegativeThreshold(t *testing.T) {
	e := newTestServer(t)
	env := doGet(t, e, "/api/segmentation?vip_monetary_min=-5")

	assert.Equal(t, http.StatusBadRequest, env.Status)

	var verrs []struct {
		Code  string `json:"code"`
		Field string `json:"field"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &verrs))
	require.NotEmpty(t, verrs)
	assert.Equal(t, "ERR_GTE", verrs[0].Code)
}

func TestReplenishmentDefaults(t *testing.T) {
	e := newTestServer(t)
	env := doGet(t, e, "/api/replenishment")
	require.Equal(t, http.StatusOK, env.Status)

	var view struct {
		Params struct {
			BufferPct float64 `json:"buffer_pct"`
		} `json:"params"`
		Rows          []json.RawMessage `json:"rows"`
		TotalOrderQty float64           `json:"total_order_qty"`
		TotalRiskCost float64           `json:"total_risk_cost"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, 10.0, view.Params.BufferPct)
	assert.Len(t, view.Rows, 30)
	assert.Greater(t, view.TotalOrderQty, 0.0)
	assert.GreaterOrEqual(t, view.TotalRiskCost, 0.0)
}

func TestBasketKnownDriver(t *testing.T) {
	e := newTestServer(t)
	env := doGet(t, e, "/api/basket?driver=beer")
	require.Equal(t, http.StatusOK, env.Status)

	var res struct {
		TotalMargin    float64 `json:"total_margin"`
		Strategy       string  `json:"strategy"`
		Recommendation string  `json:"recommendation"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.InDelta(t, 0.80, res.TotalMargin, 1e-12)
	assert.Equal(t, "Loss Leader", res.Strategy)
	assert.Contains(t, res.Recommendation, "Chips")
	assert.Contains(t, res.Recommendation, "5.0x")
	assert.Contains(t, res.Recommendation, "€0.10")
}

func TestBasketMissingDriver(t *testing.T) {
	e := newTestServer(t)
	env := doGet(t, e, "/api/basket")

	assert.Equal(t, http.StatusBadRequest, env.Status)
}

func TestBasketUnknownDriver(t *testing.T) {
	e := newTestServer(t)
	env := doGet(t, e, "/api/basket?driver=wine")

	assert.Equal(t, http.StatusNotFound, env.Status)

	var appErrs []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &appErrs))
	require.Len(t, appErrs, 1)
	assert.Equal(t, "ERR_RULE_NOT_FOUND", appErrs[0].Code)
	assert.Contains(t, appErrs[0].Message, "wine")
}

func TestBasketRulesListing(t *testing.T) {
	e := newTestServer(t)
	env := doGet(t, e, "/api/basket/rules")
	require.Equal(t, http.StatusOK, env.Status)

	var list struct {
		Rows  []struct{ Key string } `json:"rows"`
		Total int64                  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, int64(3), list.Total)
	require.Len(t, list.Rows, 3)
}

func TestPricingDefaults(t *testing.T) {
	e := newTestServer(t)
	env := doGet(t, e, "/api/pricing")
	require.Equal(t, http.StatusOK, env.Status)

	var res struct {
		Points     []struct{ Price float64 } `json:"points"`
		BestPrice  float64                   `json:"best_price"`
		BestProfit float64                   `json:"best_profit"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.Len(t, res.Points, 51)
	assert.GreaterOrEqual(t, res.BestPrice, 8.0)
	assert.LessOrEqual(t, res.BestPrice, 12.0)
}

func TestGeoCount(t *testing.T) {
	e := newTestServer(t)
	env := doGet(t, e, "/api/geo?count=5")
	require.Equal(t, http.StatusOK, env.Status)

	var res struct {
		Points  []struct{ Lat, Lon float64 } `json:"points"`
		Summary struct {
			Count int `json:"count"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Len(t, res.Points, 5)
	assert.Equal(t, 5, res.Summary.Count)
}
