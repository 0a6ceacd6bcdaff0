package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"rentroll/src/api/controllers"
	"rentroll/src/api/handlers"
	"rentroll/src/datasource"
	"rentroll/src/metrics"
	"rentroll/src/repositories"
)

const fixturePath = "../../../testdata/rent_roll.csv"

// newTestServer serves a rent roll loaded from sourcePath. Each call gets its own store so
// mutations do not leak between tests.
func newTestServer(t *testing.T, sourcePath string) *httptest.Server {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := repositories.NewRentRollRepository(nil)
	controller := controllers.NewController(store, datasource.NewCSVSource(sourcePath), metrics.New())
	_, _ = controller.Refresh(context.Background())

	h := handlers.NewHandler(controller, logger)
	r := chi.NewRouter()
	r.Route("/api/rent-roll", func(r chi.Router) {
		r.Get("/", h.GetRentRoll)
		r.Get("/view", h.GetView)
		r.Get("/snapshot", h.GetSnapshot)
		r.Get("/units", h.GetUnits)
		r.Get("/properties", h.GetProperties)
		r.Get("/export", h.ExportXLSX)
		r.Post("/refresh", h.Refresh)
	})
	r.Route("/api/kpis", func(r chi.Router) {
		r.Get("/", h.GetKPIs)
		r.Get("/chart", h.GetKPIChart)
	})
	r.Route("/api/transactions", func(r chi.Router) {
		r.Post("/move-in", h.MoveIn)
		r.Post("/move-out", h.MoveOut)
	})

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, v interface{}) *http.Response {
	t.Helper()
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(res.Body).Decode(v))
	}
	return res
}

func postJSON(t *testing.T, url, body string, v interface{}) *http.Response {
	t.Helper()
	res, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(res.Body).Decode(v))
	}
	return res
}
