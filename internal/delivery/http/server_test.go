package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/house-price-service/internal/config"
	deliveryhttp "github.com/house-price-service/internal/delivery/http"
	"github.com/house-price-service/internal/delivery/http/handler"
	"github.com/house-price-service/internal/domain"
	"github.com/house-price-service/internal/infrastructure/model"
	"github.com/house-price-service/internal/usecase"
)

// surfaceModel: 4000 €/м² + 5000 за комнату
type surfaceModel struct{}

func (surfaceModel) Predict(_ context.Context, records []domain.FeatureRecord) ([]float64, error) {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = 4000*r.Surface + 5000*float64(r.Rooms)
	}
	return out, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         8000,
			AllowOrigins: "*",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Prediction: config.PredictionConfig{
			DefaultMargin: config.DefaultPriceMargin,
			BatchLimit:    config.DefaultBatchLimit,
			BatchWorkers:  4,
		},
	}
}

func newTestServer(bundle *model.Bundle) *deliveryhttp.Server {
	cfg := testConfig()
	logger := zap.NewNop()
	locator := usecase.NewToulouseLocator()
	predictionUC := usecase.NewPredictionUseCase(bundle, locator, logger, cfg.Prediction)

	return deliveryhttp.NewServer(
		cfg,
		logger,
		handler.NewPredictionHandler(predictionUC, logger),
		handler.NewStationHandler(locator, logger),
	)
}

func loadedServer() *deliveryhttp.Server {
	mae := 35590.12
	r2 := 0.81
	return newTestServer(model.NewBundle(surfaceModel{}, &domain.ModelMetadata{
		ModelType: "XGBRegressor",
		TestMAE:   &mae,
		TestR2:    &r2,
	}))
}

func doRequest(t *testing.T, s *deliveryhttp.Server, method, target, body string) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func errorCode(t *testing.T, body map[string]interface{}) string {
	t.Helper()
	e, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "no error object in %v", body)
	return e["code"].(string)
}

func TestServer_Predict(t *testing.T) {
	s := loadedServer()

	status, body := doRequest(t, s, http.MethodPost, "/predict",
		`{"lot1_surface_carrez": 75, "nombre_pieces_principales": 3, "latitude": 43.6047, "longitude": 1.4442, "has_terrain": 0}`)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 315000.0, body["prix_predit"])
	assert.Equal(t, 279409.88, body["prix_min"])
	assert.Equal(t, 350590.12, body["prix_max"])

	details := body["details"].(map[string]interface{})
	assert.Equal(t, 75.0, details["surface"])
	assert.Equal(t, 3.0, details["pieces"])
	assert.Equal(t, "Capitole", details["metro_proche"])
	assert.Equal(t, 0.08, details["distance_metro_km"])
	assert.Equal(t, false, details["has_terrain"])
}

func TestServer_Predict_Errors(t *testing.T) {
	s := loadedServer()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
		wantField  string
	}{
		{
			name:       "negative surface",
			body:       `{"lot1_surface_carrez": -5, "nombre_pieces_principales": 3, "latitude": 43.6, "longitude": 1.44}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantField:  "lot1_surface_carrez",
		},
		{
			name:       "missing longitude",
			body:       `{"lot1_surface_carrez": 50, "nombre_pieces_principales": 2, "latitude": 43.6}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantField:  "longitude",
		},
		{
			name:       "wrong type",
			body:       `{"lot1_surface_carrez": "abc"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:       "not JSON",
			body:       `surface=75`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, s, http.MethodPost, "/predict", tt.body)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, errorCode(t, body))
			if tt.wantField != "" {
				details := body["error"].(map[string]interface{})["details"].(map[string]interface{})
				assert.Equal(t, tt.wantField, details["field"])
			}
		})
	}
}

func TestServer_PredictBatch(t *testing.T) {
	s := loadedServer()

	t.Run("partial success", func(t *testing.T) {
		status, body := doRequest(t, s, http.MethodPost, "/predict_batch", `[
			{"lot1_surface_carrez": 75, "nombre_pieces_principales": 3, "latitude": 43.6047, "longitude": 1.4442},
			{"lot1_surface_carrez": -5, "nombre_pieces_principales": 3, "latitude": 43.6047, "longitude": 1.4442}
		]`)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, 2.0, body["count"])

		results := body["results"].([]interface{})
		require.Len(t, results, 2)

		first := results[0].(map[string]interface{})
		assert.Contains(t, first, "prediction")
		assert.NotContains(t, first, "error")
		assert.Contains(t, first, "input")

		second := results[1].(map[string]interface{})
		assert.NotContains(t, second, "prediction")
		assert.Equal(t, "VALIDATION_FAILED", second["error"].(map[string]interface{})["code"])
		assert.Equal(t, -5.0, second["input"].(map[string]interface{})["lot1_surface_carrez"])
	})

	t.Run("too many items", func(t *testing.T) {
		items := make([]string, 101)
		for i := range items {
			items[i] = fmt.Sprintf(`{"lot1_surface_carrez": %d, "nombre_pieces_principales": 1, "latitude": 43.6, "longitude": 1.44}`, 20+i)
		}

		status, body := doRequest(t, s, http.MethodPost, "/predict_batch", "["+strings.Join(items, ",")+"]")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "BATCH_TOO_LARGE", errorCode(t, body))
	})

	t.Run("body is not an array", func(t *testing.T) {
		status, body := doRequest(t, s, http.MethodPost, "/predict_batch", `{"lot1_surface_carrez": 75}`)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "INVALID_REQUEST", errorCode(t, body))
	})
}

func TestServer_Health(t *testing.T) {
	status, body := doRequest(t, loadedServer(), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, true, body["model_loaded"])
	assert.Equal(t, "XGBRegressor", body["model_type"])
	assert.Equal(t, 35590.12, body["test_mae"])
	assert.Equal(t, 0.81, body["test_r2"])
}

func TestServer_ModelUnavailable(t *testing.T) {
	s := newTestServer(model.Unavailable())

	t.Run("health", func(t *testing.T) {
		status, body := doRequest(t, s, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusServiceUnavailable, status)
		assert.Equal(t, "unavailable", body["status"])
		assert.Equal(t, false, body["model_loaded"])
	})

	t.Run("predict", func(t *testing.T) {
		status, body := doRequest(t, s, http.MethodPost, "/predict",
			`{"lot1_surface_carrez": 75, "nombre_pieces_principales": 3, "latitude": 43.6047, "longitude": 1.4442}`)

		assert.Equal(t, http.StatusServiceUnavailable, status)
		assert.Equal(t, "MODEL_UNAVAILABLE", errorCode(t, body))
	})

	t.Run("predict batch", func(t *testing.T) {
		status, body := doRequest(t, s, http.MethodPost, "/predict_batch",
			`[{"lot1_surface_carrez": 75, "nombre_pieces_principales": 3, "latitude": 43.6047, "longitude": 1.4442}]`)

		assert.Equal(t, http.StatusServiceUnavailable, status)
		assert.Equal(t, "MODEL_UNAVAILABLE", errorCode(t, body))
	})

	t.Run("stations still served", func(t *testing.T) {
		status, body := doRequest(t, s, http.MethodGet, "/stations", "")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, 37.0, body["total"])
	})
}

func TestServer_Root(t *testing.T) {
	status, body := doRequest(t, loadedServer(), http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "online", body["status"])
	assert.Equal(t, "XGBRegressor", body["model_type"])
	assert.Contains(t, body["endpoints"], "predict")
}

func TestServer_Stations(t *testing.T) {
	s := loadedServer()

	t.Run("list", func(t *testing.T) {
		status, body := doRequest(t, s, http.MethodGet, "/stations", "")

		require.Equal(t, http.StatusOK, status)
		stations := body["stations"].([]interface{})
		require.Len(t, stations, 37)
		assert.Equal(t, "Balma-Gramont", stations[0].(map[string]interface{})["name"])
	})

	t.Run("nearest", func(t *testing.T) {
		status, body := doRequest(t, s, http.MethodGet, "/stations/nearest?lat=43.6047&lon=1.4442", "")

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Capitole", body["name"])
		assert.Equal(t, 0.08, body["distance_km"])
	})

	t.Run("nearest without coordinates", func(t *testing.T) {
		status, body := doRequest(t, s, http.MethodGet, "/stations/nearest?lat=43.6", "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, body))
	})

	t.Run("nearest out of range", func(t *testing.T) {
		status, body := doRequest(t, s, http.MethodGet, "/stations/nearest?lat=95&lon=1.44", "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, body))
	})

	t.Run("nearest not a number", func(t *testing.T) {
		status, body := doRequest(t, s, http.MethodGet, "/stations/nearest?lat=abc&lon=1.44", "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, body))
	})
}

func TestServer_NotFound(t *testing.T) {
	status, body := doRequest(t, loadedServer(), http.MethodGet, "/unknown", "")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorCode(t, body))
}

func TestServer_RequestID(t *testing.T) {
	s := loadedServer()

	req := httptest.NewRequest(http.MethodGet, "/stations", nil)
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Len(t, resp.Header.Get("X-Request-ID"), 36)

	req = httptest.NewRequest(http.MethodGet, "/stations", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err = s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
}

func TestServer_BodyWithoutContentType(t *testing.T) {
	s := loadedServer()

	for _, target := range []string{"/predict", "/predict_batch"} {
		t.Run(target, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(
				`{"lot1_surface_carrez": 75, "nombre_pieces_principales": 3, "latitude": 43.6047, "longitude": 1.4442}`))

			resp, err := s.App().Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "INVALID_REQUEST", errorCode(t, body))
		})
	}
}

func TestServer_VendorJSONContentType(t *testing.T) {
	s := loadedServer()

	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(
		`{"lot1_surface_carrez": 75, "nombre_pieces_principales": 3, "latitude": 43.6047, "longitude": 1.4442}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
