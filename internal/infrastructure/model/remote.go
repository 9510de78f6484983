package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/house-price-service/internal/domain"
	"github.com/house-price-service/internal/domain/repository"
	"go.uber.org/zap"
)

var _ repository.PriceModel = (*RemoteClient)(nil)

// RemoteClient - модель, обслуживаемая внешним model server по HTTP
type RemoteClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

type remotePredictRequest struct {
	Instances []domain.FeatureRecord `json:"instances"`
}

type remotePredictResponse struct {
	Predictions []float64 `json:"predictions"`
	Error       string    `json:"error,omitempty"`
}

// NewRemoteClient создает клиент model server
func NewRemoteClient(baseURL string, timeout time.Duration, logger *zap.Logger) *RemoteClient {
	return &RemoteClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

// Predict отправляет записи признаков на {base}/predict
func (c *RemoteClient) Predict(ctx context.Context, records []domain.FeatureRecord) ([]float64, error) {
	body, err := json.Marshal(remotePredictRequest{Instances: records})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Calling model server", zap.Int("records", len(records)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Model server request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var out remotePredictResponse
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Model server returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(raw)))

		// 4xx - model server не смог закодировать запись
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, fmt.Errorf("%w: status %d: %s", domain.ErrFeatureMismatch, resp.StatusCode, string(raw))
		}
		return nil, fmt.Errorf("model server error: status %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("model server error: %s", out.Error)
	}
	if len(out.Predictions) != len(records) {
		return nil, fmt.Errorf("model server returned %d predictions for %d records", len(out.Predictions), len(records))
	}

	return out.Predictions, nil
}

// Metadata читает метаданные модели с {base}/metadata
func (c *RemoteClient) Metadata(ctx context.Context) (*domain.ModelMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/metadata", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model server metadata: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}
	return ParseMetadata(data)
}
