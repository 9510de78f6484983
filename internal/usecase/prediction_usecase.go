package usecase

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/house-price-service/internal/config"
	"github.com/house-price-service/internal/domain"
	"github.com/house-price-service/internal/domain/repository"
	"github.com/house-price-service/internal/pkg/errors"
	"github.com/house-price-service/internal/pkg/utils"
	"github.com/house-price-service/internal/pkg/validator"
	"github.com/house-price-service/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	StatusHealthy     = "healthy"
	StatusUnavailable = "unavailable"
)

// PredictionUseCase - оценка цены: признаки, вызов модели, вилка цены
type PredictionUseCase struct {
	models        repository.ModelProvider
	locator       *StationLocator
	logger        *zap.Logger
	defaultMargin float64
	batchLimit    int
	batchWorkers  int
}

func NewPredictionUseCase(
	models repository.ModelProvider,
	locator *StationLocator,
	logger *zap.Logger,
	cfg config.PredictionConfig,
) *PredictionUseCase {
	limit := cfg.BatchLimit
	if limit <= 0 {
		limit = config.DefaultBatchLimit
	}
	workers := cfg.BatchWorkers
	if workers <= 0 {
		workers = 1
	}

	return &PredictionUseCase{
		models:        models,
		locator:       locator,
		logger:        logger,
		defaultMargin: cfg.DefaultMargin,
		batchLimit:    limit,
		batchWorkers:  workers,
	}
}

// model возвращает модель, только если загружены и она, и её метаданные
func (uc *PredictionUseCase) model() (repository.PriceModel, *domain.ModelMetadata, bool) {
	m := uc.models.Model()
	meta := uc.models.Metadata()
	if m == nil || meta == nil {
		return nil, nil, false
	}
	return m, meta, true
}

// Predict оценивает цену одного объекта.
// Ошибки: MODEL_UNAVAILABLE, VALIDATION_FAILED, PREDICTION_FAILED. Повторов нет.
func (uc *PredictionUseCase) Predict(ctx context.Context, q domain.PropertyQuery) (*domain.Prediction, error) {
	m, meta, ok := uc.model()
	if !ok {
		return nil, errors.ErrModelUnavailable
	}

	if err := ValidateQuery(q); err != nil {
		return nil, err
	}

	distance, station := uc.locator.Locate(q.Lat, q.Lon)

	record := domain.FeatureRecord{
		Surface:         q.CarrezSurface,
		Rooms:           q.RoomCount,
		Lat:             q.Lat,
		Lon:             q.Lon,
		MetroDistanceKm: distance,
		MetroName:       station,
	}
	if q.HasLand {
		record.HasLand = 1
	}

	prices, err := m.Predict(ctx, []domain.FeatureRecord{record})
	if err == nil && len(prices) != 1 {
		err = fmt.Errorf("model returned %d prices for 1 record", len(prices))
	}
	if err != nil {
		uc.logger.Error("Prediction failed",
			zap.Any("features", record),
			zap.String("reason", failureReason(err)),
			zap.Error(err))
		return nil, errors.ErrPredictionFailed.
			Wrap(err).
			WithDetails(map[string]interface{}{"reason": failureReason(err)})
	}

	price := prices[0]
	if price < 0 {
		uc.logger.Error("Model returned a negative price",
			zap.Any("features", record),
			zap.Float64("price", price))
		return nil, errors.ErrPredictionFailed.
			WithMessage("Model returned a negative price").
			WithDetails(map[string]interface{}{"reason": "negative_price"})
	}

	margin := meta.Margin(uc.defaultMargin)
	low, high := utils.PriceRange(price, margin)

	uc.logger.Debug("Prediction computed",
		zap.String("station", station),
		zap.Float64("distance_km", distance),
		zap.Float64("price", price),
		zap.Float64("margin", margin))

	return &domain.Prediction{
		PredictedPrice:    price,
		PriceLow:          low,
		PriceHigh:         high,
		Margin:            margin,
		NearestStation:    station,
		NearestDistanceKm: distance,
		Query:             q,
	}, nil
}

// PredictRequest валидирует запрос API и возвращает готовый ответ
func (uc *PredictionUseCase) PredictRequest(ctx context.Context, req dto.PropertyRequest) (*dto.PredictionResponse, error) {
	if _, _, ok := uc.model(); !ok {
		return nil, errors.ErrModelUnavailable
	}

	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	prediction, err := uc.Predict(ctx, req.ToQuery())
	if err != nil {
		return nil, err
	}

	return dto.NewPredictionResponse(prediction), nil
}

// PredictBatch оценивает до batchLimit объектов. Каждый объект обрабатывается независимо:
// ошибка одного попадает в его запись и не прерывает остальные.
func (uc *PredictionUseCase) PredictBatch(ctx context.Context, items []json.RawMessage) (*dto.BatchResponse, error) {
	if len(items) > uc.batchLimit {
		return nil, errors.ErrBatchTooLarge.
			WithMessage(fmt.Sprintf("Max %d properties per request", uc.batchLimit)).
			WithDetails(map[string]interface{}{
				"count": len(items),
				"max":   uc.batchLimit,
			})
	}

	if _, _, ok := uc.model(); !ok {
		return nil, errors.ErrModelUnavailable
	}

	batchID := uuid.NewString()
	uc.logger.Info("PredictBatch started",
		zap.String("batch_id", batchID),
		zap.Int("items", len(items)))

	results := make([]dto.BatchItemResult, len(items))
	sem := make(chan struct{}, uc.batchWorkers)
	var wg sync.WaitGroup

	for i, raw := range items {
		wg.Add(1)
		sem <- struct{}{}

		go func(idx int, raw json.RawMessage) {
			defer wg.Done()
			defer func() { <-sem }()

			results[idx] = uc.predictItem(ctx, raw)
		}(i, raw)
	}
	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
		}
	}

	uc.logger.Info("PredictBatch finished",
		zap.String("batch_id", batchID),
		zap.Int("items", len(items)),
		zap.Int("failed", failed))

	return &dto.BatchResponse{
		Results: results,
		Count:   len(results),
	}, nil
}

func (uc *PredictionUseCase) predictItem(ctx context.Context, raw json.RawMessage) dto.BatchItemResult {
	item := dto.BatchItemResult{Input: raw}
	if len(raw) == 0 {
		item.Input = json.RawMessage("null")
	}

	var req dto.PropertyRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		item.Error = errors.ErrInvalidRequest.Wrap(err)
		return item
	}

	resp, err := uc.PredictRequest(ctx, req)
	if err != nil {
		item.Error = asAppError(err)
		return item
	}

	item.Prediction = resp
	return item
}

// Health - состояние модели. ok=false, если модель не загружена.
func (uc *PredictionUseCase) Health() (*dto.HealthResponse, bool) {
	_, meta, ok := uc.model()
	if !ok {
		return &dto.HealthResponse{
			Status:      StatusUnavailable,
			ModelLoaded: false,
		}, false
	}

	return &dto.HealthResponse{
		Status:      StatusHealthy,
		ModelLoaded: true,
		ModelType:   meta.ModelType,
		TestMAE:     meta.TestMAE,
		TestR2:      meta.TestR2,
	}, true
}

// Info - корневой документ API
func (uc *PredictionUseCase) Info() *dto.InfoResponse {
	modelType := "unknown"
	status := "online"
	if _, meta, ok := uc.model(); ok {
		modelType = meta.ModelType
	} else {
		status = StatusUnavailable
	}

	return &dto.InfoResponse{
		Message:   "API Prédiction Prix Immobilier Toulouse",
		Status:    status,
		ModelType: modelType,
		Endpoints: map[string]string{
			"predict":       "/predict",
			"predict_batch": "/predict_batch",
			"health":        "/health",
			"stations":      "/stations",
			"docs":          "/swagger/index.html",
		},
	}
}

// ValidateQuery - проверки доменной модели. HTTP-запросы уже прошли validator,
// но CLI и прочие вызовы приходят сюда напрямую.
func ValidateQuery(q domain.PropertyQuery) error {
	invalid := func(field, msg string) error {
		return errors.ErrValidation.
			WithMessage(msg).
			WithDetails(map[string]interface{}{"field": field})
	}

	switch {
	case !utils.IsFinite(q.CarrezSurface) || q.CarrezSurface <= 0:
		return invalid("lot1_surface_carrez", "field lot1_surface_carrez must be a finite number greater than 0")
	case q.RoomCount < 1:
		return invalid("nombre_pieces_principales", "field nombre_pieces_principales must be at least 1")
	case !utils.IsFinite(q.Lat):
		return invalid("latitude", "field latitude must be a finite number")
	case !utils.IsFinite(q.Lon):
		return invalid("longitude", "field longitude must be a finite number")
	}
	return nil
}

func failureReason(err error) string {
	switch {
	case stderrors.Is(err, domain.ErrUnknownCategory):
		return "unknown_category"
	case stderrors.Is(err, domain.ErrFeatureMismatch):
		return "feature_mismatch"
	case stderrors.Is(err, domain.ErrNonFiniteScore):
		return "non_finite_score"
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "model_error"
	}
}

func asAppError(err error) *errors.AppError {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return errors.ErrPredictionFailed.Wrap(err)
}
