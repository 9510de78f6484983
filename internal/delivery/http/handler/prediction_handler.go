package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/house-price-service/internal/pkg/errors"
	"github.com/house-price-service/internal/pkg/utils"
	"github.com/house-price-service/internal/usecase"
	"github.com/house-price-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// PredictionHandler - обработчик запросов оценки цены
type PredictionHandler struct {
	predictionUC *usecase.PredictionUseCase
	logger       *zap.Logger
}

// NewPredictionHandler - создание нового PredictionHandler
func NewPredictionHandler(predictionUC *usecase.PredictionUseCase, logger *zap.Logger) *PredictionHandler {
	return &PredictionHandler{
		predictionUC: predictionUC,
		logger:       logger,
	}
}

// Root godoc
// @Summary Информация о сервисе
// @Tags Service
// @Produce json
// @Success 200 {object} dto.InfoResponse
// @Router / [get]
func (h *PredictionHandler) Root(c *fiber.Ctx) error {
	return utils.SendJSON(c, fiber.StatusOK, h.predictionUC.Info())
}

// Health godoc
// @Summary Состояние модели
// @Description Показывает, загружена ли модель, её тип и метрики на тестовой выборке (MAE, R²). Если модель не загрузилась при старте - 503.
// @Tags Service
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *PredictionHandler) Health(c *fiber.Ctx) error {
	resp, ok := h.predictionUC.Health()
	if !ok {
		return utils.SendJSON(c, fiber.StatusServiceUnavailable, resp)
	}
	return utils.SendJSON(c, fiber.StatusOK, resp)
}

// Predict godoc
// @Summary Оценка цены объекта
// @Description Считает расстояние до ближайшей станции метро, вызывает модель и возвращает цену с вилкой ± MAE модели
// @Tags Prediction
// @Accept json
// @Produce json
// @Param request body dto.PropertyRequest true "Описание объекта"
// @Success 200 {object} dto.PredictionResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /predict [post]
func (h *PredictionHandler) Predict(c *fiber.Ctx) error {
	var req dto.PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.Wrap(err))
	}

	result, err := h.predictionUC.PredictRequest(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, result)
}

// PredictBatch godoc
// @Summary Пакетная оценка (до 100 объектов)
// @Description Каждый объект оценивается независимо: ошибка одного объекта попадает в его запись и не прерывает пакет
// @Tags Prediction
// @Accept json
// @Produce json
// @Param request body []dto.PropertyRequest true "Список объектов"
// @Success 200 {object} dto.BatchResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /predict_batch [post]
func (h *PredictionHandler) PredictBatch(c *fiber.Ctx) error {
	// объекты разбираются по одному в usecase, чтобы ошибка типа попала в запись объекта
	var items []json.RawMessage
	if err := c.BodyParser(&items); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.
			WithMessage("Request body must be a JSON array of properties").
			Wrap(err))
	}

	result, err := h.predictionUC.PredictBatch(c.UserContext(), items)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, result)
}
