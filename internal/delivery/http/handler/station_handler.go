package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/house-price-service/internal/pkg/errors"
	"github.com/house-price-service/internal/pkg/utils"
	"github.com/house-price-service/internal/pkg/validator"
	"github.com/house-price-service/internal/usecase"
	"github.com/house-price-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// StationHandler - справочник станций метро
type StationHandler struct {
	locator *usecase.StationLocator
	logger  *zap.Logger
}

func NewStationHandler(locator *usecase.StationLocator, logger *zap.Logger) *StationHandler {
	return &StationHandler{
		locator: locator,
		logger:  logger,
	}
}

// List godoc
// @Summary Станции метро
// @Tags Stations
// @Produce json
// @Success 200 {object} dto.StationsResponse
// @Router /stations [get]
func (h *StationHandler) List(c *fiber.Ctx) error {
	stations := h.locator.Stations()
	return utils.SendJSON(c, fiber.StatusOK, dto.StationsResponse{
		Stations: stations,
		Total:    len(stations),
	})
}

// Nearest godoc
// @Summary Ближайшая станция метро
// @Tags Stations
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Success 200 {object} dto.NearestStationResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /stations/nearest [get]
func (h *StationHandler) Nearest(c *fiber.Ctx) error {
	lat, err := queryFloat(c, "lat")
	if err != nil {
		return utils.SendError(c, err)
	}
	lon, err := queryFloat(c, "lon")
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.NearestStationRequest{Lat: lat, Lon: lon}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	station, distance := h.locator.Nearest(*req.Lat, *req.Lon)

	h.logger.Debug("Nearest station resolved",
		zap.Float64("lat", *req.Lat),
		zap.Float64("lon", *req.Lon),
		zap.String("station", station.Name))

	return utils.SendJSON(c, fiber.StatusOK, dto.NearestStationResponse{
		Name:       station.Name,
		DistanceKm: utils.Round2(distance),
		Lat:        station.Lat,
		Lon:        station.Lon,
	})
}

// queryFloat читает необязательный числовой query-параметр; nil если параметра нет
func queryFloat(c *fiber.Ctx, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !utils.IsFinite(v) {
		return nil, errors.ErrValidation.
			WithMessage("field " + name + " must be a finite number").
			WithDetails(map[string]interface{}{"field": name})
	}
	return &v, nil
}
