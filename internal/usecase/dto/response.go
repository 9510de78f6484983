package dto

import (
	"encoding/json"

	"github.com/house-price-service/internal/domain"
	"github.com/house-price-service/internal/pkg/errors"
	"github.com/house-price-service/internal/pkg/utils"
)

// PredictionResponse - ответ на запрос оценки
type PredictionResponse struct {
	PredictedPrice float64           `json:"prix_predit"`
	PriceMin       float64           `json:"prix_min"`
	PriceMax       float64           `json:"prix_max"`
	Details        PredictionDetails `json:"details"`
}

type PredictionDetails struct {
	Surface         float64 `json:"surface"`
	Rooms           int     `json:"pieces"`
	NearestMetro    string  `json:"metro_proche"`
	MetroDistanceKm float64 `json:"distance_metro_km"`
	HasTerrain      bool    `json:"has_terrain"`
}

// BatchItemResult - результат для одного объекта пакета: либо prediction, либо error
type BatchItemResult struct {
	Input      json.RawMessage     `json:"input" swaggertype:"object"`
	Prediction *PredictionResponse `json:"prediction,omitempty"`
	Error      *errors.AppError    `json:"error,omitempty"`
}

type BatchResponse struct {
	Results []BatchItemResult `json:"results"`
	Count   int               `json:"count"`
}

// HealthResponse - состояние модели
type HealthResponse struct {
	Status      string   `json:"status"`
	ModelLoaded bool     `json:"model_loaded"`
	ModelType   string   `json:"model_type,omitempty"`
	TestMAE     *float64 `json:"test_mae,omitempty"`
	TestR2      *float64 `json:"test_r2,omitempty"`
}

// InfoResponse - корневой документ API
type InfoResponse struct {
	Message   string            `json:"message"`
	Status    string            `json:"status"`
	ModelType string            `json:"model_type"`
	Endpoints map[string]string `json:"endpoints"`
}

type StationsResponse struct {
	Stations []domain.Station `json:"stations"`
	Total    int              `json:"total"`
}

type NearestStationResponse struct {
	Name       string  `json:"name"`
	DistanceKm float64 `json:"distance_km"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
}

// NewPredictionResponse конвертирует доменную оценку в ответ API с округлением до центов
func NewPredictionResponse(p *domain.Prediction) *PredictionResponse {
	return &PredictionResponse{
		PredictedPrice: utils.Round2(p.PredictedPrice),
		PriceMin:       utils.Round2(p.PriceLow),
		PriceMax:       utils.Round2(p.PriceHigh),
		Details: PredictionDetails{
			Surface:         p.Query.CarrezSurface,
			Rooms:           p.Query.RoomCount,
			NearestMetro:    p.NearestStation,
			MetroDistanceKm: utils.Round2(p.NearestDistanceKm),
			HasTerrain:      p.Query.HasLand,
		},
	}
}

// ToQuery переводит провалидированный запрос в доменную модель
func (r PropertyRequest) ToQuery() domain.PropertyQuery {
	q := domain.PropertyQuery{
		CarrezSurface: r.Surface,
		RoomCount:     r.Rooms,
		HasLand:       r.HasTerrain == 1,
	}
	if r.Latitude != nil {
		q.Lat = *r.Latitude
	}
	if r.Longitude != nil {
		q.Lon = *r.Longitude
	}
	return q
}
