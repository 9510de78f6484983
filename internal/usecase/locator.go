package usecase

import (
	"math"

	"github.com/house-price-service/internal/domain"
	"github.com/house-price-service/internal/pkg/utils"
)

// StationLocator ищет ближайшую опорную точку полным перебором.
// Хранит собственную копию таблицы.
type StationLocator struct {
	stations []domain.Station
}

// NewStationLocator создает локатор над копией переданной таблицы
func NewStationLocator(stations []domain.Station) *StationLocator {
	s := make([]domain.Station, len(stations))
	copy(s, stations)
	return &StationLocator{stations: s}
}

// NewToulouseLocator - локатор по станциям метро Тулузы
func NewToulouseLocator() *StationLocator {
	return NewStationLocator(domain.ToulouseMetroStations())
}

// Locate возвращает расстояние в км до ближайшей станции и её название.
// При равенстве расстояний выигрывает станция, которая идёт в таблице раньше.
func (l *StationLocator) Locate(lat, lon float64) (float64, string) {
	s, d := l.Nearest(lat, lon)
	return d, s.Name
}

// Nearest возвращает ближайшую станцию целиком и расстояние до неё в км
func (l *StationLocator) Nearest(lat, lon float64) (domain.Station, float64) {
	minDist := math.Inf(1)
	idx := -1

	for i, s := range l.stations {
		d := utils.HaversineDistance(lat, lon, s.Lat, s.Lon)
		if d < minDist {
			minDist = d
			idx = i
		}
	}

	if idx < 0 {
		return domain.Station{}, minDist
	}
	return l.stations[idx], minDist
}

// Stations возвращает копию таблицы в порядке перебора
func (l *StationLocator) Stations() []domain.Station {
	out := make([]domain.Station, len(l.stations))
	copy(out, l.stations)
	return out
}
