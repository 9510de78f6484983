package domain

// Имена признаков, на которых обучена модель
const (
	FeatureSurface         = "lot1_surface_carrez"
	FeatureRooms           = "nombre_pieces_principales"
	FeatureLatitude        = "latitude"
	FeatureLongitude       = "longitude"
	FeatureHasLand         = "has_terrain"
	FeatureMetroDistanceKm = "nearest_metro_distance_km"
	FeatureMetroName       = "nearest_metro_name"
)

// FeatureRecord - запись признаков для одного объекта, ровно 7 полей
type FeatureRecord struct {
	Surface         float64 `json:"lot1_surface_carrez"`
	Rooms           int     `json:"nombre_pieces_principales"`
	Lat             float64 `json:"latitude"`
	Lon             float64 `json:"longitude"`
	HasLand         int     `json:"has_terrain"`
	MetroDistanceKm float64 `json:"nearest_metro_distance_km"`
	MetroName       string  `json:"nearest_metro_name"`
}

// Numeric возвращает числовое значение признака по имени
func (r FeatureRecord) Numeric(name string) (float64, bool) {
	switch name {
	case FeatureSurface:
		return r.Surface, true
	case FeatureRooms:
		return float64(r.Rooms), true
	case FeatureLatitude:
		return r.Lat, true
	case FeatureLongitude:
		return r.Lon, true
	case FeatureHasLand:
		return float64(r.HasLand), true
	case FeatureMetroDistanceKm:
		return r.MetroDistanceKm, true
	default:
		return 0, false
	}
}

// Categorical возвращает категориальный признак по имени
func (r FeatureRecord) Categorical(name string) (string, bool) {
	if name == FeatureMetroName {
		return r.MetroName, true
	}
	return "", false
}

// ModelMetadata - метаданные обученной модели, сохранённые рядом с артефактом
type ModelMetadata struct {
	ModelType string   `json:"model_type" yaml:"model_type"`
	TestMAE   *float64 `json:"test_mae,omitempty" yaml:"test_mae"`
	TestR2    *float64 `json:"test_r2,omitempty" yaml:"test_r2"`
}

// Margin - ширина вилки цены: MAE модели, либо fallback если MAE не записан.
// Записанный MAE, в том числе 0, используется как есть.
func (m *ModelMetadata) Margin(fallback float64) float64 {
	if m == nil || m.TestMAE == nil {
		return fallback
	}
	return *m.TestMAE
}
