package domain

// PropertyQuery - провалидированное описание объекта недвижимости
type PropertyQuery struct {
	CarrezSurface float64
	RoomCount     int
	Lat           float64
	Lon           float64
	HasLand       bool
}

// Prediction - оценка цены с вилкой и ближайшей станцией метро.
// PriceLow = max(0, PredictedPrice-margin), PriceHigh = PredictedPrice+margin.
type Prediction struct {
	PredictedPrice    float64
	PriceLow          float64
	PriceHigh         float64
	Margin            float64
	NearestStation    string
	NearestDistanceKm float64
	Query             PropertyQuery
}
