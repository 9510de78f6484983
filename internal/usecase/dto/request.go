package dto

// PropertyRequest - описание объекта, как его присылает фронтенд
type PropertyRequest struct {
	Surface    float64  `json:"lot1_surface_carrez" validate:"gt=0" example:"75"`
	Rooms      int      `json:"nombre_pieces_principales" validate:"min=1" example:"3"`
	Latitude   *float64 `json:"latitude" validate:"required" example:"43.6047"`
	Longitude  *float64 `json:"longitude" validate:"required" example:"1.4442"`
	HasTerrain int      `json:"has_terrain" validate:"oneof=0 1" example:"0"`
}

// NearestStationRequest - координаты для поиска ближайшей станции метро
type NearestStationRequest struct {
	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon *float64 `json:"lon" validate:"required,min=-180,max=180"`
}
