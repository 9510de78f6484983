// Package docs Toulouse House Price API.
//
// Оценка цены жилья в Тулузе по площади Carrez, числу комнат, координатам и наличию участка.
// Расстояние до ближайшей станции метро вычисляется сервисом и передаётся в модель как признак.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Service"],
                "summary": "Информация о сервисе",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.InfoResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Service"],
                "summary": "Состояние модели",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/predict": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Prediction"],
                "summary": "Оценка цены объекта",
                "parameters": [
                    {"description": "Описание объекта", "name": "request", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/dto.PropertyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PredictionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/predict_batch": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Prediction"],
                "summary": "Пакетная оценка (до 100 объектов)",
                "parameters": [
                    {"description": "Список объектов", "name": "request", "in": "body", "required": true,
                     "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.PropertyRequest"}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BatchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/stations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Stations"],
                "summary": "Станции метро",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StationsResponse"}}
                }
            }
        },
        "/stations/nearest": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Stations"],
                "summary": "Ближайшая станция метро",
                "parameters": [
                    {"type": "number", "description": "Широта", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Долгота", "name": "lon", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.NearestStationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Station": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "lat": {"type": "number"},
                "lon": {"type": "number"}
            }
        },
        "dto.PropertyRequest": {
            "type": "object",
            "required": ["lot1_surface_carrez", "nombre_pieces_principales", "latitude", "longitude"],
            "properties": {
                "lot1_surface_carrez": {"type": "number", "example": 75},
                "nombre_pieces_principales": {"type": "integer", "minimum": 1, "example": 3},
                "latitude": {"type": "number", "example": 43.6047},
                "longitude": {"type": "number", "example": 1.4442},
                "has_terrain": {"type": "integer", "enum": [0, 1], "example": 0}
            }
        },
        "dto.PredictionDetails": {
            "type": "object",
            "properties": {
                "surface": {"type": "number"},
                "pieces": {"type": "integer"},
                "metro_proche": {"type": "string"},
                "distance_metro_km": {"type": "number"},
                "has_terrain": {"type": "boolean"}
            }
        },
        "dto.PredictionResponse": {
            "type": "object",
            "properties": {
                "prix_predit": {"type": "number"},
                "prix_min": {"type": "number"},
                "prix_max": {"type": "number"},
                "details": {"$ref": "#/definitions/dto.PredictionDetails"}
            }
        },
        "dto.BatchItemResult": {
            "type": "object",
            "properties": {
                "input": {"type": "object"},
                "prediction": {"$ref": "#/definitions/dto.PredictionResponse"},
                "error": {"$ref": "#/definitions/errors.AppError"}
            }
        },
        "dto.BatchResponse": {
            "type": "object",
            "properties": {
                "results": {"type": "array", "items": {"$ref": "#/definitions/dto.BatchItemResult"}},
                "count": {"type": "integer"}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "model_loaded": {"type": "boolean"},
                "model_type": {"type": "string"},
                "test_mae": {"type": "number"},
                "test_r2": {"type": "number"}
            }
        },
        "dto.InfoResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"type": "string"},
                "model_type": {"type": "string"},
                "endpoints": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "dto.StationsResponse": {
            "type": "object",
            "properties": {
                "stations": {"type": "array", "items": {"$ref": "#/definitions/domain.Station"}},
                "total": {"type": "integer"}
            }
        },
        "dto.NearestStationResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "distance_km": {"type": "number"},
                "lat": {"type": "number"},
                "lon": {"type": "number"}
            }
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/errors.AppError"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Toulouse House Price API",
	Description:      "Оценка цены жилья в Тулузе (модель градиентного бустинга, вилка ± MAE).",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
