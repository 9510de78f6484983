package errors

import "net/http"

const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeBatchTooLarge    = "BATCH_TOO_LARGE"
	CodeModelUnavailable = "MODEL_UNAVAILABLE"
	CodePredictionFailed = "PREDICTION_FAILED"
	CodeInternalServer   = "INTERNAL_SERVER_ERROR"
)

var (
	ErrInvalidRequest = New(
		CodeInvalidRequest,
		"Invalid request body",
		http.StatusBadRequest,
	)

	// ErrValidation - входные данные не прошли базовые проверки (поле указывается в details)
	ErrValidation = New(
		CodeValidationFailed,
		"Invalid property description",
		http.StatusBadRequest,
	)

	ErrBatchTooLarge = New(
		CodeBatchTooLarge,
		"Too many properties in one request",
		http.StatusBadRequest,
	)

	// ErrModelUnavailable - модель или её метаданные не загрузились при старте
	ErrModelUnavailable = New(
		CodeModelUnavailable,
		"Prediction model is not loaded",
		http.StatusServiceUnavailable,
	)

	// ErrPredictionFailed - модель отказалась считать запись признаков
	ErrPredictionFailed = New(
		CodePredictionFailed,
		"Prediction failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		CodeInternalServer,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
