package domain

import "errors"

// Ошибки модели. Снаружи все они превращаются в PREDICTION_FAILED,
// но внутри различаем «запись не кодируется» и «численный сбой».
var (
	// ErrFeatureMismatch - запись признаков не совпадает со схемой модели
	ErrFeatureMismatch = errors.New("feature record does not match model schema")

	// ErrUnknownCategory - категория, которой не было при обучении
	ErrUnknownCategory = errors.New("unknown category")

	// ErrNonFiniteScore - модель вернула NaN или Inf
	ErrNonFiniteScore = errors.New("model produced a non-finite score")
)
