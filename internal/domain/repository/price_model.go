package repository

import (
	"context"

	"github.com/house-price-service/internal/domain"
)

// PriceModel - обученная модель оценки цены.
// Модель только читается, поэтому её можно вызывать из нескольких горутин.
type PriceModel interface {
	// Predict возвращает по одной цене на каждую запись признаков, в том же порядке
	Predict(ctx context.Context, records []domain.FeatureRecord) ([]float64, error)
}

// ModelProvider отдаёт загруженную модель и её метаданные.
// Если модель не загрузилась при старте, Model возвращает nil.
type ModelProvider interface {
	Model() PriceModel
	Metadata() *domain.ModelMetadata
}
