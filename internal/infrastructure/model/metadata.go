package model

import (
	"fmt"
	"math"
	"os"

	"github.com/house-price-service/internal/domain"
	"gopkg.in/yaml.v3"
)

// ReadMetadataFile читает метаданные модели (YAML или JSON: JSON - подмножество YAML)
func ReadMetadataFile(path string) (*domain.ModelMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model metadata: %w", err)
	}
	return ParseMetadata(data)
}

func ParseMetadata(data []byte) (*domain.ModelMetadata, error) {
	var meta domain.ModelMetadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse model metadata: %w", err)
	}
	if meta.ModelType == "" {
		return nil, fmt.Errorf("parse model metadata: model_type is empty")
	}
	if meta.TestMAE != nil && (math.IsNaN(*meta.TestMAE) || math.IsInf(*meta.TestMAE, 0) || *meta.TestMAE < 0) {
		return nil, fmt.Errorf("parse model metadata: test_mae must be a finite non-negative number, got %v", *meta.TestMAE)
	}
	return &meta, nil
}
