package model

import (
	"context"
	"fmt"

	"github.com/house-price-service/internal/config"
	"github.com/house-price-service/internal/domain"
	"github.com/house-price-service/internal/domain/repository"
	"go.uber.org/zap"
)

var _ repository.ModelProvider = (*Bundle)(nil)

// Bundle - загруженная модель вместе с метаданными.
// Пустой Bundle означает, что модель недоступна.
type Bundle struct {
	model    repository.PriceModel
	metadata *domain.ModelMetadata
}

// NewBundle собирает Bundle из готовых частей
func NewBundle(m repository.PriceModel, meta *domain.ModelMetadata) *Bundle {
	return &Bundle{model: m, metadata: meta}
}

// Unavailable - Bundle для случая, когда загрузка при старте не удалась
func Unavailable() *Bundle {
	return &Bundle{}
}

func (b *Bundle) Model() repository.PriceModel {
	return b.model
}

func (b *Bundle) Metadata() *domain.ModelMetadata {
	return b.metadata
}

// Load загружает модель и метаданные согласно конфигурации. Вызывается один раз при старте.
func Load(ctx context.Context, cfg *config.ModelConfig, logger *zap.Logger) (*Bundle, error) {
	switch cfg.Backend {
	case config.ModelBackendRemote:
		client := NewRemoteClient(cfg.RemoteURL, cfg.RemoteTimeout, logger)

		meta, err := client.Metadata(ctx)
		if err != nil {
			return nil, fmt.Errorf("load remote model metadata: %w", err)
		}

		logger.Info("Remote model attached",
			zap.String("url", cfg.RemoteURL),
			zap.String("model_type", meta.ModelType))

		return NewBundle(client, meta), nil

	case config.ModelBackendPipeline:
		artifact, err := ReadArtifactFile(cfg.ArtifactPath)
		if err != nil {
			return nil, err
		}

		pipeline, err := NewPipeline(artifact)
		if err != nil {
			return nil, err
		}

		meta, err := ReadMetadataFile(cfg.MetadataPath)
		if err != nil {
			return nil, err
		}

		logger.Info("Model loaded",
			zap.String("artifact", cfg.ArtifactPath),
			zap.String("model_type", meta.ModelType),
			zap.Int("encoded_width", artifact.Width()))

		return NewBundle(pipeline, meta), nil

	default:
		return nil, fmt.Errorf("unknown model backend %q", cfg.Backend)
	}
}
