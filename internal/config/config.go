package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ModelBackendPipeline = "pipeline"
	ModelBackendRemote   = "remote"

	// DefaultPriceMargin - MAE последней обученной модели, если метаданные его не содержат
	DefaultPriceMargin = 35590.0
	DefaultBatchLimit  = 100
)

type Config struct {
	Server     ServerConfig
	Model      ModelConfig
	Prediction PredictionConfig
	Log        LogConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type ModelConfig struct {
	Backend       string
	ArtifactPath  string
	MetadataPath  string
	RemoteURL     string
	RemoteTimeout time.Duration
}

type PredictionConfig struct {
	DefaultMargin float64
	BatchLimit    int
	BatchWorkers  int
}

type LogConfig struct {
	Level string
}

// Load читает конфигурацию из .env (если файл есть) и переменных окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile - то же, что Load, но с явным путём к env-файлу
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) && !stderrors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
			ReadTimeout:  time.Duration(v.GetInt("API_READ_TIMEOUT")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("API_WRITE_TIMEOUT")) * time.Second,
		},
		Model: ModelConfig{
			Backend:       strings.ToLower(v.GetString("MODEL_BACKEND")),
			ArtifactPath:  v.GetString("MODEL_ARTIFACT_PATH"),
			MetadataPath:  v.GetString("MODEL_METADATA_PATH"),
			RemoteURL:     strings.TrimRight(v.GetString("MODEL_REMOTE_URL"), "/"),
			RemoteTimeout: time.Duration(v.GetInt("MODEL_REMOTE_TIMEOUT")) * time.Second,
		},
		Prediction: PredictionConfig{
			DefaultMargin: v.GetFloat64("PREDICTION_DEFAULT_MARGIN"),
			BatchLimit:    v.GetInt("PREDICTION_BATCH_LIMIT"),
			BatchWorkers:  v.GetInt("PREDICTION_BATCH_WORKERS"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8000)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("API_READ_TIMEOUT", 10)
	v.SetDefault("API_WRITE_TIMEOUT", 30)
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("MODEL_BACKEND", ModelBackendPipeline)
	v.SetDefault("MODEL_ARTIFACT_PATH", "model.json")
	v.SetDefault("MODEL_METADATA_PATH", "metadata.yaml")
	v.SetDefault("MODEL_REMOTE_TIMEOUT", 10)
	v.SetDefault("PREDICTION_DEFAULT_MARGIN", DefaultPriceMargin)
	v.SetDefault("PREDICTION_BATCH_LIMIT", DefaultBatchLimit)
	v.SetDefault("PREDICTION_BATCH_WORKERS", 8)
	v.SetDefault("LOG_LEVEL", "info")
}

// Validate проверяет значения, без которых сервис не может стартовать
func (c *Config) Validate() error {
	switch c.Model.Backend {
	case ModelBackendPipeline:
	case ModelBackendRemote:
		if c.Model.RemoteURL == "" {
			return fmt.Errorf("MODEL_REMOTE_URL is required for backend %q", ModelBackendRemote)
		}
	default:
		return fmt.Errorf("unknown MODEL_BACKEND %q", c.Model.Backend)
	}

	if c.Prediction.DefaultMargin < 0 {
		return fmt.Errorf("PREDICTION_DEFAULT_MARGIN must be non-negative, got %v", c.Prediction.DefaultMargin)
	}
	if c.Prediction.BatchLimit <= 0 {
		return fmt.Errorf("PREDICTION_BATCH_LIMIT must be positive, got %d", c.Prediction.BatchLimit)
	}
	if c.Prediction.BatchWorkers <= 0 {
		c.Prediction.BatchWorkers = 1
	}

	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
