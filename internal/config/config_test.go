package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.env"))

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8000", cfg.GetServerAddr())
	assert.Equal(t, "*", cfg.Server.AllowOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, ModelBackendPipeline, cfg.Model.Backend)
	assert.Equal(t, "model.json", cfg.Model.ArtifactPath)
	assert.Equal(t, "metadata.yaml", cfg.Model.MetadataPath)
	assert.Equal(t, DefaultPriceMargin, cfg.Prediction.DefaultMargin)
	assert.Equal(t, DefaultBatchLimit, cfg.Prediction.BatchLimit)
	assert.Equal(t, 8, cfg.Prediction.BatchWorkers)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFile_FromEnvFile(t *testing.T) {
	path := writeEnv(t, `
API_PORT=9090
MODEL_BACKEND=Remote
MODEL_REMOTE_URL=http://models:8501/
MODEL_REMOTE_TIMEOUT=3
PREDICTION_DEFAULT_MARGIN=30000
LOG_LEVEL=debug
`)

	cfg, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, ModelBackendRemote, cfg.Model.Backend)
	assert.Equal(t, "http://models:8501", cfg.Model.RemoteURL)
	assert.Equal(t, 3*time.Second, cfg.Model.RemoteTimeout)
	assert.Equal(t, 30000.0, cfg.Prediction.DefaultMargin)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFile_EnvOverridesFile(t *testing.T) {
	path := writeEnv(t, "API_PORT=9090\n")
	t.Setenv("API_PORT", "7000")
	t.Setenv("PREDICTION_BATCH_LIMIT", "10")

	cfg, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Prediction.BatchLimit)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  string
	}{
		{name: "unknown backend", env: "MODEL_BACKEND=onnx\n"},
		{name: "remote without url", env: "MODEL_BACKEND=remote\n"},
		{name: "negative margin", env: "PREDICTION_DEFAULT_MARGIN=-1\n"},
		{name: "zero batch limit", env: "PREDICTION_BATCH_LIMIT=0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeEnv(t, tt.env))
			assert.Error(t, err)
		})
	}
}

func TestValidate_WorkersFloor(t *testing.T) {
	cfg := &Config{
		Model:      ModelConfig{Backend: ModelBackendPipeline},
		Prediction: PredictionConfig{BatchLimit: 100, BatchWorkers: 0},
	}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Prediction.BatchWorkers)
}
