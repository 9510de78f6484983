package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestNearestCommand(t *testing.T) {
	out, err := run(t, "nearest", "--lat", "43.6047", "--lon", "1.4442")
	require.NoError(t, err)

	var resp struct {
		Name       string  `json:"name"`
		DistanceKm float64 `json:"distance_km"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "Capitole", resp.Name)
	assert.Equal(t, 0.08, resp.DistanceKm)
}

func TestNearestCommand_InvalidCoordinates(t *testing.T) {
	_, err := run(t, "nearest", "--lat", "120", "--lon", "1.44")
	assert.Error(t, err)
}

func TestStationsCommand(t *testing.T) {
	out, err := run(t, "stations")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 38)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.True(t, strings.HasPrefix(lines[1], "Balma-Gramont"))
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}
