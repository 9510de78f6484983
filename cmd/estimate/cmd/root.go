// Package cmd - команды CLI estimate.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/house-price-service/internal/config"
	"github.com/house-price-service/internal/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "1.0.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd - корневая команда
var rootCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate Toulouse property prices offline",
	Long: `estimate runs the same prediction pipeline as the HTTP API, in-process.

Examples:
  estimate predict --surface 75 --rooms 3 --lat 43.6047 --lon 1.4442
  estimate nearest --lat 43.6047 --lon 1.4442
  estimate stations`,
	SilenceUsage: true,
}

// Execute запускает CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".env", "env file with MODEL_* settings")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(nearestCmd)
	rootCmd.AddCommand(stationsCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd - вывод версии
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "estimate version %s\n", version)
	},
}

// loadConfig читает конфигурацию и создаёт логгер: уровень error, с -v - debug
func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadFile(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	level := "error"
	if verbose {
		level = "debug"
	}
	log, err := logger.New(level, "estimate")
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	return cfg, log, nil
}

// printJSON печатает v как JSON с отступами
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
