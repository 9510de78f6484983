package cmd

import (
	"context"
	"fmt"

	"github.com/house-price-service/internal/domain"
	"github.com/house-price-service/internal/infrastructure/model"
	"github.com/house-price-service/internal/usecase"
	"github.com/house-price-service/internal/usecase/dto"
	"github.com/spf13/cobra"
)

var predictFlags struct {
	surface float64
	rooms   int
	lat     float64
	lon     float64
	land    bool
}

// predictCmd - оценка одного объекта моделью, загруженной в процесс
var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Estimate the price of one property",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		bundle, err := model.Load(ctx, &cfg.Model, log)
		if err != nil {
			return fmt.Errorf("load model: %w", err)
		}

		uc := usecase.NewPredictionUseCase(bundle, usecase.NewToulouseLocator(), log, cfg.Prediction)

		prediction, err := uc.Predict(ctx, domain.PropertyQuery{
			CarrezSurface: predictFlags.surface,
			RoomCount:     predictFlags.rooms,
			Lat:           predictFlags.lat,
			Lon:           predictFlags.lon,
			HasLand:       predictFlags.land,
		})
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), dto.NewPredictionResponse(prediction))
	},
}

func init() {
	f := predictCmd.Flags()
	f.Float64Var(&predictFlags.surface, "surface", 0, "Carrez surface, m²")
	f.IntVar(&predictFlags.rooms, "rooms", 0, "number of main rooms")
	f.Float64Var(&predictFlags.lat, "lat", 0, "latitude")
	f.Float64Var(&predictFlags.lon, "lon", 0, "longitude")
	f.BoolVar(&predictFlags.land, "land", false, "property has land")

	for _, name := range []string{"surface", "rooms", "lat", "lon"} {
		_ = predictCmd.MarkFlagRequired(name)
	}
}
