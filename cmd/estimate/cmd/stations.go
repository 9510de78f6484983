package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/house-price-service/internal/pkg/utils"
	"github.com/house-price-service/internal/usecase"
	"github.com/house-price-service/internal/usecase/dto"
	"github.com/spf13/cobra"
)

var nearestFlags struct {
	lat float64
	lon float64
}

// nearestCmd - ближайшая станция метро к координатам
var nearestCmd = &cobra.Command{
	Use:   "nearest",
	Short: "Find the nearest metro station to a coordinate",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.IsFinite(nearestFlags.lat, nearestFlags.lon) ||
			!utils.ValidateCoordinates(nearestFlags.lat, nearestFlags.lon) {
			return fmt.Errorf("invalid coordinates %v,%v", nearestFlags.lat, nearestFlags.lon)
		}

		station, distance := usecase.NewToulouseLocator().Nearest(nearestFlags.lat, nearestFlags.lon)

		return printJSON(cmd.OutOrStdout(), dto.NearestStationResponse{
			Name:       station.Name,
			DistanceKm: utils.Round2(distance),
			Lat:        station.Lat,
			Lon:        station.Lon,
		})
	},
}

// stationsCmd - таблица станций в порядке перебора
var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "List the reference metro stations",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tLAT\tLON")
		for _, s := range usecase.NewToulouseLocator().Stations() {
			fmt.Fprintf(w, "%s\t%.6f\t%.6f\n", s.Name, s.Lat, s.Lon)
		}
		return w.Flush()
	},
}

func init() {
	nearestCmd.Flags().Float64Var(&nearestFlags.lat, "lat", 0, "latitude")
	nearestCmd.Flags().Float64Var(&nearestFlags.lon, "lon", 0, "longitude")
	_ = nearestCmd.MarkFlagRequired("lat")
	_ = nearestCmd.MarkFlagRequired("lon")
}
