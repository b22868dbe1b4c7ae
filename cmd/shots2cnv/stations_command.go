package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/obs-shots2cnv/internal/domain"
)

func newStationsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stations [station_list]",
		Short: "Show the station table as it will be written to CNV headers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.StationList = args[0]
			}
			if cfg.StationList == "" {
				return errors.New("station list is required")
			}

			table, err := domain.LoadStationTable(cfg.StationList)
			if err != nil {
				return err
			}
			fmt.Fprintln(ctx.stdout, renderStations(table))
			return nil
		},
	}
}

func renderStations(table []domain.StationLocation) string {
	rows := make([][]string, 0, len(table))
	for _, s := range table {
		rows = append(rows, []string{
			s.Code,
			s.DisplayLatitude(),
			s.DisplayLongitude(),
			strconv.FormatFloat(s.DepthM, 'f', -1, 64),
			strconv.FormatFloat(s.DepthKm(), 'f', 2, 64),
		})
	}
	return tableLayout{
		headers: []string{"Code", "Latitude", "Longitude", "Depth (m)", "Depth (km)"},
		rows:    rows,
		numeric: []bool{false, true, true, true, true},
		footer:  []string{fmt.Sprintf("%d stations", len(table))},
	}.render()
}
