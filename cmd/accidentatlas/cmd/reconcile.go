package cmd

import (
	"github.com/spf13/cobra"

	"AccidentAtlas/internal/app"
)

var (
	joinMode    string
	datasetPath string
	reportPath  string
	department  string
)

// reconcileCmd runs the full pipeline and publishes dataset plus report.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Build and publish the joined dataset and summary report",
	Long: `Load the boundary and statistics sources, reconcile their department
names into canonical keys, aggregate and join them, and write the joined
GeoJSON dataset and the summary report.

Examples:
  accidentatlas reconcile
  accidentatlas reconcile --join left --out out/joined.geojson
  accidentatlas reconcile --department antioquia --report out/report.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if joinMode != "" {
			cfg.Join.Mode = joinMode
		}
		if datasetPath != "" {
			cfg.Output.DatasetPath = datasetPath
		}
		if reportPath != "" {
			cfg.Report.Path = reportPath
		}
		if department != "" {
			cfg.Report.Department = department
		}

		application, err := app.New(cfg, newLogger(cfg))
		if err != nil {
			return err
		}
		return application.Run(cmd.Context())
	},
}

func init() {
	reconcileCmd.Flags().StringVar(&joinMode, "join", "", "join mode: left or outer")
	reconcileCmd.Flags().StringVar(&datasetPath, "out", "", "joined dataset output path")
	reconcileCmd.Flags().StringVar(&reportPath, "report", "", "summary report output path (default stdout)")
	reconcileCmd.Flags().StringVar(&department, "department", "", "department to highlight in the report")
	rootCmd.AddCommand(reconcileCmd)
}
