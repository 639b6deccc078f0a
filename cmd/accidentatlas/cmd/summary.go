package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"AccidentAtlas/internal/app"
	"AccidentAtlas/internal/reconcile"
)

var summaryDepartment string

// summaryCmd prints the report for one department without writing the
// joined dataset anywhere.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the summary report for a selected department",
	Long: `Run the reconciliation in memory and print the summary report to
stdout: national totals, per-department shares, the worst-affected
department, and the centroid marker for the selected one.

Examples:
  accidentatlas summary
  accidentatlas summary --department narino`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		cfg.Output.DatasetPath = ""
		cfg.Report.Path = ""
		if summaryDepartment != "" {
			cfg.Report.Department = summaryDepartment
		}

		application, err := app.New(cfg, newLogger(cfg))
		if err != nil {
			return err
		}
		return application.Run(cmd.Context())
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryDepartment, "department", "", "department to highlight (default from config)")
	rootCmd.AddCommand(summaryCmd)
}

func printKeys(out io.Writer, label string, keys []string) {
	if len(keys) == 0 {
		return
	}
	fmt.Fprintf(out, "%s (%d):\n", label, len(keys))
	for _, key := range keys {
		fmt.Fprintf(out, "  - %s\n", key)
	}
}

func issueClasses(findings reconcile.Findings) int {
	classes := 0
	for _, keys := range [][]string{
		findings.BoundaryOnly,
		findings.StatOnly,
		findings.DuplicateKeys,
		findings.SuspectKeys,
	} {
		if len(keys) > 0 {
			classes++
		}
	}
	return classes
}
