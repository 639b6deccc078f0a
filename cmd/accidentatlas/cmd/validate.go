package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"AccidentAtlas/internal/app"
)

// validateCmd cross-checks canonical keys between the two sources without
// publishing anything.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check join quality between the boundary and statistics sources",
	Long: `Load both sources and report canonical keys that are present in only
one of them, boundary keys that occur more than once, and keys that still
carry accents or encoding corruption after normalization. Exits non-zero
when any finding is present.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		application, err := app.New(cfg, newLogger(cfg))
		if err != nil {
			return err
		}

		findings, err := application.Validate(cmd.Context())
		if err != nil {
			return err
		}

		if findings.Clean() {
			fmt.Fprintln(cmd.OutOrStdout(), "sources reconcile cleanly")
			return nil
		}

		out := cmd.OutOrStdout()
		printKeys(out, "boundaries without stats", findings.BoundaryOnly)
		printKeys(out, "stats without boundaries", findings.StatOnly)
		printKeys(out, "duplicate boundary keys", findings.DuplicateKeys)
		printKeys(out, "suspect keys", findings.SuspectKeys)
		return fmt.Errorf("validation found %d issue classes", issueClasses(findings))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
