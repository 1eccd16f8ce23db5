package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "seekeatz",
	Short: "SeekEatz menu data maintenance CLI",
	Long: `Operator tooling for the SeekEatz menu dataset.

The clean command filters kids-menu and low-calorie items out of the raw
menu JSON files and generates the matching SQL cleanup script for the
menu_items table. Runs are dry-run by default; pass --apply to persist.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds the diagnostic logger. Operator-facing report output goes
// to stdout; the logger only carries debug detail and warnings on stderr.
func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}
