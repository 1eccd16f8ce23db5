package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/QUAKO-CLOUDY/SeekEatz/pkg/classify"
	"github.com/QUAKO-CLOUDY/SeekEatz/pkg/cleanup"
	"github.com/QUAKO-CLOUDY/SeekEatz/pkg/config"
	"github.com/QUAKO-CLOUDY/SeekEatz/pkg/sqlgen"
)

func init() {
	rootCmd.AddCommand(newCleanCmd())
}

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Filter kids-menu and low-calorie items out of the raw menu files",
		Long: `Scans the data directory for *_raw.json menu files, removes items whose
name or category matches a kids-menu pattern and items at or below the
calorie threshold, and generates SQL DELETE statements for the backing
store.

Without --apply this is a dry run: removals are reported and the SQL file
is written, but no menu file is modified.

Example:
  seekeatz clean            # preview what will be removed
  seekeatz clean --apply    # rewrite the JSON files`,
		Args: cobra.NoArgs,
		RunE: runClean,
	}

	cmd.Flags().Bool("apply", false, "Rewrite the menu files instead of previewing")
	cmd.Flags().String("data-dir", "", "Directory containing *_raw.json menu files")
	cmd.Flags().String("sql-out", "", "Path of the generated SQL cleanup script")
	cmd.Flags().Int("threshold", 0, "Calorie threshold for low-calorie removal")
	cmd.Flags().String("config", "", "Config file (seekeatz.toml or seekeatz.yml)")

	return cmd
}

func runClean(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	apply, _ := cmd.Flags().GetBool("apply")
	classifier := classify.New(cfg.CalorieThreshold, cfg.ExtraKidsPatterns)
	styles := reportStyles()

	svc := cleanup.New(cleanup.Options{
		DataDir:    cfg.DataDir,
		Apply:      apply,
		Classifier: classifier,
		Logger:     logger,
		Out:        os.Stdout,
		Styles:     styles,
	})

	summary, err := svc.Run()
	if err != nil {
		return err
	}

	gen := sqlgen.Generator{Table: cfg.Table, Threshold: cfg.CalorieThreshold}

	rule := strings.Repeat("=", 70)
	fmt.Printf("\n%s\n", rule)
	fmt.Println(styles.Header.Render("SQL TO DELETE FROM DATABASE"))
	fmt.Println(rule)
	fmt.Printf("-- Run this in the SQL editor to remove these items from the %s table\n\n", cfg.Table)
	fmt.Println(gen.Script(summary.Records))

	if err := gen.WriteFile(cfg.SQLOut, summary.Records, summary.TotalRemoved); err != nil {
		return err
	}
	fmt.Printf("📄 SQL also saved to: %s\n", faintStyle.Render(cfg.SQLOut))

	return nil
}

// resolveConfig layers CLI flags over the config file over the defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	var err error

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir, _ = cmd.Flags().GetString("data-dir")
	}
	if cmd.Flags().Changed("sql-out") {
		cfg.SQLOut, _ = cmd.Flags().GetString("sql-out")
	}
	if cmd.Flags().Changed("threshold") {
		cfg.CalorieThreshold, _ = cmd.Flags().GetInt("threshold")
	}

	return cfg, nil
}
