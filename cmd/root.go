package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carbonshift/ren247/config"
	"github.com/carbonshift/ren247/core/report"
	"github.com/carbonshift/ren247/infra/seriesio"
)

var (
	cfgPath       string
	renewablePath string
	facilityPath  string
)

var rootCmd = &cobra.Command{
	Use:   "ren247",
	Short: "Battery sizing for 24/7 renewable facility coverage",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	rootCmd.PersistentFlags().StringVar(&renewablePath, "renewable", "", "renewable generation CSV, overrides config")
	rootCmd.PersistentFlags().StringVar(&facilityPath, "facility", "", "facility power CSV, overrides config")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if renewablePath != "" {
		cfg.Inputs.RenewablePath = renewablePath
	}
	if facilityPath != "" {
		cfg.Inputs.FacilityPath = facilityPath
	}
	return cfg, nil
}

func writeReport(cfg *config.Config, rep report.Sizing) error {
	out := os.Stdout
	if cfg.Output.Path != "" {
		f, err := os.Create(cfg.Output.Path)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		out = f
	}
	if cfg.Output.Format == "csv" {
		return seriesio.WriteReportCSV(out, rep)
	}
	return seriesio.WriteReportJSON(out, rep)
}
