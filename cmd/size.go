package cmd

import (
	"github.com/spf13/cobra"

	"github.com/carbonshift/ren247/app"
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Estimate the battery capacity needed for 24/7 renewable coverage",
	RunE:  runSize,
}

func init() {
	rootCmd.AddCommand(sizeCmd)
}

func runSize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc := app.New(cfg)
	series, err := svc.LoadSeries()
	if err != nil {
		return err
	}
	rep, err := svc.Size(series)
	if err != nil {
		return err
	}
	return writeReport(cfg, rep)
}
