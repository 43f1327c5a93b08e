package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/carbonshift/ren247/app"
	"github.com/carbonshift/ren247/core/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise the input series",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	series, err := app.New(cfg).LoadSeries()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report.Summarize(series))
}
