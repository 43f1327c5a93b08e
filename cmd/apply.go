package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carbonshift/ren247/app"
)

var applyCapacity float64

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Estimate non-renewable energy left uncovered by a given battery",
	RunE:  runApply,
}

func init() {
	applyCmd.Flags().Float64Var(&applyCapacity, "capacity", 0, "battery capacity in MWh")
	if err := applyCmd.MarkFlagRequired("capacity"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	if applyCapacity < 0 {
		return fmt.Errorf("capacity must not be negative")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc := app.New(cfg)
	series, err := svc.LoadSeries()
	if err != nil {
		return err
	}
	uncovered, err := svc.Apply(series, applyCapacity)
	if err != nil {
		return err
	}
	cmd.Printf("uncovered_mwh=%.6f\n", uncovered)
	return nil
}
