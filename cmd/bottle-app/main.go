package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trenner1/bottle-app/internal/adapter/handler"
	"github.com/trenner1/bottle-app/internal/adapter/storage"
	"github.com/trenner1/bottle-app/internal/config"
	"github.com/trenner1/bottle-app/internal/core/domain"
	"github.com/trenner1/bottle-app/internal/core/service"
)

func main() {
	var configPath string

	root := &cobra.Command{
		Use:           "bottle-app",
		Short:         "In-memory beer inventory ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ledger := service.NewLedger(storage.NewMemoryIndex(), logger)
			console := handler.NewConsole(ledger, cmd.InOrStdin(), cmd.OutOrStdout(), !cfg.NoColor)
			console.Run()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	root.AddCommand(newDemoCmd(&configPath))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newDemoCmd replays the scripted walkthrough: flag breakage up front, stock
// two beers, show every listing, edit one record, and print the grand total.
func newDemoCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay a scripted session against a fresh ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()

			out := cmd.OutOrStdout()
			ledger := service.NewLedger(storage.NewMemoryIndex(), logger)

			ledger.FlagBreakage()
			fmt.Fprintln(out, "Breakage flagged.")

			beers := []domain.Beer{
				{
					Name:           "Example IPA",
					Style:          "IPA",
					AlcoholContent: 6.5,
					Size:           domain.NewContainerSize(true, 355),
					Quantity:       24,
					Barcode:        123456789012,
				},
				{
					Name:           "Sample Stout",
					Style:          "Stout",
					AlcoholContent: 7.0,
					Size:           domain.NewContainerSize(false, 12),
					Quantity:       12,
					Barcode:        789012345678,
				},
			}
			for _, beer := range beers {
				id, err := ledger.Add(beer)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d bottles of %s added to stock (ID %d).\n", beer.Quantity, beer.Name, id)
			}

			fmt.Fprintln(out, "\nList of added beers:")
			for _, beer := range ledger.List() {
				fmt.Fprintf(out, "  %d: %s (%s, %g%%, %s) x%d barcode %d\n",
					beer.ID, beer.Name, beer.Style, beer.AlcoholContent, beer.Size, beer.Quantity, beer.Barcode)
			}

			fmt.Fprintln(out, "\nFlagged for breakage:")
			for _, event := range ledger.FlaggedEvents() {
				fmt.Fprintf(out, "  %s x%d\n", event.Name, event.Quantity)
			}
			fmt.Fprintf(out, "Total breakage: %d bottles\n", ledger.TotalBroken())

			fmt.Fprintln(out, "\nTotals:")
			for name, count := range ledger.Totals() {
				fmt.Fprintf(out, "  %s: %d bottles\n", name, count)
			}

			quantity := 30
			if err := ledger.Edit("Example IPA", domain.BeerUpdate{Quantity: &quantity}); err != nil {
				return err
			}
			fmt.Fprintln(out, "\nEdited Example IPA quantity to 30 (counters keep the add/remove history).")

			total, err := ledger.TotalCount()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Total beer count in stock: %d bottles.\n", total)
			return nil
		},
	}
}

// newLogger writes JSON lines to the configured log file so the interactive
// console output stays clean.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.ZapLevel())
	zcfg.OutputPaths = []string{cfg.LogPath}
	zcfg.ErrorOutputPaths = []string{cfg.LogPath}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zcfg.Build()
}
