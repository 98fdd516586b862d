package main

import (
	"context"
	"os"

	"expensetracker/internal/charts"
	"expensetracker/internal/cli"
	applog "expensetracker/internal/log"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)
	store := cli.InitStore(logger, cfg.ExpensesFile)

	app := newApp(cfg, store, charts.NewGenerator(cfg.ChartWidth, cfg.ChartHeight), logger, os.Stdin, os.Stdout)

	logger.Info("Starting expense tracker", applog.FieldPath, cfg.ExpensesFile)
	if err := app.run(context.Background()); err != nil {
		logger.Error("Tracker exited with error", applog.FieldError, err)
		os.Exit(1)
	}
}
