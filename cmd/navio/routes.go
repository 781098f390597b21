package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/navio-dev/navio/internal/adminapp"
	"github.com/navio-dev/navio/internal/config"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the demo app's route table",
		Long:  `Print every route pattern the admin dashboard registers, in match order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			app := adminapp.New(adminapp.Options{
				BasePath:    cfg.BasePath,
				DefaultPath: cfg.DefaultPath,
				Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
			})
			defer app.Close()

			printBanner()
			for _, route := range app.Table().Routes() {
				info("%s", route.Pattern)
			}
			return nil
		},
	}
}
