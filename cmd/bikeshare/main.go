package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"bikeshare/internal/bootstrap"
	"bikeshare/internal/platform/config"
	"bikeshare/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "bikeshare",
		Short:         "Explore US bike-share trip data",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			interrupts := make(chan os.Signal, 1)
			signal.Notify(interrupts, os.Interrupt)
			defer signal.Stop(interrupts)
			return bootstrap.RunSession(cmd.Context(), app, cmd.InOrStdin(), cmd.OutOrStdout(), interrupts)
		},
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", ".", "directory holding the city trip files")

	root.AddCommand(newStatsCmd(&dataDir))
	root.AddCommand(newBrowseCmd(&dataDir))
	root.AddCommand(newReindexCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logging.New(cfg.Logging, os.Stderr))
}

type filterFlags struct {
	city  string
	month string
	day   string
}

func (f *filterFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.city, "city", "chicago", "city: chicago|new york city|washington")
	cmd.Flags().StringVar(&f.month, "month", "all", "month name january..december, or all")
	cmd.Flags().StringVar(&f.day, "day", "all", "weekday name monday..sunday, or all")
}

func newStatsCmd(dataDir *string) *cobra.Command {
	var filter filterFlags
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print trip statistics for one filter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunReport(cmd.Context(), app, cmd.OutOrStdout(), filter.city, filter.month, filter.day)
		},
	}
	filter.bind(cmd)
	return cmd
}

func newBrowseCmd(dataDir *string) *cobra.Command {
	var filter filterFlags
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through filtered trips in a terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunBrowse(cmd.Context(), app, filter.city, filter.month, filter.day)
		},
	}
	filter.bind(cmd)
	return cmd
}

func newReindexCmd(dataDir *string) *cobra.Command {
	var cities []string
	cmd := &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite trip store from the city files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.TripsCLI.Reindex(cmd.Context(), cities)
			if err != nil {
				return err
			}
			for _, c := range out.Cities {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reindexed %s: %s rows from %s\n", c.City, humanize.Comma(int64(c.Rows)), c.Path)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&cities, "city", nil, "cities to reindex (default all)")
	return cmd
}
