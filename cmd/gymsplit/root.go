package main

import (
	"context"
	"strconv"
	"time"

	"github.com/2beens/gymsplit/internal/logstore"
	"github.com/2beens/gymsplit/internal/schedule"
	"github.com/2beens/gymsplit/internal/settings"
	"github.com/2beens/gymsplit/internal/telemetry/metrics"
	"github.com/2beens/gymsplit/internal/tracker"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type cliOptions struct {
	token          string
	sheetID        string
	sheetsEndpoint string
	startDay       int
	verbose        bool

	now func() time.Time
}

func (o *cliOptions) settings() settings.Static {
	return settings.Static{
		SpreadsheetID: o.sheetID,
		CycleStartDay: o.startDay,
	}
}

func (o *cliOptions) cycleConfig() schedule.CycleConfig {
	return schedule.CycleConfig{StartDay: o.startDay}
}

func (o *cliOptions) credential() logstore.Credential {
	return logstore.Credential(o.token)
}

func (o *cliOptions) service() *tracker.Service {
	backend := logstore.NewSheetsBackend(o.sheetsEndpoint, nil)
	m := metrics.NewManager("gymsplit", "cli", prometheus.NewRegistry())
	adapter := logstore.NewAdapter(backend, m).WithClock(o.now)
	return tracker.NewService(adapter, o.settings()).WithClock(o.now)
}

func newRootCmd(getenv func(string) string, now func() time.Time) *cobra.Command {
	opts := &cliOptions{now: now}

	defaultStartDay := 1
	if v, err := strconv.Atoi(getenv("GYMSPLIT_CYCLE_START_DAY")); err == nil {
		defaultStartDay = v
	}

	rootCmd := &cobra.Command{
		Use:           "gymsplit",
		Short:         "Upper/lower split workout tracker",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(cmd.ErrOrStderr())
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.WarnLevel)
			}
			return opts.cycleConfig().Validate()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.token, "token", getenv("GYMSPLIT_TOKEN"), "OAuth bearer token for the spreadsheet (env GYMSPLIT_TOKEN)")
	pf.StringVar(&opts.sheetID, "sheet", getenv("GYMSPLIT_SHEET_ID"), "spreadsheet id (env GYMSPLIT_SHEET_ID)")
	pf.StringVar(&opts.sheetsEndpoint, "sheets-endpoint", getenv("GYMSPLIT_SHEETS_ENDPOINT"), "Sheets API base URL, empty for the public API")
	pf.IntVar(&opts.startDay, "start-day", defaultStartDay, "weekday the cycle starts on, 0=Sunday .. 6=Saturday")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		newTodayCmd(opts),
		newLogCmd(opts),
		newHistoryCmd(opts),
	)
	return rootCmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
