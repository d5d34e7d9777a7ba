package main

import (
	"fmt"

	"github.com/KavinB2004/QueueManager/internal/script"
	"github.com/KavinB2004/QueueManager/metrics"
	"github.com/KavinB2004/QueueManager/monitoring"
	"github.com/KavinB2004/QueueManager/registry"
	"github.com/spf13/cobra"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

type runReport struct {
	Results []script.Result                  `json:"results"`
	Queues  []script.QueueState              `json:"queues"`
	Metrics map[string][]metrics.MetricValue `json:"metrics,omitempty"`
}

func newRunCommand(logLevel *string) *cobra.Command {
	var format string
	var showMetrics bool

	cmd := &cobra.Command{
		Use:   "run <script.toml>",
		Short: "Replay a script against an empty registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatTable && format != formatJSON {
				return fmt.Errorf("unsupported format %q (want %s or %s)", format, formatTable, formatJSON)
			}

			s, err := script.LoadFile(args[0])
			if err != nil {
				return err
			}

			logger, err := monitoring.NewLogger("pqctl", *logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			metricRegistry := metrics.NewRegistry()
			reg := registry.New(
				registry.WithLogger(monitoring.Component(logger, "registry")),
				registry.WithStats(monitoring.NewStats(metricRegistry)),
			)

			report := runReport{
				Results: script.Run(reg, s, monitoring.Component(logger, "script")),
				Queues:  script.Snapshot(reg),
			}
			if showMetrics {
				report.Metrics = metricRegistry.GetMetrics()
			}

			if format == formatJSON {
				return writeJSON(cmd, report)
			}
			renderReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format (table or json)")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Include queue metrics in the output")

	return cmd
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <script.toml>",
		Short: "Validate a script without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.LoadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d steps ok\n", args[0], len(s.Steps))
			return nil
		},
	}
}
