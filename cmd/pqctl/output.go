package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderReport(cmd *cobra.Command, report runReport) {
	out := cmd.OutOrStdout()

	stepRows := make([][]string, 0, len(report.Results))
	for _, r := range report.Results {
		result := r.Output
		if r.Error != "" {
			result = "error: " + r.Error
		}
		stepRows = append(stepRows, []string{strconv.Itoa(r.Step), r.Action, r.Queue, result})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Step", "Action", "Queue", "Result"},
		stepRows,
		[]columnAlignment{alignRight},
	))

	if len(report.Queues) == 0 {
		fmt.Fprintln(out, "No queues.")
	}
	for _, q := range report.Queues {
		fmt.Fprintf(out, "\nQueue %s (%d)\n", q.Name, len(q.Entries))
		rows := make([][]string, 0, len(q.Entries))
		for _, e := range q.Entries {
			rows = append(rows, []string{strconv.Itoa(e.Priority), e.Element})
		}
		fmt.Fprintln(out, renderTable([]string{"Priority", "Element"}, rows, []columnAlignment{alignRight}))
	}

	if len(report.Metrics) > 0 {
		names := make([]string, 0, len(report.Metrics))
		for name := range report.Metrics {
			names = append(names, name)
		}
		sort.Strings(names)

		var rows [][]string
		for _, name := range names {
			for _, v := range report.Metrics[name] {
				rows = append(rows, []string{name, formatLabels(v.Labels), strconv.FormatFloat(v.Value, 'f', -1, 64)})
			}
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderTable([]string{"Metric", "Labels", "Value"}, rows, []columnAlignment{alignLeft, alignLeft, alignRight}))
	}
}

func formatLabels(labels map[string]string) string {
	parts := make([]string, 0, len(labels))
	for k, v := range labels {
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
