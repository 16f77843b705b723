package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// summaryRow is one label/count line of a summary table.
type summaryRow struct {
	label string
	value string
}

// renderSummaryTable draws labels on the left and right-aligned values.
func renderSummaryTable(labelHeader, valueHeader string, rows []summaryRow) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{labelHeader, valueHeader})
	for _, row := range rows {
		tw.AppendRow(table.Row{row.label, row.value})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
