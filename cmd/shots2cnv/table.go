package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// tableLayout describes one CLI table. Numeric columns are right-aligned in
// header, body and footer so totals line up under their column.
type tableLayout struct {
	headers []string
	rows    [][]string
	numeric []bool
	footer  []string
	caption string
}

func (l tableLayout) render() string {
	columns := len(l.headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Footer = text.FormatDefault

	tw.AppendHeader(padRow(l.headers, columns))
	for _, row := range l.rows {
		tw.AppendRow(padRow(row, columns))
	}
	if len(l.footer) > 0 {
		tw.AppendFooter(padRow(l.footer, columns))
	}
	if l.caption != "" {
		tw.SetCaption("%s", l.caption)
	}

	configs := make([]table.ColumnConfig, columns)
	for i := range configs {
		align := text.AlignLeft
		if i < len(l.numeric) && l.numeric[i] {
			align = text.AlignRight
		}
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: align,
			AlignFooter: align,
		}
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// padRow fills short rows with empty cells.
func padRow(values []string, columns int) table.Row {
	r := make(table.Row, columns)
	for i := range r {
		if i < len(values) {
			r[i] = values[i]
		} else {
			r[i] = ""
		}
	}
	return r
}
