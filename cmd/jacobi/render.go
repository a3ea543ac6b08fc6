// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorError  = lipgloss.Color("#E74C3C")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = cellStyle.Foreground(colorError)
)

// report collects table rows; failed rows render in the error colour.
type report struct {
	headers []string
	rows    [][]string
	failed  map[int]bool
}

func newReport(headers ...string) *report {
	return &report{headers: headers, failed: map[int]bool{}}
}

func (r *report) add(cells ...string) {
	r.rows = append(r.rows, cells)
}

func (r *report) addFailed(cells ...string) {
	r.failed[len(r.rows)] = true
	r.add(cells...)
}

func (r *report) render() string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers(r.headers...).
		Rows(r.rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case r.failed[row]:
				return errorStyle
			default:
				return cellStyle
			}
		}).
		Render()
}

func title(s string) string {
	return titleStyle.Render(s)
}

// formatValues renders a spectrum with 6 significant digits.
func formatValues(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', 6, 64)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.3g", v)
}
