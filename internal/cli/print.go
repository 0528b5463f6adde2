package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
)

// table accumulates rows and renders them as aligned columns with a
// styled header row.
type table struct {
	out io.Writer
	t   *lgtable.Table
}

func newTable(out io.Writer, headers ...string) *table {
	t := lgtable.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return styleHeader.PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		}).
		Headers(headers...)
	return &table{out: out, t: t}
}

func (t *table) row(cells ...any) {
	parts := make([]string, 0, len(cells))
	for _, cell := range cells {
		parts = append(parts, fmt.Sprint(cell))
	}
	t.t.Row(parts...)
}

func (t *table) flush() error {
	_, err := fmt.Fprintln(t.out, t.t)
	return err
}

// fmtTime renders a timestamp for table output; zero values print as "-".
func fmtTime(t time.Time) string {
	if t.IsZero() {
		return styleDim.Render("-")
	}
	return t.Format("2006-01-02 15:04")
}

// fmtDate renders a date for table output; zero values print as "-".
func fmtDate(t time.Time) string {
	if t.IsZero() {
		return styleDim.Render("-")
	}
	return t.Format("2006-01-02")
}

// fmtAmount trims trailing zeros from a stock amount.
func fmtAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
