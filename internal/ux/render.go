// Package ux renders solver output for the terminal.
package ux

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"seqcannon/internal/solver"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Align(lipgloss.Right).Padding(0, 1)
	summaryStyle = lipgloss.NewStyle().Faint(true)
)

// RenderTable writes the equation table as a bordered terminal table.
func RenderTable(w io.Writer, rows []solver.TableRow) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("STARS", "NB CARDS", "XYZ", "FUSION")

	for _, r := range rows {
		t.Row(
			strconv.Itoa(r.Stars),
			strconv.Itoa(r.NBCards),
			strconv.Itoa(r.Xyz),
			strconv.Itoa(r.Fusion),
		)
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err := fmt.Fprintln(w, summaryStyle.Render(fmt.Sprintf("%d solutions", len(rows))))
	return err
}

// RenderEnumeration writes a tribute-enumeration result set as one
// terminal table per bucket.
func RenderEnumeration(w io.Writer, rs *solver.ResultSet) error {
	for _, b := range rs.Buckets {
		if _, err := fmt.Fprintln(w, sectionStyle.Render(b.Label())); err != nil {
			return fmt.Errorf("failed to render section: %w", err)
		}

		if len(b.Pairs) == 0 {
			if _, err := fmt.Fprintln(w, summaryStyle.Render("  no valid plays")); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			continue
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			}).
			Headers("XYZ RANKS", "TOTAL", "FUSION LEVELS")
		for _, p := range b.Pairs {
			t.Row(p.Xyz.String(), strconv.Itoa(int(p.Xyz.Sum())), p.Fusion.String())
		}

		if _, err := fmt.Fprintln(w, t.Render()); err != nil {
			return fmt.Errorf("failed to render bucket %s: %w", b.Label(), err)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, summaryStyle.Render(fmt.Sprintf("%d valid plays across %d groupings", rs.TotalPairs, len(rs.Buckets))))
	return err
}
