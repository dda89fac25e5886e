package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"seqcannon/internal/solver"
)

const sheetName = "Sheet1"

// WriteTable writes the equation table to an .xlsx workbook:
// header row "stars, nb cards, xyz, fusion", one row per solution,
// with the stars column merged vertically across rows sharing the
// same stars value.
func WriteTable(path string, rows []solver.TableRow) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    []excelize.Border{{Type: "left", Color: "000000", Style: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headers := []string{"stars", "nb cards", "xyz", "fusion"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("failed to write header %q: %w", h, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to style header %q: %w", h, err)
		}
	}

	// Rows sharing a stars value form one visual group: the value is
	// written once and the column cells are merged when the group
	// closes.
	currentStars := 0
	groupStart := 0
	closeGroup := func(lastRow int) error {
		if groupStart == 0 || lastRow <= groupStart {
			return nil
		}
		start, _ := excelize.CoordinatesToCellName(1, groupStart)
		end, _ := excelize.CoordinatesToCellName(1, lastRow)
		if err := f.MergeCell(sheetName, start, end); err != nil {
			return fmt.Errorf("failed to merge stars group at row %d: %w", groupStart, err)
		}
		return nil
	}

	for i, row := range rows {
		rowIdx := i + 2

		if groupStart == 0 || row.Stars != currentStars {
			if err := closeGroup(rowIdx - 1); err != nil {
				return err
			}
			currentStars = row.Stars
			groupStart = rowIdx
			cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
			if err := f.SetCellValue(sheetName, cell, row.Stars); err != nil {
				return fmt.Errorf("failed to write stars at row %d: %w", rowIdx, err)
			}
		}

		for col, v := range []int{row.NBCards, row.Xyz, row.Fusion} {
			cell, _ := excelize.CoordinatesToCellName(col+2, rowIdx)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", rowIdx, err)
			}
		}
	}
	if err := closeGroup(len(rows) + 1); err != nil {
		return err
	}

	return save(f, path)
}

// WriteEnumeration writes a tribute-enumeration result set, one
// labeled section per (Xyz size, Fusion size) bucket with the pairs
// listed beneath it.
func WriteEnumeration(path string, rs *solver.ResultSet) error {
	f := excelize.NewFile()
	defer f.Close()

	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	if err != nil {
		return fmt.Errorf("failed to create section style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    []excelize.Border{{Type: "left", Color: "000000", Style: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	rowIdx := 1
	for _, b := range rs.Buckets {
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
		label := b.Label()
		if len(b.Pairs) == 0 {
			label += " (no valid plays)"
		}
		if err := f.SetCellValue(sheetName, cell, label); err != nil {
			return fmt.Errorf("failed to write section %q: %w", label, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, sectionStyle); err != nil {
			return fmt.Errorf("failed to style section %q: %w", label, err)
		}
		rowIdx++

		if len(b.Pairs) == 0 {
			rowIdx++
			continue
		}

		for col, h := range []string{"xyz ranks", "total", "fusion levels"} {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx)
			if err := f.SetCellValue(sheetName, cell, h); err != nil {
				return fmt.Errorf("failed to write header %q: %w", h, err)
			}
			if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
				return fmt.Errorf("failed to style header %q: %w", h, err)
			}
		}
		rowIdx++

		for _, p := range b.Pairs {
			values := []any{p.Xyz.String(), int(p.Xyz.Sum()), p.Fusion.String()}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx)
				if err := f.SetCellValue(sheetName, cell, v); err != nil {
					return fmt.Errorf("failed to write pair row %d: %w", rowIdx, err)
				}
			}
			rowIdx++
		}
		// Blank spacer row between sections.
		rowIdx++
	}

	if err := f.SetColWidth(sheetName, "A", "C", 16); err != nil {
		return fmt.Errorf("failed to set column widths: %w", err)
	}
	return save(f, path)
}

func save(f *excelize.File, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
