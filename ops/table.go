// Package ops is the spreadsheet operation library exposed to generated
// scripts. Every public operation is stateless, operates on an input path and
// sheet identifier, and returns (success, result-or-message) so scripts can
// branch on the outcome without error plumbing.
package ops

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is the in-memory form of one sheet: a header plus string rows.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of name in the header.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, col := range t.Columns {
		if col == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("column %q does not exist", name)
}

// cell returns the value at row/col, tolerating ragged rows.
func (t *Table) cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

// numericColumn extracts the parseable numeric values of a column.
func (t *Table) numericColumn(col int) []float64 {
	var values []float64
	for _, row := range t.Rows {
		v, err := strconv.ParseFloat(strings.TrimSpace(t.cell(row, col)), 64)
		if err == nil {
			values = append(values, v)
		}
	}
	return values
}

func loadTable(filePath, sheetName string) (*Table, error) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}
	if strings.EqualFold(filepath.Ext(filePath), ".csv") {
		return loadCSV(filePath)
	}
	return loadWorkbookSheet(filePath, sheetName)
}

func loadWorkbookSheet(filePath, sheetName string) (*Table, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("sheet %q does not exist in %s", sheetName, filePath)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}
	return &Table{Columns: rows[0], Rows: rows[1:]}, nil
}

func loadCSV(filePath string) (*Table, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}
	return &Table{Columns: records[0], Rows: records[1:]}, nil
}

// saveTable writes the table to savePath, or back over filePath when
// savePath is empty. The format follows the destination's extension.
func saveTable(t *Table, filePath, sheetName, savePath string) (string, error) {
	dest := savePath
	if dest == "" {
		dest = filePath
	}
	if strings.EqualFold(filepath.Ext(dest), ".csv") {
		return dest, saveCSV(t, dest)
	}
	return dest, saveWorkbookSheet(t, dest, sheetName)
}

func saveWorkbookSheet(t *Table, dest, sheetName string) error {
	if sheetName == "" {
		sheetName = "Sheet1"
	}
	f := excelize.NewFile()
	defer f.Close()

	if sheetName != "Sheet1" {
		if _, err := f.NewSheet(sheetName); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", sheetName, err)
		}
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("failed to replace default sheet: %w", err)
		}
	}

	if err := writeSheet(f, sheetName, t); err != nil {
		return err
	}
	if err := f.SaveAs(dest); err != nil {
		return fmt.Errorf("failed to save %s: %w", dest, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheetName string, t *Table) error {
	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, axis, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	return nil
}

func saveCSV(t *Table, dest string) error {
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(t.Columns); err != nil {
		return err
	}
	if err := writer.WriteAll(t.Rows); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func parseCell(v string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(v), 64)
}

// formatFloat renders statistics without trailing float noise.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// renderRows formats matching rows for query-style results, bounded to keep
// messages readable.
func renderRows(t *Table, rows [][]string, limit int) string {
	var b strings.Builder
	for i, row := range rows {
		if i == limit {
			fmt.Fprintf(&b, "... and %d more rows", len(rows)-limit)
			break
		}
		var fields []string
		for j, col := range t.Columns {
			fields = append(fields, fmt.Sprintf("%s=%s", col, t.cell(row, j)))
		}
		b.WriteString(strings.Join(fields, ", "))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
