package ops

import (
	"fmt"
	"strings"
)

// AddRow appends one row to a sheet; values come from a column→value map.
func AddRow(filePath, sheetName string, rowData map[string]string, savePath string) (bool, string) {
	t, err := loadTable(filePath, sheetName)
	if err != nil {
		return false, err.Error()
	}

	row := make([]string, len(t.Columns))
	for col, value := range rowData {
		idx, err := t.ColumnIndex(col)
		if err != nil {
			return false, err.Error()
		}
		row[idx] = value
	}
	t.Rows = append(t.Rows, row)

	dest, err := saveTable(t, filePath, sheetName, savePath)
	if err != nil {
		return false, err.Error()
	}
	return true, fmt.Sprintf("added 1 row, %d rows total, saved to %s", len(t.Rows), dest)
}

// AddColumn appends a new column filled with a default value.
func AddColumn(filePath, sheetName, columnName, defaultValue, savePath string) (bool, string) {
	t, err := loadTable(filePath, sheetName)
	if err != nil {
		return false, err.Error()
	}
	if _, err := t.ColumnIndex(columnName); err == nil {
		return false, fmt.Sprintf("column %q already exists", columnName)
	}

	t.Columns = append(t.Columns, columnName)
	for i := range t.Rows {
		for len(t.Rows[i]) < len(t.Columns)-1 {
			t.Rows[i] = append(t.Rows[i], "")
		}
		t.Rows[i] = append(t.Rows[i], defaultValue)
	}

	dest, err := saveTable(t, filePath, sheetName, savePath)
	if err != nil {
		return false, err.Error()
	}
	return true, fmt.Sprintf("added column %q, saved to %s", columnName, dest)
}

// DeleteRow removes every row matching all column→value pairs of condition.
func DeleteRow(filePath, sheetName string, condition map[string]string, savePath string) (bool, string) {
	t, err := loadTable(filePath, sheetName)
	if err != nil {
		return false, err.Error()
	}
	if len(condition) == 0 {
		return false, "no delete condition given"
	}

	matched, err := matchRows(t, condition)
	if err != nil {
		return false, err.Error()
	}

	var kept [][]string
	removed := 0
	for i, row := range t.Rows {
		if matched[i] {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	t.Rows = kept

	dest, err := saveTable(t, filePath, sheetName, savePath)
	if err != nil {
		return false, err.Error()
	}
	return true, fmt.Sprintf("removed %d rows, %d remaining, saved to %s", removed, len(t.Rows), dest)
}

// DeleteColumn removes one or more columns by name.
func DeleteColumn(filePath, sheetName string, columnNames []string, savePath string) (bool, string) {
	t, err := loadTable(filePath, sheetName)
	if err != nil {
		return false, err.Error()
	}

	drop := make(map[int]bool, len(columnNames))
	for _, name := range columnNames {
		idx, err := t.ColumnIndex(name)
		if err != nil {
			return false, err.Error()
		}
		drop[idx] = true
	}

	var columns []string
	for i, col := range t.Columns {
		if !drop[i] {
			columns = append(columns, col)
		}
	}
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		var cells []string
		for j := range t.Columns {
			if !drop[j] {
				cells = append(cells, t.cell(row, j))
			}
		}
		rows[i] = cells
	}
	t.Columns, t.Rows = columns, rows

	dest, err := saveTable(t, filePath, sheetName, savePath)
	if err != nil {
		return false, err.Error()
	}
	return true, fmt.Sprintf("removed columns %s, saved to %s", strings.Join(columnNames, ", "), dest)
}

// DeleteEmptyRows removes rows whose cells are all blank.
func DeleteEmptyRows(filePath, sheetName, savePath string) (bool, string) {
	t, err := loadTable(filePath, sheetName)
	if err != nil {
		return false, err.Error()
	}

	var kept [][]string
	removed := 0
	for _, row := range t.Rows {
		empty := true
		for _, v := range row {
			if strings.TrimSpace(v) != "" {
				empty = false
				break
			}
		}
		if empty {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	t.Rows = kept

	dest, err := saveTable(t, filePath, sheetName, savePath)
	if err != nil {
		return false, err.Error()
	}
	return true, fmt.Sprintf("removed %d empty rows, %d remaining, saved to %s", removed, len(t.Rows), dest)
}

// ModifyCell sets one cell, addressed by zero-based data row index and column name.
func ModifyCell(filePath, sheetName string, rowIndex int, columnName, newValue, savePath string) (bool, string) {
	t, err := loadTable(filePath, sheetName)
	if err != nil {
		return false, err.Error()
	}
	if rowIndex < 0 || rowIndex >= len(t.Rows) {
		return false, fmt.Sprintf("row index %d out of range (0-%d)", rowIndex, len(t.Rows)-1)
	}
	idx, err := t.ColumnIndex(columnName)
	if err != nil {
		return false, err.Error()
	}

	for len(t.Rows[rowIndex]) <= idx {
		t.Rows[rowIndex] = append(t.Rows[rowIndex], "")
	}
	t.Rows[rowIndex][idx] = newValue

	dest, err := saveTable(t, filePath, sheetName, savePath)
	if err != nil {
		return false, err.Error()
	}
	return true, fmt.Sprintf("set %s[%d] = %q, saved to %s", columnName, rowIndex, newValue, dest)
}

// ModifyColumn sets every cell of a column to the same value.
func ModifyColumn(filePath, sheetName, columnName, newValue, savePath string) (bool, string) {
	t, err := loadTable(filePath, sheetName)
	if err != nil {
		return false, err.Error()
	}
	idx, err := t.ColumnIndex(columnName)
	if err != nil {
		return false, err.Error()
	}

	for i := range t.Rows {
		for len(t.Rows[i]) <= idx {
			t.Rows[i] = append(t.Rows[i], "")
		}
		t.Rows[i][idx] = newValue
	}

	dest, err := saveTable(t, filePath, sheetName, savePath)
	if err != nil {
		return false, err.Error()
	}
	return true, fmt.Sprintf("updated %d cells in column %q, saved to %s", len(t.Rows), columnName, dest)
}

// matchRows reports, per row, whether all condition pairs hold.
func matchRows(t *Table, condition map[string]string) (map[int]bool, error) {
	indices := make(map[int]string, len(condition))
	for col, value := range condition {
		idx, err := t.ColumnIndex(col)
		if err != nil {
			return nil, err
		}
		indices[idx] = value
	}

	matched := make(map[int]bool, len(t.Rows))
	for i, row := range t.Rows {
		all := true
		for idx, want := range indices {
			if t.cell(row, idx) != want {
				all = false
				break
			}
		}
		matched[i] = all
	}
	return matched, nil
}
