package ops

import (
	"fmt"
	"strconv"
	"strings"
)

const queryResultLimit = 50

// QueryData returns rows matching all column→value pairs of condition; an
// empty condition returns every row.
func QueryData(filePath, sheetName string, condition map[string]string) (bool, string) {
	t, err := loadTable(filePath, sheetName)
	if err != nil {
		return false, err.Error()
	}

	var rows [][]string
	if len(condition) == 0 {
		rows = t.Rows
	} else {
		matched, err := matchRows(t, condition)
		if err != nil {
			return false, err.Error()
		}
		for i, row := range t.Rows {
			if matched[i] {
				rows = append(rows, row)
			}
		}
	}

	if len(rows) == 0 {
		return true, "no rows matched"
	}
	return true, fmt.Sprintf("%d rows matched:\n%s", len(rows), renderRows(t, rows, queryResultLimit))
}

// FilterByValue keeps rows whose column equals value, writing the result to savePath.
func FilterByValue(filePath, sheetName, columnName, value, savePath string) (bool, string) {
	t, err := loadTable(filePath, sheetName)
	if err != nil {
		return false, err.Error()
	}
	idx, err := t.ColumnIndex(columnName)
	if err != nil {
		return false, err.Error()
	}

	var kept [][]string
	for _, row := range t.Rows {
		if t.cell(row, idx) == value {
			kept = append(kept, row)
		}
	}
	t.Rows = kept

	dest, err := saveTable(t, filePath, sheetName, savePath)
	if err != nil {
		return false, err.Error()
	}
	return true, fmt.Sprintf("%d rows kept where %s = %q, saved to %s", len(kept), columnName, value, dest)
}

// SearchText lists the cells whose value contains searchText (case-insensitive).
func SearchText(filePath, sheetName, searchText string) (bool, string) {
	t, err := loadTable(filePath, sheetName)
	if err != nil {
		return false, err.Error()
	}
	needle := strings.ToLower(searchText)

	var hits []string
	for i, row := range t.Rows {
		for j := range t.Columns {
			if strings.Contains(strings.ToLower(t.cell(row, j)), needle) {
				hits = append(hits, fmt.Sprintf("row %d, %s: %s", i, t.Columns[j], t.cell(row, j)))
			}
		}
	}

	if len(hits) == 0 {
		return true, fmt.Sprintf("no cells contain %q", searchText)
	}
	if len(hits) > queryResultLimit {
		hits = append(hits[:queryResultLimit], fmt.Sprintf("... and %d more matches", len(hits)-queryResultLimit))
	}
	return true, fmt.Sprintf("%s found in:\n%s", searchText, strings.Join(hits, "\n"))
}

// UniqueValues lists the distinct values of a column in first-seen order.
func UniqueValues(filePath, sheetName, columnName string) (bool, string) {
	t, err := loadTable(filePath, sheetName)
	if err != nil {
		return false, err.Error()
	}
	idx, err := t.ColumnIndex(columnName)
	if err != nil {
		return false, err.Error()
	}

	seen := make(map[string]bool)
	var values []string
	for _, row := range t.Rows {
		v := t.cell(row, idx)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}

	return true, fmt.Sprintf("%d unique values in %q: %s", len(values), columnName, strings.Join(values, ", "))
}

// FilterByRange keeps rows whose numeric column value lies in [min, max],
// writing the result to savePath. Non-numeric cells never match.
func FilterByRange(filePath, sheetName, columnName string, min, max float64, savePath string) (bool, string) {
	t, err := loadTable(filePath, sheetName)
	if err != nil {
		return false, err.Error()
	}
	idx, err := t.ColumnIndex(columnName)
	if err != nil {
		return false, err.Error()
	}

	var kept [][]string
	for _, row := range t.Rows {
		v, err := strconv.ParseFloat(strings.TrimSpace(t.cell(row, idx)), 64)
		if err == nil && v >= min && v <= max {
			kept = append(kept, row)
		}
	}
	t.Rows = kept

	dest, err := saveTable(t, filePath, sheetName, savePath)
	if err != nil {
		return false, err.Error()
	}
	return true, fmt.Sprintf("%d rows kept where %s in [%s, %s], saved to %s",
		len(kept), columnName, formatFloat(min), formatFloat(max), dest)
}
