package ops

import (
	"fmt"
	"sort"
	"strings"
)

// SumColumn sums the numeric values of a column.
func SumColumn(filePath, sheetName, columnName string) (bool, string) {
	t, idx, ok, msg := statColumn(filePath, sheetName, columnName)
	if !ok {
		return false, msg
	}
	values := t.numericColumn(idx)
	if len(values) == 0 {
		return false, fmt.Sprintf("column %q has no numeric values", columnName)
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return true, formatFloat(sum)
}

// AverageColumn averages the numeric values of a column.
func AverageColumn(filePath, sheetName, columnName string) (bool, string) {
	t, idx, ok, msg := statColumn(filePath, sheetName, columnName)
	if !ok {
		return false, msg
	}
	values := t.numericColumn(idx)
	if len(values) == 0 {
		return false, fmt.Sprintf("column %q has no numeric values", columnName)
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return true, formatFloat(sum / float64(len(values)))
}

// CountValues counts the non-empty cells of a column, or all data rows when
// columnName is empty.
func CountValues(filePath, sheetName, columnName string) (bool, string) {
	t, err := loadTable(filePath, sheetName)
	if err != nil {
		return false, err.Error()
	}
	if columnName == "" {
		return true, fmt.Sprintf("%d", len(t.Rows))
	}
	idx, err := t.ColumnIndex(columnName)
	if err != nil {
		return false, err.Error()
	}
	count := 0
	for _, row := range t.Rows {
		if strings.TrimSpace(t.cell(row, idx)) != "" {
			count++
		}
	}
	return true, fmt.Sprintf("%d", count)
}

// MaxValue returns the largest numeric value of a column.
func MaxValue(filePath, sheetName, columnName string) (bool, string) {
	return extremum(filePath, sheetName, columnName, func(a, b float64) bool { return a > b })
}

// MinValue returns the smallest numeric value of a column.
func MinValue(filePath, sheetName, columnName string) (bool, string) {
	return extremum(filePath, sheetName, columnName, func(a, b float64) bool { return a < b })
}

func extremum(filePath, sheetName, columnName string, better func(a, b float64) bool) (bool, string) {
	t, idx, ok, msg := statColumn(filePath, sheetName, columnName)
	if !ok {
		return false, msg
	}
	values := t.numericColumn(idx)
	if len(values) == 0 {
		return false, fmt.Sprintf("column %q has no numeric values", columnName)
	}
	best := values[0]
	for _, v := range values[1:] {
		if better(v, best) {
			best = v
		}
	}
	return true, formatFloat(best)
}

// Deduplicate removes duplicate rows, comparing the named columns (all
// columns when none are given) and keeping the first occurrence.
func Deduplicate(filePath, sheetName string, columns []string, savePath string) (bool, string) {
	t, err := loadTable(filePath, sheetName)
	if err != nil {
		return false, err.Error()
	}

	var indices []int
	if len(columns) == 0 {
		for i := range t.Columns {
			indices = append(indices, i)
		}
	} else {
		for _, name := range columns {
			idx, err := t.ColumnIndex(name)
			if err != nil {
				return false, err.Error()
			}
			indices = append(indices, idx)
		}
	}

	seen := make(map[string]bool)
	var kept [][]string
	for _, row := range t.Rows {
		var key []string
		for _, idx := range indices {
			key = append(key, t.cell(row, idx))
		}
		k := strings.Join(key, "\x1f")
		if seen[k] {
			continue
		}
		seen[k] = true
		kept = append(kept, row)
	}
	removed := len(t.Rows) - len(kept)
	t.Rows = kept

	dest, err := saveTable(t, filePath, sheetName, savePath)
	if err != nil {
		return false, err.Error()
	}
	return true, fmt.Sprintf("removed %d duplicate rows, %d remaining, saved to %s", removed, len(kept), dest)
}

// GroupStatistics aggregates a numeric column per distinct value of a group
// column. Supported aggregations: sum, mean, count, max, min.
func GroupStatistics(filePath, sheetName, groupByColumn, valueColumn, aggregation string) (bool, string) {
	t, err := loadTable(filePath, sheetName)
	if err != nil {
		return false, err.Error()
	}
	groupIdx, err := t.ColumnIndex(groupByColumn)
	if err != nil {
		return false, err.Error()
	}
	valueIdx, err := t.ColumnIndex(valueColumn)
	if err != nil {
		return false, err.Error()
	}

	groups := make(map[string][]float64)
	for _, row := range t.Rows {
		key := t.cell(row, groupIdx)
		v, perr := parseCell(t.cell(row, valueIdx))
		if perr == nil {
			groups[key] = append(groups[key], v)
		} else if aggregation == "count" {
			groups[key] = append(groups[key], 0)
		}
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var lines []string
	for _, key := range keys {
		values := groups[key]
		var result float64
		switch aggregation {
		case "sum":
			for _, v := range values {
				result += v
			}
		case "mean":
			for _, v := range values {
				result += v
			}
			result /= float64(len(values))
		case "count":
			result = float64(len(values))
		case "max":
			result = values[0]
			for _, v := range values[1:] {
				if v > result {
					result = v
				}
			}
		case "min":
			result = values[0]
			for _, v := range values[1:] {
				if v < result {
					result = v
				}
			}
		default:
			return false, fmt.Sprintf("unsupported aggregation %q (want sum, mean, count, max or min)", aggregation)
		}
		lines = append(lines, fmt.Sprintf("%s: %s", key, formatFloat(result)))
	}

	if len(lines) == 0 {
		return false, fmt.Sprintf("no aggregatable values in column %q", valueColumn)
	}
	return true, fmt.Sprintf("%s of %s by %s:\n%s", aggregation, valueColumn, groupByColumn, strings.Join(lines, "\n"))
}

// CalculateStatistics reports count, sum, mean, min and max of a numeric column.
func CalculateStatistics(filePath, sheetName, columnName string) (bool, string) {
	t, idx, ok, msg := statColumn(filePath, sheetName, columnName)
	if !ok {
		return false, msg
	}
	values := t.numericColumn(idx)
	if len(values) == 0 {
		return false, fmt.Sprintf("column %q has no numeric values", columnName)
	}

	sum, min, max := 0.0, values[0], values[0]
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return true, fmt.Sprintf("count=%d sum=%s mean=%s min=%s max=%s",
		len(values), formatFloat(sum), formatFloat(sum/float64(len(values))), formatFloat(min), formatFloat(max))
}

func statColumn(filePath, sheetName, columnName string) (*Table, int, bool, string) {
	t, err := loadTable(filePath, sheetName)
	if err != nil {
		return nil, 0, false, err.Error()
	}
	idx, err := t.ColumnIndex(columnName)
	if err != nil {
		return nil, 0, false, err.Error()
	}
	return t, idx, true, ""
}
