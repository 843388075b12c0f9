package ops

import (
	"fmt"
)

// MergeFiles concatenates the rows of several files into one output table.
// Columns are the union of all inputs, in first-seen order; sheetNames pairs
// with filePaths (a single entry applies to every file).
func MergeFiles(filePaths []string, sheetNames []string, savePath string) (bool, string) {
	if len(filePaths) < 2 {
		return false, "need at least two files to merge"
	}
	if savePath == "" {
		return false, "a save path is required for merged output"
	}
	if len(sheetNames) != 1 && len(sheetNames) != len(filePaths) {
		return false, fmt.Sprintf("got %d sheet names for %d files", len(sheetNames), len(filePaths))
	}

	sheetFor := func(i int) string {
		if len(sheetNames) == 1 {
			return sheetNames[0]
		}
		return sheetNames[i]
	}

	var tables []*Table
	for i, path := range filePaths {
		t, err := loadTable(path, sheetFor(i))
		if err != nil {
			return false, err.Error()
		}
		tables = append(tables, t)
	}

	merged := concatTables(tables)
	dest, err := saveTable(merged, filePaths[0], sheetFor(0), savePath)
	if err != nil {
		return false, err.Error()
	}
	return true, fmt.Sprintf("merged %d files into %d rows, saved to %s", len(filePaths), len(merged.Rows), dest)
}

// MergeSheets concatenates several sheets of one workbook into one output table.
func MergeSheets(filePath string, sheetNames []string, savePath string) (bool, string) {
	if len(sheetNames) < 2 {
		return false, "need at least two sheets to merge"
	}
	if savePath == "" {
		return false, "a save path is required for merged output"
	}

	var tables []*Table
	for _, sheet := range sheetNames {
		t, err := loadTable(filePath, sheet)
		if err != nil {
			return false, err.Error()
		}
		tables = append(tables, t)
	}

	merged := concatTables(tables)
	dest, err := saveTable(merged, filePath, sheetNames[0], savePath)
	if err != nil {
		return false, err.Error()
	}
	return true, fmt.Sprintf("merged %d sheets into %d rows, saved to %s", len(sheetNames), len(merged.Rows), dest)
}

// JoinFiles joins two files on key columns. how is "inner" or "left"; right
// columns other than the key are appended to the left table's header.
func JoinFiles(leftFile, rightFile, leftSheet, rightSheet, leftOn, rightOn, how, savePath string) (bool, string) {
	if how != "inner" && how != "left" {
		return false, fmt.Sprintf("unsupported join type %q (want inner or left)", how)
	}
	if savePath == "" {
		return false, "a save path is required for joined output"
	}

	left, err := loadTable(leftFile, leftSheet)
	if err != nil {
		return false, err.Error()
	}
	right, err := loadTable(rightFile, rightSheet)
	if err != nil {
		return false, err.Error()
	}
	leftIdx, err := left.ColumnIndex(leftOn)
	if err != nil {
		return false, err.Error()
	}
	rightIdx, err := right.ColumnIndex(rightOn)
	if err != nil {
		return false, err.Error()
	}

	// First match wins when the right side has duplicate keys.
	rightByKey := make(map[string][]string)
	for _, row := range right.Rows {
		key := right.cell(row, rightIdx)
		if _, ok := rightByKey[key]; !ok {
			rightByKey[key] = row
		}
	}

	joined := &Table{Columns: append([]string{}, left.Columns...)}
	var rightCols []int
	for j, col := range right.Columns {
		if j == rightIdx {
			continue
		}
		rightCols = append(rightCols, j)
		joined.Columns = append(joined.Columns, col)
	}

	for _, row := range left.Rows {
		match, ok := rightByKey[left.cell(row, leftIdx)]
		if !ok && how == "inner" {
			continue
		}
		out := make([]string, len(left.Columns))
		for j := range left.Columns {
			out[j] = left.cell(row, j)
		}
		for _, j := range rightCols {
			if ok {
				out = append(out, right.cell(match, j))
			} else {
				out = append(out, "")
			}
		}
		joined.Rows = append(joined.Rows, out)
	}

	dest, err := saveTable(joined, leftFile, leftSheet, savePath)
	if err != nil {
		return false, err.Error()
	}
	return true, fmt.Sprintf("%s join on %s=%s produced %d rows, saved to %s", how, leftOn, rightOn, len(joined.Rows), dest)
}

// AppendData appends the rows of one sheet to another, matching columns by
// name; columns missing from the appended sheet are left blank.
func AppendData(baseFile, appendFile, baseSheet, appendSheet, savePath string) (bool, string) {
	base, err := loadTable(baseFile, baseSheet)
	if err != nil {
		return false, err.Error()
	}
	extra, err := loadTable(appendFile, appendSheet)
	if err != nil {
		return false, err.Error()
	}

	mapping := make([]int, len(base.Columns))
	for i, col := range base.Columns {
		mapping[i] = -1
		for j, other := range extra.Columns {
			if col == other {
				mapping[i] = j
				break
			}
		}
	}

	appended := 0
	for _, row := range extra.Rows {
		out := make([]string, len(base.Columns))
		for i, j := range mapping {
			if j >= 0 {
				out[i] = extra.cell(row, j)
			}
		}
		base.Rows = append(base.Rows, out)
		appended++
	}

	dest, err := saveTable(base, baseFile, baseSheet, savePath)
	if err != nil {
		return false, err.Error()
	}
	return true, fmt.Sprintf("appended %d rows, %d total, saved to %s", appended, len(base.Rows), dest)
}

// concatTables stacks tables over the union of their columns.
func concatTables(tables []*Table) *Table {
	var columns []string
	index := make(map[string]int)
	for _, t := range tables {
		for _, col := range t.Columns {
			if _, ok := index[col]; !ok {
				index[col] = len(columns)
				columns = append(columns, col)
			}
		}
	}

	merged := &Table{Columns: columns}
	for _, t := range tables {
		for _, row := range t.Rows {
			out := make([]string, len(columns))
			for j, col := range t.Columns {
				out[index[col]] = t.cell(row, j)
			}
			merged.Rows = append(merged.Rows, out)
		}
	}

	return merged
}
