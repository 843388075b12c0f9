package ops

// Descriptor pairs an operation name with its one-line description, as shown
// to the generation model.
type Descriptor struct {
	Name        string
	Description string
}

// registry is the static registration table of every public operation. It is
// maintained by hand next to the operations themselves; descriptions here are
// the single source the prompt builder reads.
var registry = []Descriptor{
	// CRUD
	{"AddRow", "Append a row to a sheet from a column-to-value map."},
	{"AddColumn", "Append a new column filled with a default value."},
	{"DeleteRow", "Remove every row matching a column-to-value condition."},
	{"DeleteColumn", "Remove one or more columns by name."},
	{"DeleteEmptyRows", "Remove rows whose cells are all blank."},
	{"ModifyCell", "Set one cell by data row index and column name."},
	{"ModifyColumn", "Set every cell of a column to the same value."},
	// Query
	{"QueryData", "Return rows matching a column-to-value condition."},
	{"FilterByValue", "Keep rows whose column equals a value and save the result."},
	{"SearchText", "List cells containing a text, case-insensitively."},
	{"UniqueValues", "List the distinct values of a column."},
	{"FilterByRange", "Keep rows whose numeric column lies in [min, max] and save the result."},
	// Statistics
	{"SumColumn", "Sum the numeric values of a column."},
	{"AverageColumn", "Average the numeric values of a column."},
	{"CountValues", "Count the non-empty cells of a column, or all rows."},
	{"MaxValue", "Largest numeric value of a column."},
	{"MinValue", "Smallest numeric value of a column."},
	{"Deduplicate", "Remove duplicate rows compared on the given columns and save the result."},
	{"GroupStatistics", "Aggregate a numeric column per group (sum, mean, count, max, min)."},
	{"CalculateStatistics", "Report count, sum, mean, min and max of a numeric column."},
	// Merge
	{"MergeFiles", "Concatenate the rows of several files into one output file."},
	{"MergeSheets", "Concatenate several sheets of one workbook into one output file."},
	{"JoinFiles", "Join two files on key columns (inner or left)."},
	{"AppendData", "Append the rows of one sheet to another, matching columns by name."},
}

// Registry returns the operation descriptors in registration order.
func Registry() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)
	return out
}
