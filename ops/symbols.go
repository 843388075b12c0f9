package ops

import "reflect"

// Symbols exposes the operation library to interpreted scripts under the
// import path "sheetflow/ops". The entries mirror the registry; a registered
// operation missing here would be invisible to generated code.
var Symbols = map[string]map[string]reflect.Value{
	"sheetflow/ops/ops": {
		"AddRow":              reflect.ValueOf(AddRow),
		"AddColumn":           reflect.ValueOf(AddColumn),
		"DeleteRow":           reflect.ValueOf(DeleteRow),
		"DeleteColumn":        reflect.ValueOf(DeleteColumn),
		"DeleteEmptyRows":     reflect.ValueOf(DeleteEmptyRows),
		"ModifyCell":          reflect.ValueOf(ModifyCell),
		"ModifyColumn":        reflect.ValueOf(ModifyColumn),
		"QueryData":           reflect.ValueOf(QueryData),
		"FilterByValue":       reflect.ValueOf(FilterByValue),
		"SearchText":          reflect.ValueOf(SearchText),
		"UniqueValues":        reflect.ValueOf(UniqueValues),
		"FilterByRange":       reflect.ValueOf(FilterByRange),
		"SumColumn":           reflect.ValueOf(SumColumn),
		"AverageColumn":       reflect.ValueOf(AverageColumn),
		"CountValues":         reflect.ValueOf(CountValues),
		"MaxValue":            reflect.ValueOf(MaxValue),
		"MinValue":            reflect.ValueOf(MinValue),
		"Deduplicate":         reflect.ValueOf(Deduplicate),
		"GroupStatistics":     reflect.ValueOf(GroupStatistics),
		"CalculateStatistics": reflect.ValueOf(CalculateStatistics),
		"MergeFiles":          reflect.ValueOf(MergeFiles),
		"MergeSheets":         reflect.ValueOf(MergeSheets),
		"JoinFiles":           reflect.ValueOf(JoinFiles),
		"AppendData":          reflect.ValueOf(AppendData),
	},
}
