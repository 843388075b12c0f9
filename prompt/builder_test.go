package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetflow/catalog"
	"sheetflow/ops"
)

func sampleFiles() []catalog.FileDescriptor {
	return []catalog.FileDescriptor{
		{
			Filename: "sales.xlsx",
			Sheets: []catalog.SheetDescriptor{
				{Name: "Q1", Columns: []string{"Region", "Amount"}, Rows: 120},
			},
		},
		{
			Filename: "people.csv",
			Sheets: []catalog.SheetDescriptor{
				{Name: "CSV", Columns: []string{"Name", "Age"}, Rows: 3},
			},
		},
	}
}

func TestBuild_SectionOrder(t *testing.T) {
	p := Build(sampleFiles(), ops.Registry(), "sum the Amount column")

	filesAt := strings.Index(p, "sales.xlsx")
	funcsAt := strings.Index(p, "- SumColumn:")
	instrAt := strings.Index(p, "User instruction: sum the Amount column")
	rulesAt := strings.Index(p, "package main")

	require.NotEqual(t, -1, filesAt)
	require.NotEqual(t, -1, funcsAt)
	require.NotEqual(t, -1, instrAt)
	require.NotEqual(t, -1, rulesAt)
	assert.Less(t, filesAt, funcsAt)
	assert.Less(t, funcsAt, instrAt)
	assert.Less(t, instrAt, rulesAt)
}

func TestBuild_InstructionVerbatim(t *testing.T) {
	instruction := `remove rows where Status = "inactive" & save`
	p := Build(sampleFiles(), nil, instruction)
	assert.Contains(t, p, "User instruction: "+instruction)
}

func TestBuild_FileSummary(t *testing.T) {
	p := Build(sampleFiles(), nil, "x")
	assert.Contains(t, p, `- sales.xlsx: sheet "Q1" (120 rows, columns: Region, Amount)`)
	assert.Contains(t, p, `- people.csv: sheet "CSV" (3 rows, columns: Name, Age)`)
}

func TestBuild_UnreadableFilesOmitted(t *testing.T) {
	files := append(sampleFiles(), catalog.FileDescriptor{
		Filename: "broken.xlsx",
		Err:      errors.New("zip: not a valid zip file"),
	})

	p := Build(files, nil, "x")
	assert.NotContains(t, p, "broken.xlsx")
}

func TestBuild_ErroredSheetsOmitted(t *testing.T) {
	files := []catalog.FileDescriptor{
		{
			Filename: "mixed.xlsx",
			Sheets: []catalog.SheetDescriptor{
				{Name: "Good", Columns: []string{"A"}, Rows: 1},
				{Name: "Bad", Err: errors.New("read failed")},
			},
		},
	}

	p := Build(files, nil, "x")
	assert.Contains(t, p, `sheet "Good"`)
	assert.NotContains(t, p, `sheet "Bad"`)
}

func TestBuild_NoUsableFiles(t *testing.T) {
	p := Build(nil, nil, "x")
	assert.Contains(t, p, "(none)")
}

func TestBuild_EveryRegisteredFunctionListed(t *testing.T) {
	p := Build(nil, ops.Registry(), "x")
	for _, d := range ops.Registry() {
		assert.Contains(t, p, "- "+d.Name+": "+d.Description)
	}
}

func TestBuild_ExampleUsesLiteralTimestampPlaceholder(t *testing.T) {
	// The %%s in the template must survive formatting as a literal %s inside
	// the example script.
	p := Build(nil, nil, "x")
	assert.Contains(t, p, `example_deduplicated_%s.xlsx`)
	assert.NotContains(t, p, "%!")
}
