// Package prompt renders the generation request sent to the remote model.
// The template is a process-wide constant; the four sections (file summary,
// function list, instruction, output rules) always appear in the same order.
package prompt

import (
	"fmt"
	"strings"

	"sheetflow/catalog"
	"sheetflow/ops"
)

const promptTemplate = `You are an expert at writing spreadsheet-processing scripts in Go.

Available spreadsheet files:
%s

Available processing functions (package ops):
%s

User instruction: %s

Generate a Go script that fulfils the instruction. Requirements:
1. Start with: package main
2. Import the function library as: ops "sheetflow/ops"
3. Input files live under: uploads/<filename>
4. Save results under: results/<name>.xlsx
5. Name result files: <original stem>_<operation>_<timestamp>.xlsx (use time.Now().Format("20060102150405"))
6. Every ops function returns (ok bool, msg string); check ok and print msg either way
7. Print progress and the final result with fmt
8. Respond with ONLY the Go code, no explanation text
9. The code must be complete and runnable

Example of the expected format:
` + "```go" + `
package main

import (
	"fmt"
	"path/filepath"
	"time"

	ops "sheetflow/ops"
)

func main() {
	input := filepath.Join("uploads", "example.xlsx")
	timestamp := time.Now().Format("20060102150405")
	output := filepath.Join("results", fmt.Sprintf("example_deduplicated_%%s.xlsx", timestamp))

	fmt.Println("processing", input)
	ok, msg := ops.Deduplicate(input, "Sheet1", []string{"Name"}, output)
	if ok {
		fmt.Println("done:", msg)
	} else {
		fmt.Println("failed:", msg)
	}
}
` + "```" + `

Generate the code:`

// Build renders the prompt for one instruction against the current catalog
// and function registry.
func Build(files []catalog.FileDescriptor, functions []ops.Descriptor, instruction string) string {
	return fmt.Sprintf(promptTemplate, summarizeFiles(files), summarizeFunctions(functions), instruction)
}

// summarizeFiles renders one line per readable file: name, sheets, columns
// and row counts. Files carrying read errors are omitted — the model must not
// be offered inputs it cannot use.
func summarizeFiles(files []catalog.FileDescriptor) string {
	var lines []string
	for _, f := range files {
		if !f.Usable() {
			continue
		}
		var sheets []string
		for _, s := range f.Sheets {
			if s.Err != nil {
				continue
			}
			sheets = append(sheets, fmt.Sprintf("sheet %q (%d rows, columns: %s)",
				s.Name, s.Rows, strings.Join(s.Columns, ", ")))
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", f.Filename, strings.Join(sheets, "; ")))
	}
	if len(lines) == 0 {
		return "(none)"
	}
	return strings.Join(lines, "\n")
}

func summarizeFunctions(functions []ops.Descriptor) string {
	var lines []string
	for _, fn := range functions {
		lines = append(lines, fmt.Sprintf("- %s: %s", fn.Name, fn.Description))
	}
	return strings.Join(lines, "\n")
}
