// Package catalog scans the uploads directory and describes the spreadsheet
// files available to a session. Descriptors are immutable snapshots rebuilt
// on every listing; a cache keyed on file identity avoids re-reading files
// that have not changed between listings.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// PreviewRows bounds the number of leading data rows kept per sheet.
const PreviewRows = 5

// SupportedExtensions lists the accepted input file suffixes.
var SupportedExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".csv":  true,
}

// SheetDescriptor describes one sheet of an input file. A sheet may fail to
// parse independently of its siblings; Err is set and the data fields left
// empty in that case.
type SheetDescriptor struct {
	Name    string
	Columns []string
	Rows    int
	Preview [][]string
	Err     error
}

// FileDescriptor is a point-in-time description of one input file. When Err
// is set the file could not be read and Sheets is empty.
type FileDescriptor struct {
	Filename string
	Path     string
	Size     int64
	Modified time.Time
	Sheets   []SheetDescriptor
	Err      error
}

// Usable reports whether the descriptor carries sheet details.
func (fd *FileDescriptor) Usable() bool {
	return fd.Err == nil && len(fd.Sheets) > 0
}

// Catalog scans an input directory into file descriptors.
type Catalog struct {
	inputDir string
	cache    *Cache
}

// New returns a catalog over inputDir.
func New(inputDir string) *Catalog {
	return &Catalog{inputDir: inputDir, cache: NewCache()}
}

// Scan describes every supported file in the input directory, in directory
// iteration order. A file that cannot be read yields a descriptor carrying
// the error; the scan continues with the remaining files.
func (c *Catalog) Scan() ([]FileDescriptor, error) {
	entries, err := os.ReadDir(c.inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", c.inputDir, err)
	}

	var files []FileDescriptor
	for _, entry := range entries {
		if entry.IsDir() || !SupportedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}

		path := filepath.Join(c.inputDir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			files = append(files, FileDescriptor{Filename: entry.Name(), Path: path, Err: err})
			continue
		}

		if cached, ok := c.cache.Get(path, info); ok {
			files = append(files, *cached)
			continue
		}

		fd := describeFile(path, info)
		c.cache.Set(path, info, &fd)
		files = append(files, fd)
	}

	return files, nil
}

func describeFile(path string, info os.FileInfo) FileDescriptor {
	fd := FileDescriptor{
		Filename: filepath.Base(path),
		Path:     path,
		Size:     info.Size(),
		Modified: info.ModTime(),
	}

	var err error
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		fd.Sheets, err = describeCSV(path)
	} else {
		fd.Sheets, err = describeWorkbook(path)
	}
	if err != nil {
		fd.Err = err
		fd.Sheets = nil
	}
	return fd
}

// describeWorkbook reads sheet names, columns, row counts and previews from
// an xlsx/xlsm workbook. Sheets are visited in source order and fail
// independently.
func describeWorkbook(path string) ([]SheetDescriptor, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	var sheets []SheetDescriptor
	for _, name := range f.GetSheetList() {
		sd := SheetDescriptor{Name: name}

		rows, err := f.Rows(name)
		if err != nil {
			sd.Err = fmt.Errorf("failed to read sheet %s: %w", name, err)
			sheets = append(sheets, sd)
			continue
		}

		first := true
		for rows.Next() {
			cells, err := rows.Columns()
			if err != nil {
				sd.Err = fmt.Errorf("failed to read sheet %s: %w", name, err)
				break
			}
			if first {
				sd.Columns = cells
				first = false
				continue
			}
			sd.Rows++
			if len(sd.Preview) < PreviewRows {
				sd.Preview = append(sd.Preview, cells)
			}
		}
		_ = rows.Close()

		sheets = append(sheets, sd)
	}

	return sheets, nil
}

// describeCSV treats a delimited-text file as a single implicit sheet.
func describeCSV(path string) ([]SheetDescriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	sd := SheetDescriptor{Name: "CSV"}
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse csv: %w", err)
		}
		if first {
			sd.Columns = record
			first = false
			continue
		}
		sd.Rows++
		if len(sd.Preview) < PreviewRows {
			sd.Preview = append(sd.Preview, record)
		}
	}

	return []SheetDescriptor{sd}, nil
}
