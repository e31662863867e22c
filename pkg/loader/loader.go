// Package loader turns files on disk into frames. Format is picked by
// extension: .csv and .tsv parse with encoding/csv, .xls/.xlsx/.xlsm go
// through excelize. The first record always becomes the column header row,
// matching how dataframe readers treat flat files by default.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/oakwood-commons/tabx/pkg/frame"
)

// LoadError wraps any failure to read or parse an input file. Startup treats
// it as fatal: the message is reported and the process exits non-zero before
// the interactive loop begins.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Options tune parsing of the input file.
type Options struct {
	// Delimiter is the field separator for delimited text files. Zero keeps
	// the extension default (comma for .csv, tab for .tsv).
	Delimiter rune
	// Sheet selects a worksheet by name for spreadsheet files. Empty picks
	// the first sheet.
	Sheet string
}

// Load reads the file at path into a frame. Unknown extensions are parsed as
// delimited text, which mirrors the tolerant behavior of spreadsheet tools.
func Load(path string, opts Options) (frame.Frame, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls", ".xlsx", ".xlsm":
		return loadExcel(path, opts.Sheet)
	case ".tsv":
		if opts.Delimiter == 0 {
			opts.Delimiter = '\t'
		}
		return loadDelimited(path, opts.Delimiter)
	default:
		if opts.Delimiter == 0 {
			opts.Delimiter = ','
		}
		return loadDelimited(path, opts.Delimiter)
	}
}

func loadDelimited(path string, delimiter rune) (frame.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1 // tolerate ragged rows, frame pads them
	records, err := reader.ReadAll()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return fromRecords(path, records)
}

func loadExcel(path, sheet string) (frame.Frame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &LoadError{Path: path, Err: errors.New("workbook has no sheets")}
		}
		sheet = sheets[0]
	}
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return fromRecords(path, records)
}

func fromRecords(path string, records [][]string) (frame.Frame, error) {
	if len(records) == 0 {
		return nil, &LoadError{Path: path, Err: errors.New("file contains no rows")}
	}
	return frame.NewStrings(records[0], records[1:]), nil
}
