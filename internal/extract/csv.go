// Package extract reads the raw order and product sources from disk. It is
// the pipeline's data supplier: CSV bytes in, loosely typed records out.
// All interpretation of the values happens downstream in transform.
package extract

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"salesdw/internal/config"
	"salesdw/pkg/records"
)

// SchemaError means a required column is absent from a source header
// entirely. Unlike row rejections this is fatal: no row processing starts.
type SchemaError struct {
	Source string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("source %q: required column %q missing from header", e.Source, e.Column)
}

// ReadCSV reads one CSV source into records keyed by canonical column name.
// The header is required. Supported options:
//
//	comma      (string, first rune; default ',')
//	trim_space (bool; default true)
//	header_map (object; source header -> canonical name)
//
// Every required column must resolve to a header cell or a *SchemaError is
// returned. Cells are cleaned (BOM, NBSP, NFC) before use; empty cells
// become nil so downstream presence checks see them as missing.
func ReadCSV(source, path string, required []string, opt config.Options) ([]records.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s source: %w", source, err)
	}
	defer f.Close()
	return readCSV(source, f, required, opt)
}

func readCSV(source string, r io.Reader, required []string, opt config.Options) ([]records.Record, error) {
	trim := opt.Bool("trim_space", true)
	hm := opt.StringMap("header_map")

	cr := csv.NewReader(r)
	cr.Comma = opt.Rune("comma", ',')
	cr.FieldsPerRecord = -1

	hdr, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", source, err)
	}
	names := make([]string, len(hdr))
	for i, h := range hdr {
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF")
		}
		h = CleanCell(h)
		if mapped, ok := hm[h]; ok {
			h = mapped
		}
		names[i] = h
	}

	have := make(map[string]struct{}, len(names))
	for _, n := range names {
		have[n] = struct{}{}
	}
	for _, col := range required {
		if _, ok := have[col]; !ok {
			return nil, &SchemaError{Source: source, Column: col}
		}
	}

	var out []records.Record
	for {
		cells, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s row: %w", source, err)
		}
		rec := make(records.Record, len(names))
		for i, name := range names {
			if i >= len(cells) {
				rec[name] = nil
				continue
			}
			v := CleanCell(cells[i])
			if trim {
				v = strings.TrimSpace(v)
			}
			if v == "" {
				rec[name] = nil
			} else {
				rec[name] = v
			}
		}
		out = append(out, rec)
	}
	return out, nil
}
