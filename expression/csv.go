// CSV ingestion for counts tables and feature lengths.
package expression

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ReadCSV parses a counts table: header row "sample,<gene>,<gene>,…",
// one row per sample with the sample ID in the first column.
// Returns ErrBadCSV (wrapped with position context) on malformed input.
func ReadCSV(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCSV, err)
	}
	if len(records) < 2 || len(records[0]) < 2 {
		return nil, fmt.Errorf("%w: need a header row and at least one sample", ErrBadCSV)
	}

	genes := records[0][1:]
	var samples []string
	data := make([]float64, 0, (len(records)-1)*len(genes))
	for rowNum, row := range records[1:] {
		if len(row) != len(genes)+1 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d",
				ErrBadCSV, rowNum+2, len(row), len(genes)+1)
		}
		samples = append(samples, row[0])
		for _, field := range row[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrBadCSV, rowNum+2, err)
			}
			data = append(data, v)
		}
	}

	return NewTable(samples, genes, data)
}

// ReadFeatureLengths parses a two-column CSV "gene,length" (header
// optional: a first row whose second field is not numeric is skipped).
func ReadFeatureLengths(r io.Reader) (map[string]float64, error) {
	return twoColumnCSV(r, "feature lengths")
}

// ReadWeights parses a reaction- or gene-weight CSV "id,weight" with an
// optional header.
func ReadWeights(r io.Reader) (map[string]float64, error) {
	return twoColumnCSV(r, "weights")
}

func twoColumnCSV(r io.Reader, what string) (map[string]float64, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCSV, err)
	}
	out := make(map[string]float64, len(records))
	for rowNum, row := range records {
		if len(row) < 2 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want 2", ErrBadCSV, rowNum+1, len(row))
		}
		v, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			if rowNum == 0 {
				continue // header
			}
			return nil, fmt.Errorf("%w: row %d: %v", ErrBadCSV, rowNum+1, err)
		}
		out[row[0]] = v
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no %s found", ErrBadCSV, what)
	}

	return out, nil
}
