// Package expression: Table type and sentinel errors.
package expression

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for expression handling.
var (
	// ErrDimensionMismatch indicates data of the wrong length for the
	// declared sample and gene labels.
	ErrDimensionMismatch = errors.New("expression: data does not match samples × genes")

	// ErrDuplicateLabel indicates a repeated sample or gene label.
	ErrDuplicateLabel = errors.New("expression: duplicate label")

	// ErrNoGenesInCommon indicates counts and feature lengths share no genes.
	ErrNoGenesInCommon = errors.New("expression: no genes in common with feature lengths")

	// ErrBadProportion indicates trinarization thresholds outside (0,1)
	// or with low ≥ high.
	ErrBadProportion = errors.New("expression: invalid percentile proportion")

	// ErrBadCSV indicates a malformed CSV input.
	ErrBadCSV = errors.New("expression: malformed CSV")

	// ErrUnknownLabel indicates a lookup for a sample or gene not present
	// in the table.
	ErrUnknownLabel = errors.New("expression: unknown label")
)

// Table is an immutable samples × genes expression matrix with labels.
// Rows are samples, columns are genes.
type Table struct {
	samples   []string
	genes     []string
	sampleIdx map[string]int
	geneIdx   map[string]int
	data      *mat.Dense // len(samples) × len(genes)
}

// NewTable builds a table from row-major data of length
// len(samples)·len(genes).
// Returns ErrDimensionMismatch or ErrDuplicateLabel.
func NewTable(samples, genes []string, data []float64) (*Table, error) {
	if len(data) != len(samples)*len(genes) {
		return nil, fmt.Errorf("%w: got %d values for %d×%d",
			ErrDimensionMismatch, len(data), len(samples), len(genes))
	}
	sampleIdx := make(map[string]int, len(samples))
	for i, s := range samples {
		if _, ok := sampleIdx[s]; ok {
			return nil, fmt.Errorf("%w: sample %q", ErrDuplicateLabel, s)
		}
		sampleIdx[s] = i
	}
	geneIdx := make(map[string]int, len(genes))
	for j, g := range genes {
		if _, ok := geneIdx[g]; ok {
			return nil, fmt.Errorf("%w: gene %q", ErrDuplicateLabel, g)
		}
		geneIdx[g] = j
	}

	return &Table{
		samples:   append([]string(nil), samples...),
		genes:     append([]string(nil), genes...),
		sampleIdx: sampleIdx,
		geneIdx:   geneIdx,
		data:      mat.NewDense(len(samples), len(genes), append([]float64(nil), data...)),
	}, nil
}

// Samples returns the sample labels in row order.
func (t *Table) Samples() []string { return t.samples }

// Genes returns the gene labels in column order.
func (t *Table) Genes() []string { return t.genes }

// Value returns the expression of gene in sample.
// Returns ErrUnknownLabel when either label is absent.
func (t *Table) Value(sample, gene string) (float64, error) {
	i, ok := t.sampleIdx[sample]
	if !ok {
		return math.NaN(), fmt.Errorf("%w: sample %q", ErrUnknownLabel, sample)
	}
	j, ok := t.geneIdx[gene]
	if !ok {
		return math.NaN(), fmt.Errorf("%w: gene %q", ErrUnknownLabel, gene)
	}

	return t.data.At(i, j), nil
}

// subset returns a new table restricted to the given genes (column order
// follows the argument order).
func (t *Table) subset(genes []string) *Table {
	data := make([]float64, 0, len(t.samples)*len(genes))
	for i := range t.samples {
		for _, g := range genes {
			data = append(data, t.data.At(i, t.geneIdx[g]))
		}
	}
	out, _ := NewTable(t.samples, genes, data)

	return out
}

// withData returns a copy of the table's shape carrying new row-major data.
func (t *Table) withData(data []float64) *Table {
	out, _ := NewTable(t.samples, t.genes, data)

	return out
}

// AggFunc collapses one gene's values across samples into a single value.
type AggFunc func(values []float64) float64

// Median is the default sample aggregator. Even-length inputs average the
// two middle values.
func Median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	return quantile(0.5, sorted)
}

// quantile returns the p-th quantile of sorted values, linearly
// interpolating between order statistics. NaN for empty input.
func quantile(p float64, sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := p * float64(n-1)
	i := int(math.Floor(h))
	if i >= n-1 {
		return sorted[n-1]
	}

	return sorted[i] + (h-math.Floor(h))*(sorted[i+1]-sorted[i])
}

// Mean aggregates by arithmetic mean.
func Mean(values []float64) float64 {
	return stat.Mean(values, nil)
}

// Aggregate collapses the table to one value per gene using agg
// (Median when nil). The result maps gene ID → aggregated expression.
// Complexity: O(S·G) plus the aggregator's cost per gene.
func (t *Table) Aggregate(agg AggFunc) map[string]float64 {
	if agg == nil {
		agg = Median
	}
	out := make(map[string]float64, len(t.genes))
	col := make([]float64, len(t.samples))
	for j, g := range t.genes {
		for i := range t.samples {
			col[i] = t.data.At(i, j)
		}
		out[g] = agg(col)
	}

	return out
}
