package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Braden-Griebel/hippotools/expression"
	"github.com/Braden-Griebel/hippotools/model"
	"github.com/Braden-Griebel/hippotools/modelio"
)

// loadModel reads a model file, honoring an explicit format override.
func loadModel(path, fileType string) (*model.Model, error) {
	m, err := modelio.ReadModel(path, fileType)
	if err != nil {
		return nil, fmt.Errorf("reading model %s: %w", path, err)
	}
	log.Debug().Str("model", m.ID()).
		Int("reactions", len(m.Reactions())).
		Int("metabolites", len(m.Metabolites())).
		Msg("model loaded")

	return m, nil
}

// loadWeights reads a reaction (or gene) weight CSV.
func loadWeights(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	w, err := expression.ReadWeights(f)
	if err != nil {
		return nil, fmt.Errorf("reading weights %s: %w", path, err)
	}

	return w, nil
}

// outputWriter creates path for writing, or falls back to the command's
// stdout when path is empty. The caller must call the returned closer.
func outputWriter(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}

// writeFluxCSV writes "reaction,flux" rows sorted by reaction ID.
func writeFluxCSV(w io.Writer, fluxes map[string]float64) error {
	ids := make([]string, 0, len(fluxes))
	for id := range fluxes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"reaction", "flux"}); err != nil {
		return err
	}
	for _, id := range ids {
		if err := cw.Write([]string{id, formatFloat(fluxes[id])}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// writeWeightCSV writes "id,weight" rows sorted by ID.
func writeWeightCSV(w io.Writer, weights map[string]float64) error {
	ids := make([]string, 0, len(weights))
	for id := range weights {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "weight"}); err != nil {
		return err
	}
	for _, id := range ids {
		if err := cw.Write([]string{id, formatFloat(weights[id])}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// writeTableCSV writes an expression table as "sample,gene1,gene2,...".
func writeTableCSV(w io.Writer, t *expression.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"sample"}, t.Genes()...)); err != nil {
		return err
	}
	for _, sample := range t.Samples() {
		row := make([]string, 0, len(t.Genes())+1)
		row = append(row, sample)
		for _, gene := range t.Genes() {
			v, err := t.Value(sample, gene)
			if err != nil {
				return err
			}
			row = append(row, formatFloat(v))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
