package cli

import (
	"encoding/csv"
	"errors"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Braden-Griebel/hippotools/diversity"
	"github.com/Braden-Griebel/hippotools/imat"
)

var (
	enumModelType string
	enumWeights   string
	enumMethod    string
	enumMaxIter   int
	enumEpsilon   float64
	enumThreshold float64
	enumOutput    string
)

func init() {
	enumerateCmd.Flags().StringVar(&enumModelType, "model-type", "", "Model format override (json, yaml, sbml, gob)")
	enumerateCmd.Flags().StringVarP(&enumWeights, "weights", "w", "", "Reaction weight CSV (+1 high, -1 low)")
	enumerateCmd.Flags().StringVar(&enumMethod, "method", "icut", "Enumeration method: icut, maxdist, or diversity")
	enumerateCmd.Flags().IntVar(&enumMaxIter, "max-iterations", diversity.DefaultMaxIterations, "Maximum solutions to enumerate")
	enumerateCmd.Flags().Float64Var(&enumEpsilon, "epsilon", 0, "Activation threshold (default from config)")
	enumerateCmd.Flags().Float64Var(&enumThreshold, "threshold", 0, "Activity threshold (default from config)")
	enumerateCmd.Flags().StringVarP(&enumOutput, "output", "o", "", "Write indicator calls to this CSV file instead of stdout")
	_ = enumerateCmd.MarkFlagRequired("weights")
	rootCmd.AddCommand(enumerateCmd)
}

var enumerateCmd = &cobra.Command{
	Use:   "enumerate MODEL",
	Short: "Enumerate alternative iMAT-optimal solutions",
	Long: `enumerate walks through alternative optima of the iMAT MILP. Each row
of the output is one solution: its iMAT objective followed by the
active/inactive call (1 or 0) for every weighted reaction.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadModel(args[0], enumModelType)
		if err != nil {
			return err
		}
		weights, err := loadWeights(enumWeights)
		if err != nil {
			return err
		}
		method, err := diversity.ParseEnumMethod(enumMethod)
		if err != nil {
			return err
		}

		enum, err := diversity.NewEnumerator(cmd.Context(), m, weights, method,
			imatOptions(cmd, enumEpsilon, enumThreshold),
			diversity.WithMaxIterations(enumMaxIter))
		if err != nil {
			return err
		}

		var results []*imat.Result
		for {
			res, err := enum.Next(cmd.Context())
			if errors.Is(err, diversity.ErrExhausted) {
				break
			}
			if err != nil {
				return err
			}
			results = append(results, res)
			log.Debug().Int("solution", len(results)).Float64("objective", res.Objective).Msg("enumerated")
		}
		log.Info().Int("solutions", len(results)).Msg("enumeration finished")

		w, closeOut, err := outputWriter(cmd, enumOutput)
		if err != nil {
			return err
		}
		if err := writeEnumCSV(w, results); err != nil {
			closeOut()
			return err
		}

		return closeOut()
	},
}

// writeEnumCSV writes one row per solution: objective plus 0/1 calls per
// weighted reaction, columns sorted by reaction ID.
func writeEnumCSV(w io.Writer, results []*imat.Result) error {
	if len(results) == 0 {
		return nil
	}

	var rxns []string
	for id := range results[0].Active {
		rxns = append(rxns, id)
	}
	for id := range results[0].Inactive {
		rxns = append(rxns, id)
	}
	sort.Strings(rxns)

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"objective"}, rxns...)); err != nil {
		return err
	}
	for _, res := range results {
		row := []string{formatFloat(res.Objective)}
		for _, id := range rxns {
			call, ok := res.Active[id]
			if !ok {
				call = res.Inactive[id]
			}
			if call {
				row = append(row, "1")
			} else {
				row = append(row, "0")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
