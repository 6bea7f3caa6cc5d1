package cli

import (
	"encoding/csv"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Braden-Griebel/hippotools/fba"
	"github.com/Braden-Griebel/hippotools/internal/config"
)

var (
	fvaModelType string
	fvaFraction  float64
	fvaWorkers   int
	fvaOutput    string
)

func init() {
	fvaCmd.Flags().StringVar(&fvaModelType, "model-type", "", "Model format override (json, yaml, sbml, gob)")
	fvaCmd.Flags().Float64Var(&fvaFraction, "fraction", 0, "Fraction of the optimum to hold (default from config)")
	fvaCmd.Flags().IntVar(&fvaWorkers, "workers", 0, "Parallel solver workers (default from config)")
	fvaCmd.Flags().StringVarP(&fvaOutput, "output", "o", "", "Write ranges to this CSV file instead of stdout")
	rootCmd.AddCommand(fvaCmd)
}

var fvaCmd = &cobra.Command{
	Use:   "fva MODEL",
	Short: "Run flux variability analysis on a model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadModel(args[0], fvaModelType)
		if err != nil {
			return err
		}

		fraction := config.Fraction()
		if cmd.Flags().Changed("fraction") {
			fraction = fvaFraction
		}
		workers := config.Workers()
		if cmd.Flags().Changed("workers") {
			workers = fvaWorkers
		}

		opts := []fba.Option{fba.WithFraction(fraction)}
		if workers > 0 {
			opts = append(opts, fba.WithWorkers(workers))
		}
		ranges, err := fba.FluxVariability(cmd.Context(), m, opts...)
		if err != nil {
			return err
		}
		log.Info().Int("reactions", len(ranges)).Float64("fraction", fraction).Msg("variability computed")

		w, closeOut, err := outputWriter(cmd, fvaOutput)
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(ranges))
		for id := range ranges {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"reaction", "min", "max"}); err != nil {
			closeOut()
			return err
		}
		for _, id := range ids {
			r := ranges[id]
			if err := cw.Write([]string{id, formatFloat(r.Min), formatFloat(r.Max)}); err != nil {
				closeOut()
				return err
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			closeOut()
			return err
		}

		return closeOut()
	},
}
