package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Braden-Griebel/hippotools/fba"
)

var (
	fbaModelType    string
	fbaParsimonious bool
	fbaOutput       string
	fbaKnockGenes   []string
)

func init() {
	fbaCmd.Flags().StringVar(&fbaModelType, "model-type", "", "Model format override (json, yaml, sbml, gob)")
	fbaCmd.Flags().BoolVar(&fbaParsimonious, "parsimonious", false, "Minimize total flux at the optimum (pFBA)")
	fbaCmd.Flags().StringVarP(&fbaOutput, "output", "o", "", "Write fluxes to this CSV file instead of stdout")
	fbaCmd.Flags().StringSliceVar(&fbaKnockGenes, "knockout", nil, "Gene IDs to knock out before solving")
	rootCmd.AddCommand(fbaCmd)
}

var fbaCmd = &cobra.Command{
	Use:   "fba MODEL",
	Short: "Run flux balance analysis on a model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadModel(args[0], fbaModelType)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		var sol *fba.Solution
		switch {
		case len(fbaKnockGenes) > 0:
			sol, err = fba.KnockoutGenes(ctx, m, fbaKnockGenes)
		case fbaParsimonious:
			sol, err = fba.Parsimonious(ctx, m)
		default:
			sol, err = fba.Optimize(ctx, m)
		}
		if err != nil {
			return err
		}

		log.Info().Float64("objective", sol.Objective).Msg("solved")
		fmt.Fprintf(cmd.OutOrStdout(), "objective,%g\n", sol.Objective)

		w, closeOut, err := outputWriter(cmd, fbaOutput)
		if err != nil {
			return err
		}
		if err := writeFluxCSV(w, sol.Fluxes); err != nil {
			closeOut()
			return err
		}

		return closeOut()
	},
}
