package cli

import (
	"encoding/csv"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Braden-Griebel/hippotools/metabolite"
)

var (
	balanceModelType string
	balanceReaction  string
	balanceOutput    string
)

func init() {
	balanceCmd.Flags().StringVar(&balanceModelType, "model-type", "", "Model format override (json, yaml, sbml, gob)")
	balanceCmd.Flags().StringVarP(&balanceReaction, "reaction", "r", "", "Check a single reaction instead of the whole model")
	balanceCmd.Flags().StringVarP(&balanceOutput, "output", "o", "", "Write the report to this CSV file instead of stdout")
	rootCmd.AddCommand(balanceCmd)
}

var balanceCmd = &cobra.Command{
	Use:   "balance MODEL",
	Short: "Check mass and charge balance of model reactions",
	Long: `balance parses metabolite chemical formulas and reports, per reaction,
any elemental or charge residual. Boundary reactions (a single metabolite)
are skipped when checking the whole model.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadModel(args[0], balanceModelType)
		if err != nil {
			return err
		}

		var report []*metabolite.Imbalance
		if balanceReaction != "" {
			im, err := metabolite.CheckReaction(m, balanceReaction)
			if err != nil {
				return err
			}
			if !im.Balanced() {
				report = append(report, im)
			}
		} else {
			report, err = metabolite.CheckModel(m)
			if err != nil {
				return err
			}
		}
		log.Info().Int("unbalanced", len(report)).Msg("balance check complete")

		w, closeOut, err := outputWriter(cmd, balanceOutput)
		if err != nil {
			return err
		}
		if err := writeImbalanceCSV(w, report); err != nil {
			closeOut()
			return err
		}

		return closeOut()
	},
}

// writeImbalanceCSV writes "reaction,element,residual" rows with charge
// reported as the pseudo-element "charge".
func writeImbalanceCSV(w io.Writer, report []*metabolite.Imbalance) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"reaction", "element", "residual"}); err != nil {
		return err
	}
	for _, im := range report {
		elements := make([]string, 0, len(im.Elements))
		for el := range im.Elements {
			elements = append(elements, el)
		}
		sort.Strings(elements)
		for _, el := range elements {
			if err := cw.Write([]string{im.Reaction, el, formatFloat(im.Elements[el])}); err != nil {
				return err
			}
		}
		if im.Charge != 0 {
			if err := cw.Write([]string{im.Reaction, "charge", formatFloat(im.Charge)}); err != nil {
				return err
			}
		}
	}
	cw.Flush()

	return cw.Error()
}
