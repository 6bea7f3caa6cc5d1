package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Braden-Griebel/hippotools/expression"
)

var (
	weightsModelType  string
	weightsExpression string
	weightsLowProp    float64
	weightsHighProp   float64
	weightsProp       float64
	weightsAgg        string
	weightsGenesOnly  bool
	weightsOutput     string
)

func init() {
	weightsCmd.Flags().StringVar(&weightsModelType, "model-type", "", "Model format override (json, yaml, sbml, gob)")
	weightsCmd.Flags().StringVarP(&weightsExpression, "expression", "e", "", "Normalized expression CSV (samples × genes)")
	weightsCmd.Flags().Float64Var(&weightsProp, "proportion", 0.25, "Single proportion p: below p-th percentile low, above (1-p)-th high")
	weightsCmd.Flags().Float64Var(&weightsLowProp, "low", 0, "Explicit low percentile proportion (overrides --proportion)")
	weightsCmd.Flags().Float64Var(&weightsHighProp, "high", 0, "Explicit high percentile proportion (overrides --proportion)")
	weightsCmd.Flags().StringVar(&weightsAgg, "agg", "median", "Cross-sample aggregation: median or mean")
	weightsCmd.Flags().BoolVar(&weightsGenesOnly, "genes", false, "Emit gene weights without mapping through GPR rules")
	weightsCmd.Flags().StringVarP(&weightsOutput, "output", "o", "", "Write weights to this CSV file instead of stdout")
	_ = weightsCmd.MarkFlagRequired("expression")
	rootCmd.AddCommand(weightsCmd)
}

var weightsCmd = &cobra.Command{
	Use:   "weights MODEL",
	Short: "Derive qualitative reaction weights from expression data",
	Long: `weights trinarizes expression into -1 (low), 0, +1 (high) by percentile
and folds the gene calls through each reaction's GPR rule (AND takes the
minimum, OR the maximum). The result feeds the imat, enumerate, sample
and essential commands.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadModel(args[0], weightsModelType)
		if err != nil {
			return err
		}

		f, err := os.Open(weightsExpression)
		if err != nil {
			return err
		}
		table, err := expression.ReadCSV(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("reading expression %s: %w", weightsExpression, err)
		}

		var agg expression.AggFunc
		switch weightsAgg {
		case "median":
			agg = expression.Median
		case "mean":
			agg = expression.Mean
		default:
			return fmt.Errorf("unknown aggregation %q (want median or mean)", weightsAgg)
		}

		prop := expression.SingleProportion(weightsProp)
		if cmd.Flags().Changed("low") || cmd.Flags().Changed("high") {
			prop = expression.Proportion{Low: weightsLowProp, High: weightsHighProp}
		}

		geneWeights, err := table.ToQualitative(prop, agg)
		if err != nil {
			return err
		}

		out := geneWeights
		if !weightsGenesOnly {
			out = expression.GeneToReactionWeights(m, geneWeights)
		}
		log.Info().Int("entries", len(out)).Msg("weights derived")

		w, closeOut, err := outputWriter(cmd, weightsOutput)
		if err != nil {
			return err
		}
		if err := writeWeightCSV(w, out); err != nil {
			closeOut()
			return err
		}

		return closeOut()
	},
}
