package cli

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Braden-Griebel/hippotools/diversity"
)

var (
	essModelType   string
	essWeights     string
	essEnumMethod  string
	essModelMethod string
	essAgg         string
	essIgnoreNA    bool
	essCutoff      float64
	essMaxIter     int
	essEpsilon     float64
	essThreshold   float64
	essOutput      string
)

func init() {
	essentialCmd.Flags().StringVar(&essModelType, "model-type", "", "Model format override (json, yaml, sbml, gob)")
	essentialCmd.Flags().StringVarP(&essWeights, "weights", "w", "", "Reaction weight CSV (+1 high, -1 low)")
	essentialCmd.Flags().StringVar(&essEnumMethod, "enum-method", "icut", "Enumeration method: icut, maxdist, or diversity")
	essentialCmd.Flags().StringVar(&essModelMethod, "model-method", "enforce both", "Bound enforcement, e.g. 'enforce active', 'enforce inactive off'")
	essentialCmd.Flags().StringVar(&essAgg, "agg", "majority", "Consensus aggregation: all, any, or majority")
	essentialCmd.Flags().BoolVar(&essIgnoreNA, "ignore-na", false, "Drop undetermined calls before aggregating")
	essentialCmd.Flags().Float64Var(&essCutoff, "cutoff", diversity.DefaultEssentialCutoff, "Essentiality cutoff as a fraction of wild-type growth")
	essentialCmd.Flags().IntVar(&essMaxIter, "max-iterations", diversity.DefaultMaxIterations, "Maximum solutions to enumerate")
	essentialCmd.Flags().Float64Var(&essEpsilon, "epsilon", 0, "Activation threshold (default from config)")
	essentialCmd.Flags().Float64Var(&essThreshold, "threshold", 0, "Activity threshold (default from config)")
	essentialCmd.Flags().StringVarP(&essOutput, "output", "o", "", "Write consensus calls to this CSV file instead of stdout")
	_ = essentialCmd.MarkFlagRequired("weights")
	rootCmd.AddCommand(essentialCmd)
}

func parseAgg(name string) (diversity.AggFunc, error) {
	switch name {
	case "all":
		return diversity.AggAll, nil
	case "any":
		return diversity.AggAny, nil
	case "majority":
		return diversity.AggMajority, nil
	default:
		return nil, fmt.Errorf("unknown aggregation %q (want all, any, or majority)", name)
	}
}

var essentialCmd = &cobra.Command{
	Use:   "essential MODEL",
	Short: "Compute consensus gene essentiality across enumerated solutions",
	Long: `essential enumerates alternative iMAT optima, derives a context-specific
model from each, probes every gene by knockout, and folds the
per-solution calls into one consensus call per gene.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadModel(args[0], essModelType)
		if err != nil {
			return err
		}
		weights, err := loadWeights(essWeights)
		if err != nil {
			return err
		}
		enumMethod, err := diversity.ParseEnumMethod(essEnumMethod)
		if err != nil {
			return err
		}
		enforce, err := diversity.ParseModelMethod(essModelMethod)
		if err != nil {
			return err
		}
		agg, err := parseAgg(essAgg)
		if err != nil {
			return err
		}

		frame, err := diversity.ConsensusEssentiality(cmd.Context(), m, weights,
			enumMethod, enforce, essCutoff,
			imatOptions(cmd, essEpsilon, essThreshold),
			diversity.WithMaxIterations(essMaxIter))
		if err != nil {
			return err
		}
		log.Info().Int("genes", len(frame.Genes())).
			Int("iterations", frame.Iterations()).
			Msg("essentiality computed")

		w, closeOut, err := outputWriter(cmd, essOutput)
		if err != nil {
			return err
		}
		if err := writeEssentialCSV(w, frame, agg, essIgnoreNA); err != nil {
			closeOut()
			return err
		}

		return closeOut()
	},
}

// writeEssentialCSV writes "gene,essential" rows plus the per-iteration
// calls for transparency.
func writeEssentialCSV(w io.Writer, frame *diversity.Consensus, agg diversity.AggFunc, ignoreNA bool) error {
	consensus := frame.Aggregate(agg, ignoreNA)

	header := []string{"gene", "essential"}
	for i := 1; i <= frame.Iterations(); i++ {
		header = append(header, fmt.Sprintf("iter_%d", i))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, gene := range frame.Genes() {
		row := []string{gene, consensus[gene].String()}
		for _, call := range frame.Row(gene) {
			row = append(row, call.String())
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
