package cli

import (
	"github.com/spf13/cobra"

	"github.com/Braden-Griebel/hippotools/modelio"
)

var (
	convertFrom string
	convertTo   string
)

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "Input format override (json, yaml, sbml, gob)")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "Output format override (json, yaml, sbml, gob)")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert INPUT OUTPUT",
	Short: "Convert a model between serialization formats",
	Long: `convert reads a model in one format and writes it in another.
Formats are inferred from file extensions unless overridden with
--from and --to.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadModel(args[0], convertFrom)
		if err != nil {
			return err
		}
		if err := modelio.WriteModel(args[1], m, convertTo); err != nil {
			return err
		}
		log.Info().Str("input", args[0]).Str("output", args[1]).Msg("model converted")

		return nil
	},
}
