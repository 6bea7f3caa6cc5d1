package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Braden-Griebel/hippotools/expression"
)

var (
	normMethod  string
	normLengths string
	normOutput  string
)

func init() {
	normalizeCmd.Flags().StringVar(&normMethod, "method", "tpm", "Normalization: rpkm, fpkm, tpm, or cpm")
	normalizeCmd.Flags().StringVar(&normLengths, "lengths", "", "Feature length CSV (gene,length); required except for cpm")
	normalizeCmd.Flags().StringVarP(&normOutput, "output", "o", "", "Write the normalized table to this CSV file instead of stdout")
	rootCmd.AddCommand(normalizeCmd)
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize COUNTS",
	Short: "Normalize an RNA-seq count table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		counts, err := expression.ReadCSV(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("reading counts %s: %w", args[0], err)
		}

		var lengths map[string]float64
		if normLengths != "" {
			lf, err := os.Open(normLengths)
			if err != nil {
				return err
			}
			lengths, err = expression.ReadFeatureLengths(lf)
			lf.Close()
			if err != nil {
				return fmt.Errorf("reading lengths %s: %w", normLengths, err)
			}
		}

		var (
			out     *expression.Table
			dropped []string
		)
		switch normMethod {
		case "rpkm":
			out, dropped, err = counts.CountToRPKM(lengths)
		case "fpkm":
			out, dropped, err = counts.CountToFPKM(lengths)
		case "tpm":
			out, dropped, err = counts.CountToTPM(lengths)
		case "cpm":
			out = counts.CountToCPM()
		default:
			return fmt.Errorf("unknown normalization %q (want rpkm, fpkm, tpm, or cpm)", normMethod)
		}
		if err != nil {
			return err
		}
		if len(dropped) > 0 {
			log.Warn().Strs("genes", dropped).Msg("dropped genes with no feature length")
		}

		w, closeOut, err := outputWriter(cmd, normOutput)
		if err != nil {
			return err
		}
		if err := writeTableCSV(w, out); err != nil {
			closeOut()
			return err
		}

		return closeOut()
	},
}
