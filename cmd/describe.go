package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taxatools/taxadist/internal/matrix"
)

var describeCmd = &cobra.Command{
	Use:   "describe [file]",
	Short: "Summarize a taxa/feature CSV",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		src := "stdin"
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()
			in = f
			src = args[0]
		}

		m, err := matrix.New(in)
		if err != nil {
			return fmt.Errorf("read %s: %w", src, err)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Features: %d\n", m.NumFeatures())
		fmt.Fprintf(w, "Taxa: %d (%s)\n", m.NumTaxa(), strings.Join(m.Taxa(), ", "))
		for _, name := range m.Features() {
			vals, err := m.FeatureValues(name)
			if err != nil {
				return err
			}
			min, max, sum := vals[0], vals[0], 0.0
			for _, v := range vals {
				if v < min {
					min = v
				}
				if v > max {
					max = v
				}
				sum += v
			}
			mean := sum / float64(len(vals))
			fmt.Fprintf(w, "- %s: min %.4g, max %.4g, mean %.4g\n", name, min, max, mean)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
