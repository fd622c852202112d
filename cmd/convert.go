package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/spf13/cobra"

	"github.com/taxatools/taxadist/internal/matrix"
	"github.com/taxatools/taxadist/internal/utils"
)

var (
	convFragment    bool
	convElementName string
	convFeature     string
	convRaw         bool
	convIndent      int
	convOutputPath  string
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a taxa/feature CSV into distance XML",
	Long: `Convert reads CSV from the given file (or stdin when omitted) and writes
an XML document whose <feature> elements hold the upper-diagonal pairwise
distances of each feature column. Values are log10-scaled unless --raw is
given; values of zero or below scale to 0.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := activeConfig()

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
		if debug {
			fmt.Fprintf(os.Stderr, "⚙ %s: %d features, %d taxa\n", src, m.NumFeatures(), m.NumTaxa())
		}

		elementName := conf.ElementName
		if cmd.Flags().Changed("element-name") {
			elementName = convElementName
		}
		if elementName == "" {
			elementName = matrix.DefaultElementName
		}
		logged := conf.Logged
		if convRaw {
			logged = false
		}

		var root *etree.Element
		if convFeature != "" {
			root, err = m.UpperDiagonalXML(convFeature, elementName, logged)
			if err != nil {
				return err
			}
		} else {
			root = m.AllFeaturesXML(elementName, logged)
		}

		doc := etree.NewDocument()
		if !convFragment {
			doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
		}
		doc.SetRoot(root)
		indent := conf.Indent
		if cmd.Flags().Changed("indent") {
			indent = convIndent
		}
		if indent > 0 {
			doc.Indent(indent)
		}

		if convOutputPath != "" {
			out := convOutputPath
			if conf.OutputDir != "" && !filepath.IsAbs(out) {
				if err := utils.EnsureDir(conf.OutputDir); err != nil {
					return fmt.Errorf("ensure output dir: %w", err)
				}
				out = filepath.Join(conf.OutputDir, out)
			}
			s, err := doc.WriteToString()
			if err != nil {
				return fmt.Errorf("serialize xml: %w", err)
			}
			if err := utils.SafeWriteFile(out, []byte(s)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote XML to %s\n", out)
			return nil
		}
		if _, err := doc.WriteTo(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("write xml: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	convertCmd.Flags().BoolVar(&convFragment, "fragment", false, "omit the XML declaration (for pasting into a larger document)")
	convertCmd.Flags().StringVar(&convElementName, "element-name", "", "root element tag (default from config)")
	convertCmd.Flags().StringVar(&convFeature, "feature", "", "emit only this feature's upper diagonal")
	convertCmd.Flags().BoolVar(&convRaw, "raw", false, "use raw values instead of log10-scaled values")
	convertCmd.Flags().IntVar(&convIndent, "indent", 0, "spaces per XML nesting level; 0 is compact (default from config)")
	convertCmd.Flags().StringVarP(&convOutputPath, "output", "o", "", "write the XML to this file instead of stdout")
	rootCmd.AddCommand(convertCmd)
}
