package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/stringx"
)

func newTruncateCmd(a *app) *cobra.Command {
	var (
		maxLength int
		symbol    string
		unicode   bool
	)

	truncateCmd := &cobra.Command{
		Use:   "truncate --max N [text|-]",
		Short: "Shorten text to at most N characters",
		Long: `Shortens text to at most N characters, counted as Unicode code points.
Text that is too long ends with the truncate symbol, which counts towards N.`,
		Example: `  textkit truncate --max 6 --symbol -- 1234567890
  textkit truncate --max 10 --unicode "a rather long sentence"`,
		RunE: a.action("truncate", func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			truncateSymbol := a.cfg.Truncate.Symbol
			if unicode {
				truncateSymbol = stringx.EllipsisUnicode
			}
			if cmd.Flags().Changed("symbol") {
				truncateSymbol = symbol
			}

			result, err := stringx.Truncate(text, maxLength, truncateSymbol)
			if err != nil {
				return err
			}
			return writeLine(cmd, result)
		}),
	}
	truncateCmd.Flags().IntVarP(&maxLength, "max", "n", 0, "maximum length in characters")
	truncateCmd.Flags().StringVarP(&symbol, "symbol", "s", "", "truncate symbol (default from config, \"...\")")
	truncateCmd.Flags().BoolVar(&unicode, "unicode", false, "use \""+stringx.EllipsisUnicode+"\" as truncate symbol")

	return truncateCmd
}

func newSuffixCmd(a *app) *cobra.Command {
	var symbol string

	suffixCmd := &cobra.Command{
		Use:   "suffix --symbol S [text|-]",
		Short: "Append a suffix unless the text already ends with it",
		Example: `  textkit suffix --symbol / https://example.org
  textkit suffix -s .txt notes`,
		RunE: a.action("suffix", func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			result, err := stringx.EnsureSuffix(text, symbol)
			if err != nil {
				return err
			}
			return writeLine(cmd, result)
		}),
	}
	suffixCmd.Flags().StringVarP(&symbol, "symbol", "s", "", "suffix to ensure")

	return suffixCmd
}
