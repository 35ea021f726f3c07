package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/stringx"
)

func newJoinCmd(a *app) *cobra.Command {
	var (
		delimiter    string
		endDelimiter string
	)

	joinCmd := &cobra.Command{
		Use:   "join [item...|-]",
		Short: "Join items with a delimiter",
		Long: `Joins the arguments, or the lines of stdin. The end delimiter, when set,
separates the last two items.`,
		Example: `  textkit join red green blue
  textkit join --end-delimiter " and " red green blue
  ls | textkit join -d ";"`,
		RunE: a.action("join", func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.JoinOptions()
			if cmd.Flags().Changed("delimiter") {
				opts = append(opts, stringx.WithDelimiter(delimiter))
			}
			if cmd.Flags().Changed("end-delimiter") {
				opts = append(opts, stringx.WithEndDelimiter(endDelimiter))
			}

			var readErr error
			joined := stringx.Join(readItems(cmd, args, &readErr), opts...)
			if readErr != nil {
				return readErr
			}
			return writeLine(cmd, joined)
		}),
	}
	joinCmd.Flags().StringVarP(&delimiter, "delimiter", "d", stringx.DefaultDelimiter, "delimiter between items")
	joinCmd.Flags().StringVarP(&endDelimiter, "end-delimiter", "e", "", "delimiter between the last two items")

	return joinCmd
}
