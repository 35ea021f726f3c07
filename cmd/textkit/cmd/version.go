package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/internal/cli"
	"github.com/msto63/textkit/pkg/core/version"
)

func newVersionCmd() *cobra.Command {
	var short bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show the version",
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version.Platform)
				return
			}

			p := cli.NewPrinter(cmd.OutOrStdout())
			p.Title("textkit v" + version.Platform)
			p.Field("Git Commit", version.Commit)
			p.Field("Build Date", version.Date)
			p.Field("Go Version", runtime.Version())
			p.Field("OS/Arch", runtime.GOOS+"/"+runtime.GOARCH)
		},
	}
	versionCmd.Flags().BoolVar(&short, "short", false, "print only the version number")

	return versionCmd
}
