package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/internal/cli"
	"github.com/msto63/textkit/pkg/core/config"
	"github.com/msto63/textkit/pkg/core/logging"
	"github.com/msto63/textkit/pkg/core/version"
)

// app carries the state shared by all commands of one invocation
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *mdwlog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "textkit",
		Short: "textkit - codec and text utilities",
		Long: `textkit encodes, decodes and transforms text.

Commands:
  base64    - Base64 and Base64URL (RFC 4648)
  hex       - Hex encoding with optional 0x prefix
  truncate  - Shorten text to a maximum length
  suffix    - Append a suffix unless already present
  join      - Join items with delimiters
  subst     - Substitute placeholders

Input is taken from the arguments, or from stdin when none are given or the
only argument is "-".`,
		Version:           version.String(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./textkit.toml or the user config directory)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return mdwerrors.NewErrorBuilder(mdwerrors.ModuleCLI).
			Operation("parse_flags").
			Message(err.Error()).
			Code(mdwerror.CodeInvalidArgument).
			Severity(mdwerror.SeverityLow).
			Detail("command", cmd.CommandPath()).
			Build()
	})

	rootCmd.AddCommand(
		newBase64Cmd(a),
		newHexCmd(a),
		newTruncateCmd(a),
		newSuffixCmd(a),
		newJoinCmd(a),
		newSubstCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command line and returns the process exit status
func Execute() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	if err := rootCmd.Execute(); err != nil {
		cli.NewPrinter(errOut).Error(err)
		return mdwerror.GetCode(err).ExitCode()
	}
	return 0
}

// setup loads the configuration and creates the logger
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	loggerCfg := logging.FromConfig("textkit", a.cfg, a.verbose)
	loggerCfg.Output = cmd.ErrOrStderr()
	a.logger = logging.NewLogger(loggerCfg)

	a.logger.Debug("command started", logging.Pairs("command", cmd.CommandPath(), "args", len(args)))
	return nil
}

// action times fn and logs its outcome under operation
func (a *app) action(operation string, fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		timer := a.logger.StartTimer(operation)
		if err := fn(cmd, args); err != nil {
			timer.StopWithError(err)
			return err
		}
		timer.Stop()
		return nil
	}
}
