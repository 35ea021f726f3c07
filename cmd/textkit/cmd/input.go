package cmd

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
)

// fromStdin reports whether args ask for standard input
func fromStdin(args []string) bool {
	return len(args) == 0 || (len(args) == 1 && args[0] == "-")
}

// readInput returns the arguments joined by spaces, or all of stdin
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if !fromStdin(args) {
		return []byte(strings.Join(args, " ")), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, readError(err)
	}
	return data, nil
}

// readText is readInput with one trailing line break removed
func readText(cmd *cobra.Command, args []string) (string, error) {
	data, err := readInput(cmd, args)
	if err != nil {
		return "", err
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// readItems yields the arguments, or the lines of stdin. The stdin sequence
// can be ranged over once; a read failure is reported through errp after
// the sequence is exhausted.
func readItems(cmd *cobra.Command, args []string, errp *error) iter.Seq[string] {
	if !fromStdin(args) {
		return func(yield func(string) bool) {
			for _, arg := range args {
				if !yield(arg) {
					return
				}
			}
		}
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	return func(yield func(string) bool) {
		for scanner.Scan() {
			if !yield(strings.TrimSuffix(scanner.Text(), "\r")) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			*errp = readError(err)
		}
	}
}

func readError(err error) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleCLI).
		Operation("read_input").
		Message("failed to read standard input").
		Cause(err).
		Code(mdwerror.CodeInternal).
		Build()
}

// writeLine writes s followed by a line break to the command output
func writeLine(cmd *cobra.Command, s string) error {
	_, err := io.WriteString(cmd.OutOrStdout(), s+"\n")
	return err
}

// writeDecoded writes decoded bytes unchanged. nil is the "no value" result
// of a lenient decode and is logged instead.
func (a *app) writeDecoded(cmd *cobra.Command, data []byte, format string) error {
	if data == nil {
		a.logger.Warn("input is not valid " + format + ", no value written")
		return nil
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
