package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/encodingx"
)

func newHexCmd(a *app) *cobra.Command {
	var (
		lower   bool
		lenient bool
	)

	hexCmd := &cobra.Command{
		Use:   "hex",
		Short: "Hex encoding",
	}

	encodeCmd := &cobra.Command{
		Use:   "encode [text|-]",
		Short: "Encode text or stdin as hex",
		Example: `  textkit hex encode "hi"
  textkit hex encode --lower "hi"`,
		RunE: a.action("hex.encode", func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			letterCase := a.cfg.LetterCase()
			if cmd.Flags().Changed("lower") {
				letterCase = encodingx.Upper
				if lower {
					letterCase = encodingx.Lower
				}
			}
			return writeLine(cmd, encodingx.EncodeHex(data, letterCase))
		}),
	}
	encodeCmd.Flags().BoolVar(&lower, "lower", false, "use lower-case digits")

	decodeCmd := &cobra.Command{
		Use:   "decode [text|-]",
		Short: "Decode hex text, with or without 0x prefix",
		Example: `  textkit hex decode 6869
  textkit hex decode 0x6869`,
		RunE: a.action("hex.decode", func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			decoded, err := encodingx.DecodeHex(strings.TrimSpace(string(data)), decodePolicy(lenient))
			if err != nil {
				return err
			}
			return a.writeDecoded(cmd, decoded, "hex")
		}),
	}
	decodeCmd.Flags().BoolVar(&lenient, "lenient", false, "write nothing instead of failing on malformed input")

	hexCmd.AddCommand(encodeCmd, decodeCmd)
	return hexCmd
}
