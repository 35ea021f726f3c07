package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/mapx"
	"github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/msto63/textkit/pkg/core/config"
	"github.com/msto63/textkit/pkg/core/logging"
)

func newSubstCmd(a *app) *cobra.Command {
	var (
		prefix      string
		suffix      string
		assignments []string
		valuesFile  string
	)

	substCmd := &cobra.Command{
		Use:   "subst [text|-]",
		Short: "Substitute placeholders with values",
		Long: `Replaces every prefix+key+suffix placeholder with its value. Keys are
applied in order: first those of the values file in document order, then
--set assignments in the order given. A later --set overrides an earlier
value but keeps its position. Unknown placeholders stay untouched.`,
		Example: `  textkit subst --set name=World "Hello, ${name}!"
  textkit subst --values values.yaml --prefix "{{" --suffix "}}" < template.txt`,
		RunE: a.action("subst", func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			values := mapx.NewOrdered[string, any]()
			if valuesFile != "" {
				if values, err = config.LoadValues(valuesFile); err != nil {
					return err
				}
			}
			for _, assignment := range assignments {
				key, value, ok := strings.Cut(assignment, "=")
				if !ok || key == "" {
					return mdwerrors.InvalidArgument(mdwerrors.ModuleCLI, "parse_set", "set", assignment,
						"expected key=value")
				}
				values.Set(key, value)
			}

			keyPrefix, keySuffix := a.cfg.Placeholders.Prefix, a.cfg.Placeholders.Suffix
			if cmd.Flags().Changed("prefix") {
				keyPrefix = prefix
			}
			if cmd.Flags().Changed("suffix") {
				keySuffix = suffix
			}

			a.logger.Debug("substituting placeholders", logging.Pairs("keys", values.Len(), "prefix", keyPrefix, "suffix", keySuffix))

			result, err := stringx.SubstitutePlaceholders(text, values, keyPrefix, keySuffix)
			if err != nil {
				return err
			}
			return writeLine(cmd, result)
		}),
	}
	substCmd.Flags().StringVar(&prefix, "prefix", "", "placeholder prefix (default from config, \"${\")")
	substCmd.Flags().StringVar(&suffix, "suffix", "", "placeholder suffix (default from config, \"}\")")
	substCmd.Flags().StringArrayVar(&assignments, "set", nil, "key=value assignment, repeatable")
	substCmd.Flags().StringVar(&valuesFile, "values", "", "TOML or YAML file with values")

	return substCmd
}
