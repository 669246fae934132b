package inspect

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mtcontrib/mediastore/pkg/errors"
	"github.com/mtcontrib/mediastore/pkg/index"
)

// manifestReport is the YAML shape of a decoded manifest.
type manifestReport struct {
	Entries     int      `yaml:"entries"`
	Identifiers []string `yaml:"identifiers"`
}

// NewCommand creates the inspect command
func NewCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "inspect <index.mth>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := index.ReadFile(args[0])
			if err != nil {
				return err
			}

			switch format {
			case "text":
				fmt.Fprintf(cmd.OutOrStdout(), "%d entries\n", len(ids))
				for _, id := range ids {
					fmt.Fprintln(cmd.OutOrStdout(), id.Hex())
				}
			case "yaml":
				report := manifestReport{Entries: len(ids)}
				for _, id := range ids {
					report.Identifiers = append(report.Identifiers, id.Hex())
				}
				out, err := yaml.Marshal(report)
				if err != nil {
					return errors.Wrap(err, errors.ErrInternal, "cannot marshal manifest report")
				}
				fmt.Fprint(cmd.OutOrStdout(), string(out))
			default:
				return errors.Newf(errors.ErrInvalidInput, "unknown format %q (want text or yaml)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or yaml")

	return cmd
}
