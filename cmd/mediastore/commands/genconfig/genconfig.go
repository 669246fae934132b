package genconfig

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mtcontrib/mediastore/pkg/config"
	"github.com/mtcontrib/mediastore/pkg/errors"
)

// NewCommand creates the genconfig command
func NewCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.Generate()
			if err != nil {
				return err
			}
			if outPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), string(content))
				return nil
			}
			if err := os.WriteFile(outPath, content, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot write config to %s", outPath)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to a file instead of stdout")

	return cmd
}
