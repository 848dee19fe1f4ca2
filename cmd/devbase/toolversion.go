package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newToolVersionCmd() *cobra.Command {
	var opts sessionOptions

	cmd := &cobra.Command{
		Use:     "tool-version <tool>",
		Short:   MsgToolVersionShort,
		Long:    MsgToolVersionLong,
		Example: MsgToolVersionExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := buildSession(opts)
			if err != nil {
				return err
			}

			// A miss prints nothing; the caller decides how to handle it
			if v := session.ToolVersion(args[0]); v != "" {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.packs, "packs", "", MsgFlagPacks)

	return cmd
}
