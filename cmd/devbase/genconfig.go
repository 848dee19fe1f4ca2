package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diggsweden/devbase/pkg/paths"
)

func newGenConfigCmd() *cobra.Command {
	var opts sessionOptions

	cmd := &cobra.Command{
		Use:     "gen-config [path]",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := buildSession(opts)
			if err != nil {
				return err
			}

			target := paths.New().MiseConfig()
			if len(args) == 1 {
				target = args[0]
			}

			if err := session.WriteMiseConfig(target); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.packs, "packs", "", MsgFlagPacks)

	return cmd
}
