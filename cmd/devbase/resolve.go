package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	var opts sessionOptions

	cmd := &cobra.Command{
		Use:     "resolve <category>",
		Short:   MsgResolveShort,
		Long:    MsgResolveLong,
		Example: MsgResolveExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := buildSession(opts)
			if err != nil {
				return err
			}

			for _, line := range session.Lines(args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.packs, "packs", "", MsgFlagPacks)
	cmd.Flags().BoolVar(&opts.dedupe, "dedupe", false, MsgFlagDedupe)

	return cmd
}
