package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/diggsweden/devbase/pkg/ui"
)

func newPacksCmd() *cobra.Command {
	var opts sessionOptions
	var showVscode bool

	cmd := &cobra.Command{
		Use:     "packs [<pack>...]",
		Short:   MsgPacksShort,
		Long:    MsgPacksLong,
		Example: MsgPacksExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := buildSession(opts)
			if err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				names = session.Packs()
			}

			renderer := ui.NewPlainRenderer()
			if f, ok := cmd.OutOrStdout().(*os.File); ok {
				renderer = ui.NewRenderer(f)
			}

			out := cmd.OutOrStdout()
			for i, name := range names {
				contents, err := session.PackContents(name, showVscode)
				if err != nil {
					return err
				}

				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, renderer.Title(name))
				for _, line := range contents {
					fmt.Fprintln(out, renderer.Item(line))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.packs, "packs", "", MsgFlagPacks)
	cmd.Flags().BoolVar(&showVscode, "vscode", false, MsgFlagVscode)

	return cmd
}
