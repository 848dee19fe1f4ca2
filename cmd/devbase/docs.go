package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

//go:embed docs/manifest-format.md
var manifestFormatDoc string

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: MsgDocsShort,
		Long:  MsgDocsLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f, ok := cmd.OutOrStdout().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
				renderer, err := glamour.NewTermRenderer(
					glamour.WithAutoStyle(),
					glamour.WithWordWrap(100),
				)
				if err == nil {
					if rendered, err := renderer.Render(manifestFormatDoc); err == nil {
						fmt.Fprint(cmd.OutOrStdout(), rendered)
						return nil
					}
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), manifestFormatDoc)
			return nil
		},
	}
}
