package main

import (
	"fmt"
	"os"

	"github.com/diggsweden/devbase/pkg/ui"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderError(err))
		os.Exit(1)
	}
}
