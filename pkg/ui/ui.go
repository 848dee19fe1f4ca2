// Package ui renders human-facing command output. Styling is applied only
// when stdout is a terminal with color support; plain text otherwise, so
// output stays pipeable.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/diggsweden/devbase/pkg/errors"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

// Renderer renders listings either styled or plain
type Renderer struct {
	color bool
}

// NewRenderer returns a renderer styled for f when f is a color-capable
// terminal, plain otherwise
func NewRenderer(f *os.File) *Renderer {
	color := isatty.IsTerminal(f.Fd()) && termenv.EnvColorProfile() != termenv.Ascii
	return &Renderer{color: color}
}

// NewPlainRenderer returns a renderer that never styles
func NewPlainRenderer() *Renderer {
	return &Renderer{}
}

// Colored reports whether this renderer applies styling
func (r *Renderer) Colored() bool {
	return r.color
}

// Title renders a heading
func (r *Renderer) Title(s string) string {
	if r.color {
		return titleStyle.Render(s)
	}
	return s
}

// Muted renders secondary text
func (r *Renderer) Muted(s string) string {
	if r.color {
		return mutedStyle.Render(s)
	}
	return s
}

// Item renders one listing line
func (r *Renderer) Item(s string) string {
	return "  " + s
}

// RenderError renders an error message for the terminal, surfacing the
// error code when the error carries one
func RenderError(err error) string {
	if err == nil {
		return ""
	}

	code := errors.GetErrorCode(err)
	if code != errors.ErrUnknown {
		return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, err.Error())
}
