// Package paths resolves the well-known file locations devbase reads and
// writes: the base manifest shipped with a devbase checkout, the optional
// organization overlay in the custom configuration directory, and the
// generated mise configuration.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	manifestFile     = "packages.yml"
	miseTemplateFile = "mise.toml"
)

// Paths holds the resolved directory roots for a devbase installation
type Paths struct {
	root      string
	customDir string
}

// New resolves the devbase root and custom configuration directory.
// DEVBASE_ROOT and DEVBASE_CUSTOM_DIR take precedence over the XDG defaults.
func New() *Paths {
	root := os.Getenv("DEVBASE_ROOT")
	if root == "" {
		root = filepath.Join(xdg.DataHome, "devbase")
	}

	customDir := os.Getenv("DEVBASE_CUSTOM_DIR")
	if customDir == "" {
		customDir = filepath.Join(xdg.ConfigHome, "devbase")
	}

	return &Paths{root: root, customDir: customDir}
}

// Root returns the devbase installation root
func (p *Paths) Root() string {
	return p.root
}

// CustomDir returns the organization/custom configuration directory
func (p *Paths) CustomDir() string {
	return p.customDir
}

// BaseManifest returns the path to the base package manifest
func (p *Paths) BaseManifest() string {
	return filepath.Join(p.root, manifestFile)
}

// OverlayManifest returns the path to the organization overlay manifest.
// The file is optional; callers must tolerate it being absent.
func (p *Paths) OverlayManifest() string {
	return filepath.Join(p.customDir, manifestFile)
}

// MiseTemplate returns the path to the optional mise config template whose
// non-tool sections are carried into the generated config
func (p *Paths) MiseTemplate() string {
	return filepath.Join(p.customDir, miseTemplateFile)
}

// MiseConfig returns the path the generated mise configuration is written to
func (p *Paths) MiseConfig() string {
	return filepath.Join(xdg.ConfigHome, "mise", "config.toml")
}
