package resolve

import (
	"strings"

	"github.com/diggsweden/devbase/pkg/manifest"
)

// System resolves the system packages for the active package manager:
// each scope contributes its common sub-map followed by the
// manager-specific one
func (s *Session) System() []manifest.SystemPackage {
	var out []manifest.SystemPackage
	for _, e := range s.entries(manifest.CategorySystem) {
		out = append(out, manifest.SystemPackage{Name: e.Name, Tags: e.Attrs.Tags})
	}
	return out
}

// Snap resolves the snap packages
func (s *Session) Snap() []manifest.SnapPackage {
	var out []manifest.SnapPackage
	for _, e := range s.entries(manifest.CategorySnap) {
		out = append(out, manifest.SnapPackage{Name: e.Name, Options: e.Attrs.Options, Tags: e.Attrs.Tags})
	}
	return out
}

// Flatpak resolves the flatpak applications. Entries naming no remote
// default to flathub.
func (s *Session) Flatpak() []manifest.FlatpakApp {
	var out []manifest.FlatpakApp
	for _, e := range s.entries(manifest.CategoryFlatpak) {
		remote := e.Attrs.Remote
		if remote == "" {
			remote = manifest.DefaultFlatpakRemote
		}
		out = append(out, manifest.FlatpakApp{Name: e.Name, Remote: remote, Tags: e.Attrs.Tags})
	}
	return out
}

// Mise resolves the mise-managed tools
func (s *Session) Mise() []manifest.MiseTool {
	var out []manifest.MiseTool
	for _, e := range s.entries(manifest.CategoryMise) {
		out = append(out, manifest.MiseTool{
			Name:    e.Name,
			Backend: e.Attrs.Backend,
			Version: e.Attrs.Version,
			Tags:    e.Attrs.Tags,
		})
	}
	return out
}

// Custom resolves the custom-installer tools
func (s *Session) Custom() []manifest.CustomTool {
	var out []manifest.CustomTool
	for _, e := range s.entries(manifest.CategoryCustom) {
		out = append(out, manifest.CustomTool{
			Name:      e.Name,
			Version:   e.Attrs.Version,
			Installer: e.Attrs.Installer,
			Tags:      e.Attrs.Tags,
		})
	}
	return out
}

// Vscode resolves the VS Code extensions
func (s *Session) Vscode() []manifest.VscodeExtension {
	var out []manifest.VscodeExtension
	for _, e := range s.entries(manifest.CategoryVscode) {
		out = append(out, manifest.VscodeExtension{ID: e.Name, Version: e.Attrs.Version, Tags: e.Attrs.Tags})
	}
	return out
}

// Lines serializes a category resolution into the pipe-delimited,
// line-oriented form consumed by the installer scripts. An unknown
// category yields an empty result, not an error.
func (s *Session) Lines(category string) []string {
	var lines []string

	switch category {
	case manifest.CategorySystem:
		for _, p := range s.System() {
			lines = append(lines, p.Name)
		}
	case manifest.CategorySnap:
		for _, p := range s.Snap() {
			lines = append(lines, p.Name+"|"+p.Options)
		}
	case manifest.CategoryFlatpak:
		for _, a := range s.Flatpak() {
			lines = append(lines, a.Name+"|"+a.Remote)
		}
	case manifest.CategoryMise:
		for _, t := range s.Mise() {
			lines = append(lines, t.Key()+"|"+t.Version)
		}
	case manifest.CategoryCustom:
		for _, t := range s.Custom() {
			lines = append(lines, strings.Join([]string{t.Name, t.Version, t.Installer, joinTags(t.Tags)}, "|"))
		}
	case manifest.CategoryVscode:
		for _, e := range s.Vscode() {
			lines = append(lines, strings.Join([]string{e.ID, e.Version, joinTags(e.Tags)}, "|"))
		}
	default:
		s.logger.Debug().Str("category", category).Msg("Unknown category, empty resolution")
	}

	return lines
}

// joinTags renders a tag set as a single space-separated field
func joinTags(tags []string) string {
	return strings.Join(tags, " ")
}
