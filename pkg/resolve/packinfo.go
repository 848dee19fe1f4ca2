package resolve

import (
	"fmt"

	"github.com/diggsweden/devbase/pkg/errors"
	"github.com/diggsweden/devbase/pkg/manifest"
)

// PackContents returns a human-readable listing of what a pack installs:
// mise tool names, custom installer names, optionally VS Code extensions,
// and a summary line counting the pack's system packages for the active
// package manager.
func (s *Session) PackContents(pack string, showVscode bool) ([]string, error) {
	if !s.doc.HasPack(pack) {
		return nil, errors.Newf(errors.ErrPackNotFound, "pack %q not found", pack).
			WithDetail("available", s.doc.PackNames())
	}

	group := s.doc.Pack(pack)
	var lines []string

	for _, name := range sortedKeys(manifest.SubMap(group, manifest.CategoryMise)) {
		lines = append(lines, name)
	}
	for _, name := range sortedKeys(manifest.SubMap(group, manifest.CategoryCustom)) {
		lines = append(lines, name)
	}
	if showVscode {
		for _, name := range sortedKeys(manifest.SubMap(group, manifest.CategoryVscode)) {
			lines = append(lines, name+" (VS Code)")
		}
	}

	systemCount := len(manifest.SubMap(group, manifest.KeyCommon)) +
		len(manifest.SubMap(group, s.ctx.PackageManager))
	lines = append(lines, fmt.Sprintf("+%d system packages", systemCount))

	return lines, nil
}
