package resolve

import "github.com/diggsweden/devbase/pkg/manifest"

// ToolVersion returns the pinned version of a tool, searching core.custom,
// core.mise, then each selected pack's custom and mise sub-maps in pack
// order. Core always outranks any pack. Returns "" when no scope pins a
// version; the caller decides how to handle the miss.
func (s *Session) ToolVersion(name string) string {
	lookup := func(group map[string]interface{}, category string) (string, bool) {
		sub := manifest.SubMap(group, category)
		raw, ok := sub[name]
		if !ok {
			return "", false
		}
		if version := manifest.DecodeAttrs(raw).Version; version != "" {
			return version, true
		}
		return "", false
	}

	core := s.doc.Core()
	if version, ok := lookup(core, manifest.CategoryCustom); ok {
		return version
	}
	if version, ok := lookup(core, manifest.CategoryMise); ok {
		return version
	}

	for _, pack := range s.packs {
		group := s.doc.Pack(pack)
		if version, ok := lookup(group, manifest.CategoryCustom); ok {
			return version
		}
		if version, ok := lookup(group, manifest.CategoryMise); ok {
			return version
		}
	}

	return ""
}
