package resolve

import (
	"sort"

	"github.com/diggsweden/devbase/pkg/manifest"
)

// scope is one manifest sub-map contributing entries to a resolution
type scope struct {
	name    string
	entries map[string]interface{}
}

// scopes enumerates the ordered sub-maps to union for a category: core
// first, then each selected pack in order. The system category contributes
// a common and a manager-specific sub-map per scope. Missing keys
// contribute nothing.
func (s *Session) scopes(category string) []scope {
	var out []scope
	add := func(owner string, group map[string]interface{}, key string) {
		if sub := manifest.SubMap(group, key); sub != nil {
			out = append(out, scope{name: owner + "." + key, entries: sub})
		}
	}

	core := s.doc.Core()
	if category == manifest.CategorySystem {
		add(manifest.KeyCore, core, manifest.KeyCommon)
		add(manifest.KeyCore, core, s.ctx.PackageManager)
		for _, pack := range s.packs {
			group := s.doc.Pack(pack)
			add(pack, group, manifest.KeyCommon)
			add(pack, group, s.ctx.PackageManager)
		}
		return out
	}

	add(manifest.KeyCore, core, category)
	for _, pack := range s.packs {
		add(pack, s.doc.Pack(pack), category)
	}
	return out
}

// entry is one named manifest entry surviving tag filtering
type entry struct {
	Scope string
	Name  string
	Attrs manifest.EntryAttrs
}

// entries walks the scopes of a category in order and yields the entries
// that survive the tag filter. Entry names inside one scope sub-map are
// sorted so resolution stays deterministic.
func (s *Session) entries(category string) []entry {
	var out []entry
	var seen map[string]bool
	if s.dedupe {
		seen = make(map[string]bool)
	}

	for _, sc := range s.scopes(category) {
		for _, name := range sortedKeys(sc.entries) {
			attrs := manifest.DecodeAttrs(sc.entries[name])
			if excludedByTags(attrs.Tags, s.ctx) {
				s.logger.Trace().
					Str("scope", sc.name).
					Str("entry", name).
					Msg("Entry excluded by tag")
				continue
			}
			if seen != nil {
				if seen[name] {
					continue
				}
				seen[name] = true
			}
			out = append(out, entry{Scope: sc.name, Name: name, Attrs: attrs})
		}
	}
	return out
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
