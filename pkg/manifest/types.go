package manifest

import (
	"sort"

	"github.com/go-viper/mapstructure/v2"
)

// Category names supported by the manifest
const (
	CategorySystem  = "system"
	CategorySnap    = "snap"
	CategoryFlatpak = "flatpak"
	CategoryMise    = "mise"
	CategoryCustom  = "custom"
	CategoryVscode  = "vscode"
)

// Document keys
const (
	KeyCore        = "core"
	KeyPacks       = "packs"
	KeyCommon      = "common"
	KeyDescription = "description"
)

// DefaultFlatpakRemote is assumed when a flatpak entry names no remote
const DefaultFlatpakRemote = "flathub"

// Categories returns the supported category names in their canonical order
func Categories() []string {
	return []string{
		CategorySystem,
		CategorySnap,
		CategoryFlatpak,
		CategoryMise,
		CategoryCustom,
		CategoryVscode,
	}
}

// IsKnownCategory reports whether name is a supported category
func IsKnownCategory(name string) bool {
	for _, c := range Categories() {
		if c == name {
			return true
		}
	}
	return false
}

// Document is the merged, loosely typed manifest
type Document map[string]interface{}

// Core returns the core tool group, or nil when absent
func (d Document) Core() map[string]interface{} {
	return SubMap(d, KeyCore)
}

// Packs returns the packs map, or nil when absent
func (d Document) Packs() map[string]interface{} {
	return SubMap(d, KeyPacks)
}

// Pack returns the tool group for the named pack, or nil when absent
func (d Document) Pack(name string) map[string]interface{} {
	return SubMap(d.Packs(), name)
}

// HasPack reports whether the named pack exists in the document
func (d Document) HasPack(name string) bool {
	_, ok := d.Packs()[name]
	return ok
}

// PackNames returns the defined pack names, sorted
func (d Document) PackNames() []string {
	packs := d.Packs()
	names := make([]string, 0, len(packs))
	for name := range packs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PackDescription returns the description of the named pack, or ""
func (d Document) PackDescription(name string) string {
	desc, _ := d.Pack(name)[KeyDescription].(string)
	return desc
}

// SubMap returns m[key] as a map, or nil when the key is absent or the
// value has a different shape
func SubMap(m map[string]interface{}, key string) map[string]interface{} {
	if m == nil {
		return nil
	}
	sub, _ := m[key].(map[string]interface{})
	return sub
}

// EntryAttrs holds the attributes an entry may carry. Which fields are
// meaningful depends on the category; unknown fields are ignored.
type EntryAttrs struct {
	Tags      []string `mapstructure:"tags"`
	Options   string   `mapstructure:"options"`
	Version   string   `mapstructure:"version"`
	Backend   string   `mapstructure:"backend"`
	Installer string   `mapstructure:"installer"`
	Remote    string   `mapstructure:"remote"`
}

// DecodeAttrs decodes a raw entry value into EntryAttrs. Entries with no
// attributes (nil values) and values of unexpected shape both decode to
// empty attrs; the entry itself always survives.
func DecodeAttrs(raw interface{}) EntryAttrs {
	var attrs EntryAttrs
	if raw == nil {
		return attrs
	}

	m, ok := raw.(map[string]interface{})
	if !ok {
		return attrs
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &attrs,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return EntryAttrs{}
	}
	if err := decoder.Decode(m); err != nil {
		return EntryAttrs{}
	}
	return attrs
}

// SystemPackage is an entry in the common or manager-specific sub-map
type SystemPackage struct {
	Name string
	Tags []string
}

// SnapPackage is an entry in the snap category
type SnapPackage struct {
	Name    string
	Options string
	Tags    []string
}

// FlatpakApp is an entry in the flatpak category
type FlatpakApp struct {
	Name   string
	Remote string
	Tags   []string
}

// MiseTool is an entry in the mise category
type MiseTool struct {
	Name    string
	Backend string
	Version string
	Tags    []string
}

// Key returns the canonical mise registry key: the backend override when
// present, the entry name otherwise
func (t MiseTool) Key() string {
	if t.Backend != "" {
		return t.Backend
	}
	return t.Name
}

// CustomTool is an entry in the custom category, installed by a named
// installer script
type CustomTool struct {
	Name      string
	Version   string
	Installer string
	Tags      []string
}

// VscodeExtension is an entry in the vscode category
type VscodeExtension struct {
	ID      string
	Version string
	Tags    []string
}
