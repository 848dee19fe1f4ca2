package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeAttrs(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want EntryAttrs
	}{
		{
			name: "nil entry decodes to empty attrs",
			raw:  nil,
			want: EntryAttrs{},
		},
		{
			name: "full attribute set",
			raw: map[string]interface{}{
				"tags":      []interface{}{"@skip-wsl"},
				"options":   "--classic",
				"version":   "1.2.3",
				"backend":   "aqua:mikefarah/yq",
				"installer": "install-yq",
				"remote":    "flathub-beta",
			},
			want: EntryAttrs{
				Tags:      []string{"@skip-wsl"},
				Options:   "--classic",
				Version:   "1.2.3",
				Backend:   "aqua:mikefarah/yq",
				Installer: "install-yq",
				Remote:    "flathub-beta",
			},
		},
		{
			name: "numeric version is coerced to string",
			raw:  map[string]interface{}{"version": 20},
			want: EntryAttrs{Version: "20"},
		},
		{
			name: "unknown fields are ignored",
			raw:  map[string]interface{}{"version": "1.0", "color": "blue"},
			want: EntryAttrs{Version: "1.0"},
		},
		{
			name: "scalar entry value survives as empty attrs",
			raw:  "not-a-map",
			want: EntryAttrs{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeAttrs(tt.raw))
		})
	}
}

func TestMiseToolKey(t *testing.T) {
	assert.Equal(t, "go", MiseTool{Name: "go"}.Key())
	assert.Equal(t, "aqua:mikefarah/yq", MiseTool{Name: "yq", Backend: "aqua:mikefarah/yq"}.Key())
}

func TestDocumentAccessors(t *testing.T) {
	doc := Document{
		"core": map[string]interface{}{
			"common": map[string]interface{}{"git": nil},
		},
		"packs": map[string]interface{}{
			"node": map[string]interface{}{"description": "Node.js"},
			"java": map[string]interface{}{},
		},
	}

	assert.Contains(t, doc.Core(), "common")
	assert.Equal(t, []string{"java", "node"}, doc.PackNames())
	assert.True(t, doc.HasPack("node"))
	assert.False(t, doc.HasPack("rust"))
	assert.Equal(t, "Node.js", doc.PackDescription("node"))
	assert.Empty(t, doc.PackDescription("java"))
	assert.Nil(t, doc.Pack("rust"))
}

func TestDocumentAccessorsOnEmptyDocument(t *testing.T) {
	doc := Document{}

	assert.Nil(t, doc.Core())
	assert.Empty(t, doc.PackNames())
	assert.Nil(t, doc.Pack("anything"))
}

func TestIsKnownCategory(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, IsKnownCategory(c), c)
	}
	assert.False(t, IsKnownCategory("docker"))
	assert.False(t, IsKnownCategory(""))
}
