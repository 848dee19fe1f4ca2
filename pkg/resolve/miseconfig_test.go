package resolve

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diggsweden/devbase/pkg/manifest"
	"github.com/diggsweden/devbase/pkg/testutil"
)

func miseDoc() manifest.Document {
	return manifest.Document{
		"core": map[string]interface{}{
			"mise": map[string]interface{}{
				"go":   map[string]interface{}{"version": "1.22"},
				"node": map[string]interface{}{"version": "20"},
				"yq": map[string]interface{}{
					"backend": "aqua:mikefarah/yq",
					"version": "4.40.0",
				},
			},
		},
	}
}

func TestGenerateMiseConfigQuoting(t *testing.T) {
	s := NewSession(miseDoc(), []string{}, aptContext())

	var buf bytes.Buffer
	require.NoError(t, s.GenerateMiseConfig(&buf))
	out := buf.String()

	// plain keys stay bare, backend keys get quoted
	assert.Contains(t, out, "go = \"1.22\"\n")
	assert.Contains(t, out, "node = \"20\"\n")
	assert.Contains(t, out, "\"aqua:mikefarah/yq\" = \"4.40.0\"\n")
	assert.NotContains(t, out, "yq = ")
}

func TestGenerateMiseConfigDefaultPreamble(t *testing.T) {
	s := NewSession(miseDoc(), []string{}, aptContext())

	var buf bytes.Buffer
	require.NoError(t, s.GenerateMiseConfig(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Managed by devbase."))
	assert.Contains(t, out, "[settings]\n")
	assert.Contains(t, out, "\n[tools]\n")
}

func TestGenerateMiseConfigIsValidTOML(t *testing.T) {
	s := NewSession(miseDoc(), []string{}, aptContext())

	var buf bytes.Buffer
	require.NoError(t, s.GenerateMiseConfig(&buf))

	var parsed struct {
		Tools map[string]string `toml:"tools"`
	}
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &parsed))

	assert.Equal(t, map[string]string{
		"go":                "1.22",
		"node":              "20",
		"aqua:mikefarah/yq": "4.40.0",
	}, parsed.Tools)
}

func TestGenerateMiseConfigTemplatePreamble(t *testing.T) {
	template := `# org defaults
[settings]
experimental = false

[tools]
stale = "1.0"

[env]
GOPROXY = "https://proxy.example.org"
`
	path := testutil.WriteFile(t, t.TempDir(), "mise.toml", template)

	s := NewSession(miseDoc(), []string{}, aptContext(), WithMiseTemplate(path))

	var buf bytes.Buffer
	require.NoError(t, s.GenerateMiseConfig(&buf))
	out := buf.String()

	// non-tool sections survive verbatim, the template's tools do not
	assert.Contains(t, out, "# org defaults\n")
	assert.Contains(t, out, "experimental = false\n")
	assert.Contains(t, out, "GOPROXY = \"https://proxy.example.org\"\n")
	assert.NotContains(t, out, "stale")
	assert.Contains(t, out, "go = \"1.22\"\n")
}

func TestGenerateMiseConfigInvalidTemplateFallsBack(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "mise.toml", "[settings\nbroken")

	s := NewSession(miseDoc(), []string{}, aptContext(), WithMiseTemplate(path))

	var buf bytes.Buffer
	require.NoError(t, s.GenerateMiseConfig(&buf))

	assert.True(t, strings.HasPrefix(buf.String(), "# Managed by devbase."))
}

func TestGenerateMiseConfigMissingTemplateFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mise.toml")

	s := NewSession(miseDoc(), []string{}, aptContext(), WithMiseTemplate(path))

	var buf bytes.Buffer
	require.NoError(t, s.GenerateMiseConfig(&buf))

	assert.True(t, strings.HasPrefix(buf.String(), "# Managed by devbase."))
}

func TestGenerateMiseConfigSkipsDuplicatesAndUnversioned(t *testing.T) {
	doc := manifest.Document{
		"core": map[string]interface{}{
			"mise": map[string]interface{}{
				"node":     map[string]interface{}{"version": "20"},
				"unpinned": nil,
			},
		},
		"packs": map[string]interface{}{
			"web": map[string]interface{}{
				"mise": map[string]interface{}{
					"node": map[string]interface{}{"version": "18"},
				},
			},
		},
	}
	s := NewSession(doc, []string{"web"}, aptContext())

	var buf bytes.Buffer
	require.NoError(t, s.GenerateMiseConfig(&buf))
	out := buf.String()

	assert.Contains(t, out, "node = \"20\"\n")
	assert.NotContains(t, out, "node = \"18\"")
	assert.NotContains(t, out, "unpinned")
}

func TestWriteMiseConfig(t *testing.T) {
	s := NewSession(miseDoc(), []string{}, aptContext())

	path := filepath.Join(t.TempDir(), "mise", "config.toml")
	require.NoError(t, s.WriteMiseConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n[tools]\n")
}
