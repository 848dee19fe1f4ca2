// Package testutil provides helpers for building manifest fixtures in tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// WriteManifest marshals doc to YAML and writes it as packages.yml under
// dir, returning the file path
func WriteManifest(t *testing.T, dir string, doc map[string]interface{}) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(dir, "packages.yml")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

// WriteFile writes content under dir with the given name and returns the path
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
