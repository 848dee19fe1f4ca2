package resolve

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/diggsweden/devbase/pkg/errors"
)

// defaultMisePreamble is used when no usable template exists
const defaultMisePreamble = `# Managed by devbase. Tool entries are regenerated from the package
# manifest; non-tool settings come from the mise.toml template in the
# custom configuration directory.

[settings]
experimental = true
idiomatic_version_file_enable_tools = []
`

// GenerateMiseConfig renders the mise configuration: the non-tool sections
// of the user's template (or a built-in default block), followed by a
// [tools] section built from the mise resolution.
func (s *Session) GenerateMiseConfig(w io.Writer) error {
	if _, err := io.WriteString(w, s.misePreamble()); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n[tools]\n"); err != nil {
		return err
	}

	// Duplicate keys are illegal in the target grammar; the first
	// occurrence wins, matching the core-over-pack version precedence.
	written := make(map[string]bool)
	for _, tool := range s.Mise() {
		key := tool.Key()
		if tool.Version == "" || written[key] {
			continue
		}
		written[key] = true
		if _, err := fmt.Fprintf(w, "%s = \"%s\"\n", quoteMiseKey(key), tool.Version); err != nil {
			return err
		}
	}

	return nil
}

// WriteMiseConfig renders the mise configuration to a file, creating
// parent directories as needed
func (s *Session) WriteMiseConfig(path string) error {
	var buf bytes.Buffer
	if err := s.GenerateMiseConfig(&buf); err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite, "failed to render mise config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite, "failed to create config directory").
			WithDetail("path", path)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite, "failed to write mise config").
			WithDetail("path", path)
	}

	s.logger.Info().Str("path", path).Msg("Generated mise config")
	return nil
}

// misePreamble returns the non-tool portion of the template verbatim when
// the template exists and parses as TOML, the default block otherwise
func (s *Session) misePreamble() string {
	if s.miseTemplate == "" {
		return defaultMisePreamble
	}

	data, err := os.ReadFile(s.miseTemplate)
	if err != nil {
		return defaultMisePreamble
	}

	var parsed map[string]interface{}
	if err := toml.Unmarshal(data, &parsed); err != nil {
		s.logger.Warn().Err(err).Str("path", s.miseTemplate).Msg("Mise template is not valid TOML, using default preamble")
		return defaultMisePreamble
	}

	return strings.TrimRight(stripToolsSection(string(data)), "\n") + "\n"
}

// stripToolsSection drops the [tools] section from template content while
// copying every other line verbatim
func stripToolsSection(content string) string {
	var kept []string
	inTools := false

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") {
			inTools = trimmed == "[tools]" || strings.HasPrefix(trimmed, "[tools.")
		}
		if inTools {
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}

// quoteMiseKey quotes a tool key iff the downstream config grammar needs
// it: keys carrying a backend prefix (aqua:..., ubi:...) or array syntax
func quoteMiseKey(key string) string {
	if strings.ContainsAny(key, ":[") {
		return "\"" + key + "\""
	}
	return key
}
