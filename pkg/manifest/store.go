package manifest

import (
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/diggsweden/devbase/pkg/errors"
	"github.com/diggsweden/devbase/pkg/logging"
)

const keyDelim = "::"

// Store loads and caches the merged manifest document. The cache lives
// until Invalidate is called; callers re-initializing the execution
// environment must invalidate before resolving again.
type Store struct {
	basePath    string
	overlayPath string
	cached      Document
}

// NewStore creates a Store for the given base manifest path and optional
// overlay path. An empty overlayPath disables overlay loading.
func NewStore(basePath, overlayPath string) *Store {
	return &Store{basePath: basePath, overlayPath: overlayPath}
}

// Load returns the merged manifest document, reading it on first use.
// A missing base manifest is fatal. A missing or unparsable overlay is
// logged and skipped; resolution proceeds on the base document alone.
func (s *Store) Load() (Document, error) {
	if s.cached != nil {
		return s.cached, nil
	}

	logger := logging.GetLogger("manifest.store")

	if _, err := os.Stat(s.basePath); err != nil {
		return nil, errors.New(errors.ErrManifestMissing, "base manifest not found").
			WithDetail("path", s.basePath)
	}

	// Entry names carry dots (flatpak app IDs, VS Code extension IDs), so
	// the key delimiter must be something that cannot appear in a name.
	base := koanf.New(keyDelim)
	if err := base.Load(file.Provider(s.basePath), yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "failed to parse base manifest").
			WithDetail("path", s.basePath)
	}

	doc := Document(base.Raw())

	if overlay, ok := s.loadOverlay(logger); ok {
		doc = Merge(doc, overlay)
		logger.Info().Str("path", s.overlayPath).Msg("Merged organization overlay")
	}

	s.cached = doc
	logger.Debug().
		Str("base", s.basePath).
		Int("packs", len(doc.Packs())).
		Msg("Manifest loaded")

	return doc, nil
}

// Invalidate clears the cached document so the next Load re-reads the files
func (s *Store) Invalidate() {
	s.cached = nil
}

// loadOverlay reads the overlay document if one is configured and present.
// Parse failures degrade to base-only resolution.
func (s *Store) loadOverlay(logger zerolog.Logger) (map[string]interface{}, bool) {
	if s.overlayPath == "" {
		return nil, false
	}
	if _, err := os.Stat(s.overlayPath); err != nil {
		logger.Debug().Str("path", s.overlayPath).Msg("No overlay manifest")
		return nil, false
	}

	overlay := koanf.New(keyDelim)
	if err := overlay.Load(file.Provider(s.overlayPath), yaml.Parser()); err != nil {
		overlayErr := errors.Wrap(err, errors.ErrOverlayInvalid, "ignoring unparsable overlay manifest").
			WithDetail("path", s.overlayPath)
		logger.Warn().Err(overlayErr).Str("path", s.overlayPath).Msg("Overlay skipped, resolving on base manifest only")
		return nil, false
	}

	return overlay.Raw(), true
}
