package resolve

import (
	"github.com/rs/zerolog"

	"github.com/diggsweden/devbase/pkg/logging"
	"github.com/diggsweden/devbase/pkg/manifest"
	"github.com/diggsweden/devbase/pkg/platform"
)

// DefaultPacks is the pack selection used when the caller supplies none
var DefaultPacks = []string{"base", "devtools"}

// Session resolves entries from a merged manifest document against an
// execution context. Sessions are cheap to construct and immutable once
// built; environment changes call for a new Session, not mutation.
type Session struct {
	doc          manifest.Document
	packs        []string
	ctx          platform.Context
	dedupe       bool
	miseTemplate string
	logger       zerolog.Logger
}

// Option configures a Session
type Option func(*Session)

// WithDedupe removes entries whose name already appeared in an earlier
// scope. Duplicates pass through unfiltered by default.
func WithDedupe(enabled bool) Option {
	return func(s *Session) { s.dedupe = enabled }
}

// WithMiseTemplate sets the path of the mise config template whose
// non-tool sections are carried into the generated config
func WithMiseTemplate(path string) Option {
	return func(s *Session) { s.miseTemplate = path }
}

// NewSession creates a resolution session. A nil pack selection falls back
// to DefaultPacks; an explicitly empty selection resolves core only.
func NewSession(doc manifest.Document, packs []string, ctx platform.Context, opts ...Option) *Session {
	if packs == nil {
		packs = DefaultPacks
	}

	s := &Session{
		doc:    doc,
		packs:  append([]string(nil), packs...),
		ctx:    ctx,
		logger: logging.GetLogger("resolve.session"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger.Debug().
		Strs("packs", s.packs).
		Str("packageManager", ctx.PackageManager).
		Bool("isWSL", ctx.IsWSL).
		Msg("Session created")

	return s
}

// Packs returns the ordered pack selection of this session
func (s *Session) Packs() []string {
	return append([]string(nil), s.packs...)
}

// Context returns the execution context of this session
func (s *Session) Context() platform.Context {
	return s.ctx
}
