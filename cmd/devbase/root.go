package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/diggsweden/devbase/internal/version"
	"github.com/diggsweden/devbase/pkg/logging"
	"github.com/diggsweden/devbase/pkg/manifest"
	"github.com/diggsweden/devbase/pkg/paths"
	"github.com/diggsweden/devbase/pkg/platform"
	"github.com/diggsweden/devbase/pkg/resolve"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "devbase",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newToolVersionCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newPacksCmd())
	rootCmd.AddCommand(newDocsCmd())

	return rootCmd
}

// sessionOptions carry the per-command knobs into buildSession
type sessionOptions struct {
	packs  string
	dedupe bool
}

// buildSession loads the merged manifest, detects the execution context
// and constructs a resolution session
func buildSession(opts sessionOptions) (*resolve.Session, error) {
	p := paths.New()

	store := manifest.NewStore(p.BaseManifest(), p.OverlayManifest())
	doc, err := store.Load()
	if err != nil {
		return nil, err
	}

	ctx := platform.NewDetector().Detect()

	return resolve.NewSession(doc, selectedPacks(opts.packs), ctx,
		resolve.WithDedupe(opts.dedupe),
		resolve.WithMiseTemplate(p.MiseTemplate()),
	), nil
}

// selectedPacks resolves the ordered pack selection: the --packs flag
// first, then the DEVBASE_PACKS environment variable, then the built-in
// default set. Both external forms are space-separated token lists.
func selectedPacks(flagValue string) []string {
	if flagValue != "" {
		return strings.Fields(flagValue)
	}
	if env := os.Getenv("DEVBASE_PACKS"); env != "" {
		return strings.Fields(env)
	}
	return resolve.DefaultPacks
}
