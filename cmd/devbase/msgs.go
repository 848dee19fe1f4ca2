package main

// Message constants
const (
	MsgRootShort = "Resolve the devbase package manifest into installation plans"
	MsgRootLong  = `devbase resolves a layered, declarative manifest of development tools into
concrete installation plans for the system package manager, snap, flatpak,
mise and the VS Code extension installer.

The base manifest is merged with an optional organization overlay, filtered
by the selected packs and the execution environment, and projected into
line-oriented output the installer scripts consume.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagPacks   = "Space-separated, ordered pack selection (overrides DEVBASE_PACKS)"
	MsgFlagDedupe  = "Drop entries whose name already appeared in an earlier scope"
	MsgFlagVscode  = "Include VS Code extensions in the listing"

	MsgResolveShort   = "Resolve a category into its installer line format"
	MsgResolveLong    = "Print one pipe-delimited line per resolved entry of the given category.\n\nCategories: system, snap, flatpak, mise, custom, vscode. An unknown\ncategory yields empty output."
	MsgResolveExample = `  devbase resolve system                  # apt/dnf/... package names
  devbase resolve mise                     # toolKey|version
  devbase resolve snap --packs "python"    # only core plus the python pack`

	MsgToolVersionShort   = "Print the pinned version of a tool"
	MsgToolVersionLong    = "Look up a tool version in strict priority order: core.custom, core.mise,\nthen each selected pack's custom and mise entries. Prints nothing when\nno scope pins a version."
	MsgToolVersionExample = `  devbase tool-version node
  devbase tool-version python --packs "python java"`

	MsgGenConfigShort   = "Generate the mise configuration file"
	MsgGenConfigLong    = "Render the resolved mise tools into a mise config file. Non-tool sections\ncome from the mise.toml template in the custom configuration directory\nwhen one exists."
	MsgGenConfigExample = `  devbase gen-config                       # write to the default location
  devbase gen-config /tmp/config.toml      # write elsewhere`

	MsgPacksShort   = "Show what the selected packs install"
	MsgPacksLong    = "List the mise tools, custom installers and system package counts of each\nnamed pack. With no arguments the active pack selection is shown."
	MsgPacksExample = `  devbase packs
  devbase packs python java --vscode`

	MsgDocsShort = "Show the package manifest format documentation"
	MsgDocsLong  = "Render the manifest format reference to the terminal."
)
