// Package platform detects the facts about the running system that drive
// manifest resolution: the native package manager, the preferred app store,
// and whether the process runs inside WSL.
package platform

import (
	"os"
	"strings"

	"github.com/diggsweden/devbase/pkg/logging"
)

// Context carries the execution environment a resolution session runs against
type Context struct {
	// PackageManager is the native package manager name (apt, dnf, pacman, zypper)
	PackageManager string

	// AppStore is the preferred application store (snap or flatpak)
	AppStore string

	// IsWSL reports whether the process runs inside Windows Subsystem for Linux
	IsWSL bool
}

// Detector resolves a Context from the local system. The probe file paths
// are fields so tests can point them at fixtures.
type Detector struct {
	// OSReleasePath is the os-release file consulted for distro identity
	OSReleasePath string

	// KernelReleasePath is the kernel release string consulted for WSL detection
	KernelReleasePath string
}

// NewDetector returns a Detector wired to the standard system paths
func NewDetector() *Detector {
	return &Detector{
		OSReleasePath:     "/etc/os-release",
		KernelReleasePath: "/proc/sys/kernel/osrelease",
	}
}

// Detect builds the execution context. DEVBASE_PACKAGE_MANAGER and
// DEVBASE_APP_STORE override detection when set.
func (d *Detector) Detect() Context {
	logger := logging.GetLogger("platform")

	release := d.readOSRelease()

	ctx := Context{
		PackageManager: packageManagerFor(release),
		AppStore:       appStoreFor(release),
		IsWSL:          d.detectWSL(),
	}

	if pm := os.Getenv("DEVBASE_PACKAGE_MANAGER"); pm != "" {
		ctx.PackageManager = pm
	}
	if store := os.Getenv("DEVBASE_APP_STORE"); store != "" {
		ctx.AppStore = store
	}

	logger.Debug().
		Str("packageManager", ctx.PackageManager).
		Str("appStore", ctx.AppStore).
		Bool("isWSL", ctx.IsWSL).
		Msg("Detected execution context")

	return ctx
}

func (d *Detector) readOSRelease() map[string]string {
	data, err := os.ReadFile(d.OSReleasePath)
	if err != nil {
		return map[string]string{}
	}
	return parseOSRelease(string(data))
}

// parseOSRelease parses the key=value lines of an os-release file,
// stripping surrounding quotes from values
func parseOSRelease(content string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"'`)
		fields[key] = value
	}
	return fields
}

// packageManagerFor maps a distro identity to its native package manager.
// ID is checked first, then each ID_LIKE token.
func packageManagerFor(release map[string]string) string {
	ids := []string{release["ID"]}
	ids = append(ids, strings.Fields(release["ID_LIKE"])...)

	for _, id := range ids {
		switch id {
		case "debian", "ubuntu":
			return "apt"
		case "fedora", "rhel", "centos":
			return "dnf"
		case "arch":
			return "pacman"
		case "opensuse", "suse", "opensuse-leap", "opensuse-tumbleweed":
			return "zypper"
		}
	}

	// apt covers the widest spread of supported targets
	return "apt"
}

// appStoreFor picks snap on Ubuntu and its derivatives, flatpak elsewhere
func appStoreFor(release map[string]string) string {
	ids := []string{release["ID"]}
	ids = append(ids, strings.Fields(release["ID_LIKE"])...)

	for _, id := range ids {
		if id == "ubuntu" {
			return "snap"
		}
	}
	return "flatpak"
}

func (d *Detector) detectWSL() bool {
	if os.Getenv("WSL_DISTRO_NAME") != "" {
		return true
	}
	data, err := os.ReadFile(d.KernelReleasePath)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(data)), "microsoft")
}
