package cli

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/wagiedev/gm-batch-sdk-go/internal/errors"
)

const (
	// MinimumVersion is the first GraphicsMagick release with "gm batch".
	MinimumVersion = "1.3.18"

	// VersionCheckTimeout is the timeout for the gm version command.
	VersionCheckTimeout = 2 * time.Second

	// SkipVersionCheckEnv disables the version check when set to any value.
	SkipVersionCheckEnv = "GM_BATCH_SDK_SKIP_VERSION_CHECK"

	binaryName = "gm"
)

var versionPattern = regexp.MustCompile(`GraphicsMagick ([0-9]+\.[0-9]+(?:\.[0-9]+)?)`)

// Config holds configuration for gm discovery.
type Config struct {
	// GMPath is an explicit gm path that skips PATH search.
	// If empty, discovery will search PATH and common locations.
	GMPath string

	// SkipVersionCheck skips version validation during discovery.
	SkipVersionCheck bool

	// Logger is an optional logger for discovery operations.
	// If nil, a default no-op logger is used.
	Logger *slog.Logger
}

// Discoverer locates and validates the gm binary.
type Discoverer interface {
	// Discover locates the gm binary and validates its version.
	// Returns the path to the binary or an error.
	Discover(ctx context.Context) (string, error)
}

type discoverer struct {
	cfg         *Config
	log         *slog.Logger
	commonPaths []string
}

// Compile-time verification that discoverer implements Discoverer.
var _ Discoverer = (*discoverer)(nil)

// NewDiscoverer creates a new gm discoverer with the given configuration.
func NewDiscoverer(cfg *Config) Discoverer {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}

	return &discoverer{
		cfg: cfg,
		log: log,
		commonPaths: []string{
			"/usr/local/bin/gm",
			"/usr/bin/gm",
			"/opt/homebrew/bin/gm",
		},
	}
}

// Discover locates the gm binary and validates its version.
func (d *discoverer) Discover(ctx context.Context) (string, error) {
	d.log.Debug("Discovering gm binary")

	gmPath, err := d.findGM()
	if err != nil {
		d.log.Error("Failed to find gm", "error", err)

		return "", err
	}

	d.log.Debug("Found gm binary", "gm_path", gmPath)

	d.checkVersion(ctx, gmPath)

	return gmPath, nil
}

func (d *discoverer) findGM() (string, error) {
	// An explicit path is used and only it
	if d.cfg.GMPath != "" {
		d.log.Debug("Using explicit gm path", "gm_path", d.cfg.GMPath)

		if _, err := os.Stat(d.cfg.GMPath); err == nil {
			return d.cfg.GMPath, nil
		}

		return "", &errors.GMNotFoundError{SearchedPaths: []string{d.cfg.GMPath}}
	}

	searchedPaths := make([]string, 0, len(d.commonPaths)+1)

	if path, err := exec.LookPath(binaryName); err == nil {
		d.log.Debug("Found gm in PATH", "path", path)

		return path, nil
	}

	searchedPaths = append(searchedPaths, "$PATH")

	for _, path := range d.commonPaths {
		searchedPaths = append(searchedPaths, path)

		if _, err := os.Stat(path); err == nil {
			d.log.Debug("Found gm at common path", "path", path)

			return path, nil
		}
	}

	d.log.Warn("gm not found in any searched paths", "searched_paths", searchedPaths)

	return "", &errors.GMNotFoundError{SearchedPaths: searchedPaths}
}

// checkVersion warns when gm is older than MinimumVersion.
// Errors are silently ignored.
func (d *discoverer) checkVersion(ctx context.Context, gmPath string) {
	if d.cfg.SkipVersionCheck {
		d.log.Debug("Skipping gm version check (configured)")

		return
	}

	if os.Getenv(SkipVersionCheckEnv) != "" {
		d.log.Debug("Skipping gm version check", "env", SkipVersionCheckEnv)

		return
	}

	ctx, cancel := context.WithTimeout(ctx, VersionCheckTimeout)
	defer cancel()

	//nolint:gosec // G204: the binary path comes from discovery
	output, err := exec.CommandContext(ctx, gmPath, "version").Output()
	if err != nil {
		d.log.Debug("gm version check failed", "error", err)

		return
	}

	version, ok := ParseVersion(string(output))
	if !ok {
		d.log.Debug("Could not parse gm version", "output", strings.TrimSpace(string(output)))

		return
	}

	if compareVersions(version, MinimumVersion) < 0 {
		d.log.Warn("GraphicsMagick version does not support batch mode",
			"version", version,
			"minimum_required", MinimumVersion,
		)

		return
	}

	d.log.Debug("gm version check passed", "version", version, "minimum", MinimumVersion)
}

// ParseVersion extracts the release number from "gm version" output.
func ParseVersion(output string) (string, bool) {
	match := versionPattern.FindStringSubmatch(output)
	if match == nil {
		return "", false
	}

	return match[1], true
}

// compareVersions compares two dotted versions.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
func compareVersions(a, b string) int {
	aParts := strings.Split(a, ".")
	bParts := strings.Split(b, ".")

	for i := range 3 {
		aNum := 0
		bNum := 0

		if i < len(aParts) {
			aNum, _ = strconv.Atoi(aParts[i])
		}

		if i < len(bParts) {
			bNum, _ = strconv.Atoi(bParts[i])
		}

		if aNum < bNum {
			return -1
		}

		if aNum > bNum {
			return 1
		}
	}

	return 0
}
