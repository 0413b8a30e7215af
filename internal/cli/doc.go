// Package cli provides discovery, version validation, and command building
// for the GraphicsMagick gm binary.
//
// # Discovery
//
// The Discoverer interface locates and validates the gm binary:
//
//	discoverer := cli.NewDiscoverer(&cli.Config{
//	    GMPath: "",           // Optional explicit path
//	    Logger: slog.Default(),
//	})
//	gmPath, err := discoverer.Discover(ctx)
//
// Discovery searches in the following order:
//  1. Explicit path in Config.GMPath (if provided)
//  2. System PATH
//  3. Common installation directories (/usr/local/bin, /usr/bin, /opt/homebrew/bin)
//
// # Version Validation
//
// During discovery, the output of "gm version" is checked against
// MinimumVersion, the first release that ships the batch subcommand. A
// warning is logged if the version is below minimum. Version checking can be
// skipped via Config.SkipVersionCheck or the GM_BATCH_SDK_SKIP_VERSION_CHECK
// environment variable.
//
// # Command Building
//
//	args := cli.BuildArgs()
//	env := cli.BuildEnvironment(options)
package cli
