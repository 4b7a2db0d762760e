package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-site/internal/config"
	"github.com/jonathan/portfolio-site/internal/pipeline"
)

var buildCommand = &cobra.Command{
	Use:   "build",
	Short: "Render every page shell from the JSON resource documents",
	Long: `Loads the full Resource Set (all JSON documents, fetched concurrently,
all-or-nothing), classifies each HTML shell in the pages directory by file
name, and writes the rendered pages to the output directory.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runBuildCmd,
}

var (
	buildConfigPath string
	buildDataURL    string
	buildDataDir    string
	buildPages      string
	buildOutput     string
	buildResources  []string
	buildUseCache   bool
	buildCacheDir   string
	buildCacheTTL   int
	buildVerbose    bool
)

func init() {
	// Config file flag (processed first)
	buildCommand.Flags().StringVar(&buildConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	buildCommand.Flags().StringVar(&buildDataURL, "data-url", "", "Base URL serving the JSON resource documents (mutually exclusive with --data-dir)")
	buildCommand.Flags().StringVar(&buildDataDir, "data-dir", "", "Local directory of resource documents (mutually exclusive with --data-url)")
	buildCommand.Flags().StringVarP(&buildPages, "pages", "p", "", "Directory of HTML page shells")
	buildCommand.Flags().StringVarP(&buildOutput, "out", "o", "", "Output directory for rendered pages")
	buildCommand.Flags().StringSliceVar(&buildResources, "resources", nil, "Resource Set override (comma-separated identifiers)")
	buildCommand.Flags().BoolVar(&buildUseCache, "use-cache", false, "Cache fetched resources on disk with an expiry window")
	buildCommand.Flags().StringVar(&buildCacheDir, "cache-dir", "", "Cache directory (with --use-cache)")
	buildCommand.Flags().IntVar(&buildCacheTTL, "cache-ttl-hours", 0, "Cache freshness window in hours (with --use-cache)")
	buildCommand.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(buildCommand)
}

func runBuildCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if buildConfigPath != "" {
		loadedCfg, err := config.LoadConfig(buildConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("data-url") {
		cfg.DataURL = buildDataURL
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = buildDataDir
	}
	if cmd.Flags().Changed("pages") {
		cfg.Pages = buildPages
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = buildOutput
	}
	if cmd.Flags().Changed("resources") {
		cfg.Resources = buildResources
	}
	if cmd.Flags().Changed("use-cache") {
		cfg.UseCache = buildUseCache
	}
	if cmd.Flags().Changed("cache-dir") {
		cfg.CacheDir = buildCacheDir
	}
	if cmd.Flags().Changed("cache-ttl-hours") {
		cfg.CacheTTLHours = buildCacheTTL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = buildVerbose
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		Pages:         "pages",
		Output:        "public",
		CacheDir:      ".cache",
		CacheTTLHours: 24,
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if cfg.DataURL == "" && cfg.DataDir == "" {
		return fmt.Errorf("either --data-url or --data-dir must be provided (via flag or config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := loggerForVerbosity(os.Stderr, cfg.Verbose)

	opts := pipeline.BuildOptions{
		DataURL:   cfg.DataURL,
		DataDir:   cfg.DataDir,
		PagesDir:  cfg.Pages,
		OutputDir: cfg.Output,
		Resources: cfg.Resources,
		UseCache:  cfg.UseCache,
		CacheDir:  cfg.CacheDir,
		CacheTTL:  time.Duration(cfg.CacheTTLHours) * time.Hour,
		Verbose:   cfg.Verbose,
		Logger:    logger,
	}

	return pipeline.RunBuild(ctx, opts)
}
