// Package cli implements the gsgraph command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/avnlabs/gsgraph/pkg/buildinfo"
	"github.com/avnlabs/gsgraph/pkg/cache"
	"github.com/avnlabs/gsgraph/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "gsgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a new CLI instance with a default logger and compiled-in
// configuration defaults. Commands that accept --config overlay a file
// onto these defaults before running.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: config.Defaults(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// LoadConfig overlays the TOML file at path (if non-empty and present) onto
// the CLI's configuration.
func (c *CLI) LoadConfig(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          appName,
		Short:        "gsgraph decodes GraphScript node graphs out of ADF containers",
		Long:         `gsgraph parses Avalanche Data Format containers, decodes the GraphScript node graph inside, and computes a deterministic layered layout ready for a viewport to render.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.LoadConfig(configPath)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a gsgraph.toml configuration file")

	root.AddCommand(c.decodeCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.archiveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCache builds the Cache backend named by the CLI's loaded configuration,
// falling back to a NullCache for any backend this build can't construct
// (e.g. a Redis dial failure).
func (c *CLI) newCache() cache.Cache {
	switch c.Config.Cache.Backend {
	case "file":
		dir := c.Config.Cache.FileDir
		if dir == "" {
			if d, err := cacheDir(); err == nil {
				dir = d
			}
		}
		if dir != "" {
			if fc, err := cache.NewFileCache(dir); err == nil {
				return fc
			}
		}
	case "redis":
		if c.Config.Cache.RedisAddr != "" {
			if rc, err := cache.NewRedisCache(context.Background(), c.Config.Cache.RedisAddr); err == nil {
				return rc
			}
			c.Logger.Warn("redis cache unavailable, falling back to no cache", "addr", c.Config.Cache.RedisAddr)
		}
	}
	return cache.NewNullCache()
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/gsgraph/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
