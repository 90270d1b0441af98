package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/snapline/pkg/buildinfo"
	"github.com/matzehuels/snapline/pkg/cache"
)

// appName is the application name used for display and file prefixes.
const appName = "snapline"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Snapline replays and explores editor gesture snapping",
		Long: `Snapline drives the drag, resize, rotate and spacing gesture controllers
of a visual page editor from scripted scenes or live terminal input, showing
the dispatched layout updates, snap guides and readouts.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.replayCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.snapCommand())
	root.AddCommand(c.spacingCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCache opens the frame cache, falling back to no caching when the cache
// directory is unavailable.
func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err == nil {
		var fc *cache.FileCache
		if fc, err = cache.NewFileCache(dir); err == nil {
			return fc
		}
	}
	c.Logger.Warn("frame cache disabled", "err", err)
	return cache.NewNullCache()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/snapline/).
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
