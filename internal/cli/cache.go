package cli

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/myreality/pkg/cache"
	"github.com/matzehuels/myreality/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the layout and render cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached layouts and artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.newCache(ctx, false)
			if err != nil {
				return err
			}
			defer store.Close()

			clearer, ok := store.(cache.Clearer)
			if !ok {
				printInfo("Caching is disabled")
				return nil
			}

			var size uint64
			fc, isFile := store.(*cache.FileCache)
			if isFile {
				size = dirSize(fc.Dir())
			}

			count, err := clearer.Clear(ctx)
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}

			if isFile {
				printSuccess("Cleared %d cached entries (%s)", count, humanize.Bytes(size))
				printDetail("Directory: %s", fc.Dir())
			} else {
				printSuccess("Cleared %d cached entries", count)
				printDetail("Redis prefix: %s", redisPrefix(c.Config.Cache.Redis.Prefix))
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache location",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config.Cache
			switch cfg.Backend {
			case config.BackendRedis:
				fmt.Println(cfg.Redis.URL + " " + redisPrefix(cfg.Redis.Prefix))
				return nil
			case config.BackendNone:
				printInfo("Caching is disabled")
				return nil
			}
			if cfg.Dir != "" {
				fmt.Println(cfg.Dir)
				return nil
			}
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}

// dirSize sums the sizes of regular files under dir.
func dirSize(dir string) uint64 {
	var total uint64
	_ = filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, err := d.Info(); err == nil {
			total += uint64(info.Size())
		}
		return nil
	})
	return total
}
