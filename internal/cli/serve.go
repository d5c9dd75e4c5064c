package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/narravis/narravis/internal/api"
	"github.com/narravis/narravis/pkg/cache"
	"github.com/narravis/narravis/pkg/pipeline"
	"github.com/narravis/narravis/pkg/store"
)

// serveCommand creates the serve command for running the layout API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
		redisAddr  string
		mongoURI   string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the layout HTTP API",
		Long: `Run the layout HTTP API.

Without flags the server uses the local file cache and an in-memory store,
which suits development. Point --redis and --mongo at shared backends for a
deployment; both can also come from the [server] and [cache] sections of
narravis.toml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("redis") {
				cfg.Cache.RedisAddr = redisAddr
			}
			if cmd.Flags().Changed("mongo") {
				cfg.Server.MongoURI = mongoURI
			}
			return c.runServe(cmd.Context(), cfg, noCache)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: narravis.toml, then XDG config dir)")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for the shared layout cache")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "MongoDB URI for persistent layout records")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg fileConfig, noCache bool) error {
	layoutCache, err := c.serveCache(ctx, cfg, noCache)
	if err != nil {
		return err
	}

	recordStore, err := c.serveStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer recordStore.Close(context.Background())

	runner := pipeline.NewRunner(layoutCache, nil, c.Logger)
	defer runner.Close()

	server := api.NewServer(api.Config{
		Addr:   cfg.Server.Addr,
		Runner: runner,
		Store:  recordStore,
		Logger: c.Logger,
	})
	return server.Start(ctx)
}

func (c *CLI) serveCache(ctx context.Context, cfg fileConfig, noCache bool) (cache.Cache, error) {
	switch {
	case noCache:
		return cache.NewNullCache(), nil
	case cfg.Cache.RedisAddr != "":
		c.Logger.Info("using redis cache", "addr", cfg.Cache.RedisAddr)
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr: cfg.Cache.RedisAddr,
			DB:   cfg.Cache.RedisDB,
		})
	case cfg.Cache.Dir != "":
		return cache.NewFileCache(cfg.Cache.Dir)
	default:
		return newCache(false)
	}
}

func (c *CLI) serveStore(ctx context.Context, cfg fileConfig) (store.Store, error) {
	if cfg.Server.MongoURI == "" {
		c.Logger.Warn("no MongoDB configured, layout records are in-memory only")
		return store.NewMemoryStore(), nil
	}
	c.Logger.Info("using mongodb store", "uri", cfg.Server.MongoURI)
	s, err := store.NewMongoStore(ctx, store.MongoConfig{URI: cfg.Server.MongoURI})
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	return s, nil
}
