package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rihla/rihla/pkg/api"
	"github.com/rihla/rihla/pkg/catalog"
	"github.com/rihla/rihla/pkg/config"
	"github.com/rihla/rihla/pkg/log"
	"github.com/urfave/cli/v3"
)

// ServeCommand creates the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the search API daemon",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "listen",
				Usage: "Listen address (overrides config)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return serve(ctx, c.String("config"), c.String("listen"))
		},
	}
}

func serve(ctx context.Context, configPath, listen string) error {
	logger := log.ForSource("serve")

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if listen != "" {
		cfg.Listen = listen
	}

	registry, err := buildRegistry(cfg, fetchedKinds)
	if err != nil {
		return fmt.Errorf("creating sources: %w", err)
	}
	defer func() {
		if err := registry.Close(); err != nil {
			logger.Warnf("failed to close registry: %v", err)
		}
	}()

	// The listener comes up before any fetch completes. Snapshots install
	// into the live catalog as sources and the city lookups finish, so early
	// requests search whatever has landed and open live sessions refresh on
	// each install.
	cat := catalog.New()
	go func() {
		logger.Infof("Loading catalog from %d sources", len(registry.Sources()))
		loadCatalogInto(ctx, registry, cat, cityLookup(cfg))
		for kind, count := range cat.Counts() {
			logger.Infof("  - %s: %d records", kind, count)
		}
	}()

	srv := api.NewServer(registry, cat, cfg)

	mux := http.NewServeMux()
	srv.RegisterRoutes(mux)
	handler := api.CorsMiddleware(gzhttp.GzipHandler(mux))

	httpServer := &http.Server{
		Addr:    cfg.Listen,
		Handler: handler,
	}

	go func() {
		logger.Infof("Listening on http://%s", cfg.Listen)
		logger.Infof("Available endpoints:")
		logger.Infof("  GET /api/search - Ranked search over the public collections")
		logger.Infof("  GET /api/backoffice/search - Internal search over offices, clients, vouchers and users")
		logger.Infof("  GET /api/kinds - Searchable collections and record counts")
		logger.Infof("  GET /api/search/live - WebSocket live search sessions")
		logger.Infof("  GET /health - Health check")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("server failed: %v", err)
			os.Exit(1)
		}
	}()

	// Signal handling includes SIGHUP for reload
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warnf("failed to create config file watcher: %v", err)
	} else {
		defer func() {
			if err := watcher.Close(); err != nil {
				logger.Warnf("failed to close config file watcher: %v", err)
			}
		}()

		if err := watcher.Add(configPath); err != nil {
			logger.Warnf("failed to watch config file %s: %v", configPath, err)
		} else {
			logger.Infof("Watching config file for changes: %s", configPath)
		}
	}

	for {
		select {
		case sig := <-sigCh:
			switch sig {
			case syscall.SIGHUP:
				logger.Infof("Received SIGHUP, reloading configuration...")
				if err := reloadConfiguration(ctx, configPath, srv, logger); err != nil {
					logger.Errorf("failed to reload configuration: %v", err)
				} else {
					logger.Infof("Configuration reloaded")
				}
			case syscall.SIGINT, syscall.SIGTERM:
				logger.Infof("Shutting down...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				return httpServer.Shutdown(shutdownCtx)
			}
		case event, ok := <-watcher.Events:
			if !ok {
				continue
			}
			// Editors often replace the file with an atomic rename, so
			// rename and remove count as changes too.
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				logger.Infof("Config file changed: %s (event: %s), reloading...", event.Name, event.Op.String())

				if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
					time.Sleep(200 * time.Millisecond)

					if _, err := os.Stat(configPath); os.IsNotExist(err) {
						logger.Warnf("config file was removed and not replaced, skipping reload")
						continue
					}

					// The watch follows the inode, so re-add the path after
					// an atomic replace.
					if err := watcher.Add(configPath); err != nil {
						logger.Warnf("failed to re-watch config file: %v", err)
					}
				} else {
					time.Sleep(100 * time.Millisecond)
				}

				if err := reloadConfiguration(ctx, configPath, srv, logger); err != nil {
					logger.Errorf("failed to reload configuration: %v", err)
				} else {
					logger.Infof("Configuration reloaded")
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				continue
			}
			logger.Warnf("config file watcher error: %v", err)
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		}
	}
}

// reloadConfiguration rebuilds the source registry and catalog from the
// config file and swaps them into the running server. One-shot requests pick
// up the new catalog immediately; live sessions keep the snapshot they
// connected with.
func reloadConfiguration(ctx context.Context, configPath string, srv *api.Server, logger *log.Logger) error {
	newCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading new config: %w", err)
	}

	registry, err := buildRegistry(newCfg, fetchedKinds)
	if err != nil {
		return fmt.Errorf("creating sources: %w", err)
	}

	cat := loadCatalog(ctx, registry, cityLookup(newCfg))
	for kind, count := range cat.Counts() {
		logger.Infof("  - %s: %d records", kind, count)
	}

	srv.SwapCatalog(cat)
	return nil
}
