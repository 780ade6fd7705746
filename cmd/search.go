package cmd

import (
	"context"
	"fmt"

	"github.com/rihla/rihla/pkg/config"
	"github.com/rihla/rihla/pkg/core"
	"github.com/rihla/rihla/pkg/rank"
	"github.com/rihla/rihla/pkg/search"
	"github.com/urfave/cli/v3"
)

// SearchCommand creates the search command
func SearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search the public collections",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of results (0 uses the configured cap)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return searchPublic(ctx, c.String("config"), c.Args().First(), c.Int("limit"))
		},
	}
}

// searchPublic fetches every public collection, runs a ranked search and
// prints the results grouped by kind.
func searchPublic(ctx context.Context, configPath, query string, limit int) error {
	if query == "" {
		return fmt.Errorf("query is required")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	registry, err := buildRegistry(cfg, publicFetchedKinds)
	if err != nil {
		return fmt.Errorf("creating sources: %w", err)
	}
	defer func() {
		if err := registry.Close(); err != nil {
			fmt.Printf("Warning: failed to close registry: %v\n", err)
		}
	}()

	cat := loadCatalog(ctx, registry, cityLookup(cfg))

	results := search.Aggregate(cat, core.PublicKinds(), query)
	results = rank.Rank(results, query)
	if limit <= 0 {
		limit = cfg.ResultCap
	}
	results = rank.Cap(results, limit)

	renderResults(query, results)
	return nil
}
