package cmd

import (
	"context"
	"fmt"

	"github.com/rihla/rihla/pkg/config"
	"github.com/rihla/rihla/pkg/core"
	"github.com/rihla/rihla/pkg/search"
	"github.com/urfave/cli/v3"
)

// BackofficeCommand creates the backoffice search command
func BackofficeCommand() *cli.Command {
	return &cli.Command{
		Name:      "backoffice",
		Usage:     "Search the internal collections (offices, clients, vouchers, users)",
		ArgsUsage: "<query>",
		Action: func(ctx context.Context, c *cli.Command) error {
			return searchBackoffice(ctx, c.String("config"), c.Args().First())
		},
	}
}

// searchBackoffice runs an unranked search over the internal collections.
// Results keep the fixed collection order with no cap.
func searchBackoffice(ctx context.Context, configPath, query string) error {
	if query == "" {
		return fmt.Errorf("query is required")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	registry, err := buildRegistry(cfg, internalFetchedKinds)
	if err != nil {
		return fmt.Errorf("creating sources: %w", err)
	}
	defer func() {
		if err := registry.Close(); err != nil {
			fmt.Printf("Warning: failed to close registry: %v\n", err)
		}
	}()

	// Internal search never looks up cities; direct clients still derive
	// from the voucher snapshot.
	cat := loadCatalog(ctx, registry, nil)

	results := search.Aggregate(cat, core.InternalKinds(), query)
	renderResults(query, results)
	return nil
}
