package cmd

import (
	"context"
	"fmt"

	"github.com/rihla/rihla/pkg/config"
	"github.com/rihla/rihla/pkg/core"
	"github.com/urfave/cli/v3"
)

// SourcesCommand creates the sources command
func SourcesCommand() *cli.Command {
	return &cli.Command{
		Name:  "sources",
		Usage: "List configured sources and derived collections",
		Action: func(ctx context.Context, c *cli.Command) error {
			return listSources(c.String("config"))
		},
	}
}

// listSources prints every fetched collection with its endpoint and status,
// followed by the collections derived locally.
func listSources(configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	registry, err := buildRegistry(cfg, fetchedKinds)
	if err != nil {
		return fmt.Errorf("creating sources: %w", err)
	}
	defer func() {
		if err := registry.Close(); err != nil {
			fmt.Printf("Warning: failed to close registry: %v\n", err)
		}
	}()

	active := make(map[core.Kind]bool)
	for _, src := range registry.Sources() {
		active[src.Kind()] = true
	}

	fmt.Println("Fetched collections:")
	for _, kind := range fetchedKinds {
		settings := cfg.Settings(kind)
		status := "active"
		switch {
		case cfg.SourceDisabled(kind):
			status = "disabled"
		case !active[kind]:
			status = "skipped"
		}
		fmt.Printf("  %-14s %-10s %s\n", kind, status, settings.Endpoint)
	}

	fmt.Println("\nDerived collections:")
	fmt.Printf("  %-14s from the static destination list and the cities endpoint\n", core.KindCountry)
	fmt.Printf("  %-14s seeded from hotels, tours and packages, merged with %s\n", core.KindCity, cfg.CitiesEndpoint())
	fmt.Printf("  %-14s from vouchers without an office\n", core.KindDirectClient)

	return nil
}
