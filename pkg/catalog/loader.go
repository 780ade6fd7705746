package catalog

import (
	"context"
	"sync"

	"github.com/rihla/rihla/pkg/core"
	"github.com/rihla/rihla/pkg/log"
)

// Load fetches every source concurrently and installs each snapshot as it
// completes. A failed fetch installs an empty snapshot for that kind and
// logs the failure; one broken endpoint must never block or corrupt the
// others. Load returns once every source has joined, but callers that want
// search available before slow sources finish can run it in a goroutine:
// snapshots become searchable the moment they install.
//
// Cancellation via ctx makes in-flight fetches return early; their results
// are discarded as empty snapshots, which is the expected no-op for a
// response arriving after teardown.
func Load(ctx context.Context, c *Catalog, sources []core.Source) {
	var wg sync.WaitGroup
	for _, source := range sources {
		wg.Add(1)
		go func(source core.Source) {
			defer wg.Done()
			l := log.ForSource(source.Name())

			entities, err := source.Fetch(ctx)
			if err != nil {
				l.Warnf("fetch failed, collection stays empty: %v", err)
				c.Install(source.Kind(), nil)
				return
			}
			c.Install(source.Kind(), entities)
			l.Debugf("installed %d %s records", len(entities), source.Kind())
		}(source)
	}
	wg.Wait()
}
