package derive

import (
	"strings"

	"github.com/rihla/rihla/pkg/core"
)

// directClientPrefix makes synthetic client identifiers stable across
// re-derivation: the same trimmed name always yields the same id.
const directClientPrefix = "direct-client-"

// DirectClients extracts the deduplicated direct-client collection from
// vouchers that have no office reference. Names are trimmed before
// deduplication; first occurrence wins and insertion order is preserved so
// repeated derivations produce identical output.
func DirectClients(vouchers []core.Voucher) []core.DirectClient {
	seen := make(map[string]bool)
	var clients []core.DirectClient

	for _, voucher := range vouchers {
		if strings.TrimSpace(voucher.OfficeID) != "" {
			continue
		}
		name := strings.TrimSpace(voucher.ClientName)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		clients = append(clients, core.DirectClient{
			ID:   directClientPrefix + name,
			Name: name,
		})
	}
	return clients
}
