package auth

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// denylistMaxEntries bounds the denylist size. Entries also age out on their
// own once the revoked token would have expired anyway.
const denylistMaxEntries = 4096

// Denylist records revoked token IDs (jti) until the underlying token has
// expired. A denylisted token fails validation even though its signature and
// expiry are otherwise fine.
type Denylist struct {
	cache *lru.LRU[string, time.Time]
}

// NewDenylist creates a Denylist whose entries expire after maxTokenLifetime.
// The lifetime should cover the access token lifetime plus any refresh grace
// period, so a revoked token stays revoked for as long as it could be
// presented.
func NewDenylist(maxTokenLifetime time.Duration) *Denylist {
	return &Denylist{
		cache: lru.NewLRU[string, time.Time](denylistMaxEntries, nil, maxTokenLifetime),
	}
}

// Revoke records the token ID as revoked.
func (d *Denylist) Revoke(tokenID string, expiresAt time.Time) {
	if tokenID == "" {
		return
	}
	d.cache.Add(tokenID, expiresAt)
}

// IsRevoked reports whether the token ID has been revoked.
func (d *Denylist) IsRevoked(tokenID string) bool {
	_, ok := d.cache.Get(tokenID)
	return ok
}
