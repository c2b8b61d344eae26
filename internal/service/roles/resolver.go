// Package roles resolves symbolic role names to their stored IDs.
package roles

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/spotwish/spotwish-api/internal/platform/logger"
	"github.com/spotwish/spotwish-api/internal/store"
)

// Resolver maps role names ("admin", "user") to stored role IDs, memoizing
// each lookup for a bounded TTL. Roles must be seeded before any user exists,
// so a missing role surfaces as store.ErrRoleNotFound.
//
// The cache tolerates staleness for up to one TTL after a role change and
// never blocks: concurrent lookups of an expired entry may each hit the
// database, which is harmless.
type Resolver struct {
	roleStore store.RoleStore
	ttl       time.Duration
	timeFunc  func() time.Time // Injectable for testing
	logger    *slog.Logger

	mu    sync.RWMutex
	cache map[string]cachedRole
}

type cachedRole struct {
	id        int
	expiresAt time.Time
}

// NewResolver creates a Resolver with the given TTL.
// If logger is nil, a default logger will be used.
func NewResolver(roleStore store.RoleStore, ttl time.Duration, logger *slog.Logger) *Resolver {
	if roleStore == nil {
		panic("roleStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Resolver{
		roleStore: roleStore,
		ttl:       ttl,
		timeFunc:  time.Now,
		logger:    logger.With(slog.String("component", "role_resolver")),
		cache:     make(map[string]cachedRole),
	}
}

// ResolveID returns the stored ID of the named role, from cache when the
// entry is still fresh. Returns store.ErrRoleNotFound if the role is absent.
func (r *Resolver) ResolveID(ctx context.Context, name string) (int, error) {
	now := r.timeFunc()

	r.mu.RLock()
	entry, ok := r.cache[name]
	r.mu.RUnlock()
	if ok && now.Before(entry.expiresAt) {
		return entry.id, nil
	}

	role, err := r.roleStore.GetByName(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve role %q: %w", name, err)
	}

	r.mu.Lock()
	r.cache[name] = cachedRole{id: role.ID, expiresAt: now.Add(r.ttl)}
	r.mu.Unlock()

	log := logger.FromContextOrDefault(ctx, r.logger)
	log.Debug("role resolved",
		slog.String("role", name),
		slog.Int("role_id", role.ID),
		slog.Duration("ttl", r.ttl))

	return role.ID, nil
}
