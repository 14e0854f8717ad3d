package economy

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// CacheStats exposes how effective the aggregation cache has been
type CacheStats struct {
	Hits    int
	Misses  int
	Entries int
}

// CachedResourceManager wraps a ResourceManager and memoizes its aggregation
// queries. Before answering, it fingerprints the cost-relevant slice of the
// game state (planet values, exhaustion flags, trade-good balances); a changed
// fingerprint drops the whole cache, so answers are always identical to the
// uncached path.
type CachedResourceManager struct {
	inner           *ResourceManager
	state           GameState
	entries         map[string]interface{}
	lastFingerprint string
	hits            int
	misses          int
}

// NewCachedResourceManager creates a caching manager over the given game state
func NewCachedResourceManager(state GameState, clock shared.Clock) *CachedResourceManager {
	return &CachedResourceManager{
		inner:   NewResourceManager(state, clock),
		state:   state,
		entries: make(map[string]interface{}),
	}
}

func (c *CachedResourceManager) fingerprint() string {
	hasher := sha256.New()
	for _, player := range c.state.Players() {
		fmt.Fprintf(hasher, "player|%d|tg=%d\n", player.ID().Value(), player.TradeGoods())
		for _, planet := range c.state.PlayerPlanets(player.ID()) {
			fmt.Fprintf(hasher, "planet|%s|r=%d|i=%d|exhausted=%t\n",
				planet.Name(), planet.Resources(), planet.Influence(), planet.IsExhausted())
		}
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

func (c *CachedResourceManager) refresh() {
	current := c.fingerprint()
	if current != c.lastFingerprint {
		c.entries = make(map[string]interface{})
		c.lastFingerprint = current
	}
}

func (c *CachedResourceManager) lookup(key string) (interface{}, bool) {
	value, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return value, ok
}

// AvailableResources is the cached equivalent of
// ResourceManager.AvailableResources
func (c *CachedResourceManager) AvailableResources(playerID shared.PlayerID) (int, error) {
	c.refresh()
	key := fmt.Sprintf("available_resources|%d", playerID.Value())
	if value, ok := c.lookup(key); ok {
		return value.(int), nil
	}
	total, err := c.inner.AvailableResources(playerID)
	if err != nil {
		return 0, err
	}
	c.entries[key] = total
	return total, nil
}

// AvailableInfluence is the cached equivalent of
// ResourceManager.AvailableInfluence
func (c *CachedResourceManager) AvailableInfluence(playerID shared.PlayerID, forVoting bool) (int, error) {
	c.refresh()
	key := fmt.Sprintf("available_influence|%d|voting=%t", playerID.Value(), forVoting)
	if value, ok := c.lookup(key); ok {
		return value.(int), nil
	}
	total, err := c.inner.AvailableInfluence(playerID, forVoting)
	if err != nil {
		return 0, err
	}
	c.entries[key] = total
	return total, nil
}

// ResourceSources is the cached equivalent of ResourceManager.ResourceSources
func (c *CachedResourceManager) ResourceSources(playerID shared.PlayerID) (ResourceSources, error) {
	c.refresh()
	key := fmt.Sprintf("resource_sources|%d", playerID.Value())
	if value, ok := c.lookup(key); ok {
		return value.(ResourceSources), nil
	}
	sources, err := c.inner.ResourceSources(playerID)
	if err != nil {
		return ResourceSources{}, err
	}
	c.entries[key] = sources
	return sources, nil
}

// InfluenceSources is the cached equivalent of
// ResourceManager.InfluenceSources
func (c *CachedResourceManager) InfluenceSources(playerID shared.PlayerID, forVoting bool) (InfluenceSources, error) {
	c.refresh()
	key := fmt.Sprintf("influence_sources|%d|voting=%t", playerID.Value(), forVoting)
	if value, ok := c.lookup(key); ok {
		return value.(InfluenceSources), nil
	}
	sources, err := c.inner.InfluenceSources(playerID, forVoting)
	if err != nil {
		return InfluenceSources{}, err
	}
	c.entries[key] = sources
	return sources, nil
}

// CanAffordSpending answers from the cached aggregates
func (c *CachedResourceManager) CanAffordSpending(
	playerID shared.PlayerID,
	resources int,
	influence int,
	forVoting bool,
) (bool, error) {
	availableResources, err := c.AvailableResources(playerID)
	if err != nil {
		return false, err
	}
	availableInfluence, err := c.AvailableInfluence(playerID, forVoting)
	if err != nil {
		return false, err
	}
	return availableResources >= resources && availableInfluence >= influence, nil
}

// CreateSpendingPlan delegates to the wrapped manager; plans are built fresh
// from live sources and never cached
func (c *CachedResourceManager) CreateSpendingPlan(
	playerID shared.PlayerID,
	requestedResources int,
	requestedInfluence int,
	forVoting bool,
) (*SpendingPlan, error) {
	return c.inner.CreateSpendingPlan(playerID, requestedResources, requestedInfluence, forVoting)
}

// ExecuteSpendingPlan delegates to the wrapped manager. The mutation moves
// the state fingerprint, so the next query starts from an empty cache.
func (c *CachedResourceManager) ExecuteSpendingPlan(plan *SpendingPlan) *SpendingResult {
	return c.inner.ExecuteSpendingPlan(plan)
}

// Stats returns cumulative hit and miss counts and the current entry count
func (c *CachedResourceManager) Stats() CacheStats {
	return CacheStats{
		Hits:    c.hits,
		Misses:  c.misses,
		Entries: len(c.entries),
	}
}

// ClearCache drops all entries without touching the hit and miss counters
func (c *CachedResourceManager) ClearCache() {
	c.entries = make(map[string]interface{})
	c.lastFingerprint = ""
}
