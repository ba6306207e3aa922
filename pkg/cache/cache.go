// Package cache implements the resolver's two-level meta-file cache: a
// mapping from meta-path to (item-path → MetaBlock), owned by a single
// lookup session. The cache never expires entries by time; only explicit
// eviction (Clear/ClearMetaFile/ClearItemFile) or a forced re-cache
// invalidates an entry.
//
// Ground: original_source/src/lookup/cacher.rs's LookupCacher, restyled in
// the shape of pkg/synchronization/core/ignore's cache-key/cache-value
// split rather than a time-based LRU, since spec.md explicitly wants no
// time-based expiry.
//
// Cache is not safe for concurrent use; each lookup Session owns its own
// instance, matching the teacher's convention of calling out
// non-concurrency-safety explicitly in godoc rather than adding internal
// locking nothing in this codebase needs.
package cache

import (
	"github.com/taggu-go/taggu/pkg/library"
	"github.com/taggu-go/taggu/pkg/logging"
	"github.com/taggu-go/taggu/pkg/metadata"
)

// ItemCache maps an item path to the block a single meta-file bound to it.
type ItemCache map[string]metadata.MetaBlock

// Cache is the two-level meta-path → item-path → MetaBlock map.
type Cache struct {
	entries map[string]ItemCache
	lib     *library.Library
	logger  *logging.Logger
}

// New constructs an empty Cache bound to lib. logger may be nil.
func New(lib *library.Library, logger *logging.Logger) *Cache {
	return &Cache{
		entries: make(map[string]ItemCache),
		lib:     lib,
		logger:  logger,
	}
}

// CacheMetaFile ensures metaPath is plexed and present in the cache. If the
// entry already exists and force is false, this is a no-op; otherwise the
// meta-file is re-read and re-plexed, replacing any existing entry.
func (c *Cache) CacheMetaFile(metaPath string, force bool) error {
	if !force {
		if _, ok := c.entries[metaPath]; ok {
			return nil
		}
	}

	bindings, err := c.lib.ItemPathsForMeta(metaPath, c.logger)
	if err != nil {
		return err
	}

	items := make(ItemCache, len(bindings))
	for _, binding := range bindings {
		items[binding.ItemPath] = binding.Block
	}
	c.entries[metaPath] = items
	return nil
}

// CacheItemFile ensures every meta-file that could cover itemPath is
// cached, per CacheMetaFile's force semantics.
func (c *Cache) CacheItemFile(itemPath string, force bool) error {
	for _, metaPath := range c.lib.MetaPathsForItem(itemPath) {
		if err := c.CacheMetaFile(metaPath, force); err != nil {
			return err
		}
	}
	return nil
}

// Clear evicts every cached entry.
func (c *Cache) Clear() {
	c.entries = make(map[string]ItemCache)
}

// ClearMetaFile evicts the cache entry for metaPath, if any.
func (c *Cache) ClearMetaFile(metaPath string) {
	delete(c.entries, metaPath)
}

// ClearItemFile evicts the cache entries for every meta-file that could
// cover itemPath.
func (c *Cache) ClearItemFile(itemPath string) {
	for _, metaPath := range c.lib.MetaPathsForItem(itemPath) {
		c.ClearMetaFile(metaPath)
	}
}

// GetMetaFile returns the cached item-block mapping for metaPath, caching
// it first (without forcing) if it isn't already present.
func (c *Cache) GetMetaFile(metaPath string) (ItemCache, error) {
	if err := c.CacheMetaFile(metaPath, false); err != nil {
		return nil, err
	}
	return c.entries[metaPath], nil
}
