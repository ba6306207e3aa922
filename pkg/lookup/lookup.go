// Package lookup implements the hierarchical resolution engine: origin,
// parent, and recursive child lookups over a Library's (item, meta-file)
// relations, threaded through a per-session Cache.
//
// Ground: original_source/src/lookup/mod.rs.
package lookup

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/taggu-go/taggu/pkg/cache"
	"github.com/taggu-go/taggu/pkg/library"
	"github.com/taggu-go/taggu/pkg/logging"
	"github.com/taggu-go/taggu/pkg/metadata"
)

// Options configures a single lookup call.
//
// Labels is parsed eagerly from a selector string via
// k8s.io/apimachinery/pkg/labels.Parse so that a malformed selector fails
// fast at call time, but it is never consulted to filter a lookup's
// result — lookup_children/lookup_origin visit every selected child
// regardless of Labels. This is a reserved hook for a future
// label-extractor filter, not a behavior toggle.
type Options struct {
	FieldName string
	Labels    labels.Selector
}

// ParseLabels parses a label-selector string for use in Options.Labels.
// An empty string parses to labels.Everything().
func ParseLabels(selector string) (labels.Selector, error) {
	if selector == "" {
		return labels.Everything(), nil
	}
	return labels.Parse(selector)
}

// Session owns a Library reference and a Cache, and performs lookups
// against them. Each Session has its own cache; Sessions may share a
// Library but must not share a Cache without external synchronization.
type Session struct {
	id     string
	lib    *library.Library
	cache  *cache.Cache
	logger *logging.Logger
}

// NewSession constructs a Session over lib, with a session ID (derived
// from google/uuid) used only to correlate this session's log lines — it
// is not a cache key and participates in no invariant. logger may be nil.
func NewSession(lib *library.Library, logger *logging.Logger) *Session {
	id := uuid.NewString()
	sessionLogger := logger
	if logger != nil {
		sessionLogger = logger.Sublogger(id)
	}
	return &Session{
		id:     id,
		lib:    lib,
		cache:  cache.New(lib, sessionLogger),
		logger: sessionLogger,
	}
}

// ID returns the session's correlation identifier.
func (s *Session) ID() string {
	return s.id
}

// Cache returns the session's cache, for callers that need direct
// cache-management access (force re-cache, targeted eviction).
func (s *Session) Cache() *cache.Cache {
	return s.cache
}

// Origin looks up field directly on itemPath: for each candidate meta-path
// covering itemPath, in Library configuration order, the meta-file is
// cached and its binding for itemPath is checked for field. The first hit
// wins. Origin never consults item_path's ancestors or descendants.
func (s *Session) Origin(itemPath string, opts Options) (metadata.MetaValue, bool, error) {
	for _, metaPath := range s.lib.MetaPathsForItem(itemPath) {
		items, err := s.cache.GetMetaFile(metaPath)
		if err != nil {
			return metadata.MetaValue{}, false, err
		}
		block, ok := items[itemPath]
		if !ok {
			continue
		}
		if v, ok := block.Get(opts.FieldName); ok {
			return v, true, nil
		}
	}
	return metadata.MetaValue{}, false, nil
}

// Parents walks itemPath's successive parent directories — while each
// remains a proper sub-path of the root — performing Origin at each level
// and returning the first hit. It never consults itemPath itself.
func (s *Session) Parents(itemPath string, opts Options) (metadata.MetaValue, bool, error) {
	current := filepath.Dir(itemPath)
	for s.lib.IsProperSubPath(current) {
		v, ok, err := s.Origin(current, opts)
		if err != nil {
			return metadata.MetaValue{}, false, err
		}
		if ok {
			return v, true, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return metadata.MetaValue{}, false, nil
}

// Children recursively descends itemPath's selected children, aggregating
// field values with origin-first shadowing: a child with an Origin hit
// contributes its value and is not recursed into; a child with no Origin
// hit is recursed into, contributing its own Children result (itself a
// Seq) if that recursion hit; a child that contributes nothing is a hole,
// preserved by omission rather than a Nil placeholder.
//
// If itemPath is not a directory, Children returns (_, false, nil) — the
// leaf base case. Once itemPath is confirmed to be a directory, Children
// always hits: the result is Seq(collected), where collected may be empty,
// never a miss.
func (s *Session) Children(itemPath string, opts Options) (metadata.MetaValue, bool, error) {
	info, err := os.Stat(itemPath)
	if err != nil || !info.IsDir() {
		return metadata.MetaValue{}, false, nil
	}

	children, err := s.lib.ChildrenPaths(itemPath)
	if err != nil {
		return metadata.MetaValue{}, false, err
	}

	var collected []metadata.MetaValue
	for _, child := range children {
		v, ok, err := s.Origin(child, opts)
		if err != nil {
			return metadata.MetaValue{}, false, err
		}
		if ok {
			collected = append(collected, v)
			continue
		}

		sub, hit, err := s.Children(child, opts)
		if err != nil {
			return metadata.MetaValue{}, false, err
		}
		if hit {
			collected = append(collected, sub)
		}
	}

	return metadata.Seq(collected), true, nil
}
