package cache

import (
	"context"
	"time"
)

// formatVersion prefixes every key this package derives for decode-pipeline
// artifacts, so that changing the decoder's output shape invalidates every
// previously cached entry rather than returning a stale, incompatible blob.
const formatVersion = "v1"

// Cache stores opaque byte values under string keys with an optional TTL.
// Every backend (NullCache, FileCache, RedisCache) implements the same
// interface so the CLI and HTTP server can swap backends by configuration
// alone.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer derives cache keys for each of the three stages a decode run can be
// cached at: the assembled Document itself, a Document re-laid-out under
// different layout constants, and a rendered debug preview artifact.
// Keeping key derivation behind an interface lets a multi-tenant deployment
// swap in a ScopedKeyer without touching call sites.
type Keyer interface {
	HTTPKey(namespace, key string) string
	DocumentKey(contentHash string, opts DocumentKeyOpts) string
	LayoutKey(documentHash string, opts LayoutKeyOpts) string
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DocumentKeyOpts distinguishes cached Documents that came from the same
// input bytes but were decoded under different container-reading choices.
type DocumentKeyOpts struct {
	ForceEndian string // "", "little", "big" — empty means magic-detected.
}

// LayoutKeyOpts distinguishes re-layouts of the same Document under
// non-default layout constants (see pkg/config).
type LayoutKeyOpts struct {
	MaxPerLayer int
	LayerGapX   int
	LayerGapY   int
}

// ArtifactKeyOpts distinguishes rendered debug-preview artifacts of the
// same laid-out graph.
type ArtifactKeyOpts struct {
	Format string // "dot" or "svg"
}

// DefaultKeyer derives keys by hashing the stage's inputs with [hashKey].
type DefaultKeyer struct{}

// NewDefaultKeyer creates the unscoped, process-default keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// HTTPKey builds a namespaced key for caching an arbitrary request/response
// pair. Unlike the other keys it carries no formatVersion prefix.
func (k *DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

func (k *DefaultKeyer) DocumentKey(contentHash string, opts DocumentKeyOpts) string {
	return hashKey(formatVersion+":document", contentHash, opts)
}

func (k *DefaultKeyer) LayoutKey(documentHash string, opts LayoutKeyOpts) string {
	return hashKey(formatVersion+":layout", documentHash, opts)
}

func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey(formatVersion+":artifact", layoutHash, opts)
}

var _ Keyer = (*DefaultKeyer)(nil)
