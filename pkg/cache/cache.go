// Package cache stores generation strings and rendered artifacts between runs.
//
// Two backends are provided: [FileCache] for the CLI, keeping entries under
// the user's cache directory, and [RedisCache] for shared deployments. A
// [NullCache] disables caching entirely.
//
// Keys are built by a [Keyer] so that every input affecting an entry (the
// blueprint hash, the generation range, the output format and size) is part
// of the key. Rewriting is deterministic for a fixed seed, which makes those
// inputs sufficient.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A miss is reported as (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default entry lifetimes.
const (
	TTLGenerations = 7 * 24 * time.Hour
	TTLArtifact    = 24 * time.Hour
)

// GenerationsKeyOpts are the sequence settings that change which strings
// a blueprint produces.
type GenerationsKeyOpts struct {
	MaxLength int `json:"max_length"`
}

// ArtifactKeyOpts are the render settings of a stored artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Style  string `json:"style,omitempty"`
	Frame  int    `json:"frame"`
}

// Keyer builds cache keys.
type Keyer interface {
	// GenerationsKey identifies the generation strings of a blueprint.
	GenerationsKey(blueprintHash string, opts GenerationsKeyOpts) string
	// ArtifactKey identifies one rendered output of a blueprint.
	ArtifactKey(blueprintHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer builds unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default [Keyer].
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// GenerationsKey returns "generations:<hash>".
func (DefaultKeyer) GenerationsKey(blueprintHash string, opts GenerationsKeyOpts) string {
	return hashKey("generations", blueprintHash, opts)
}

// ArtifactKey returns "artifact:<format>:<hash>".
func (DefaultKeyer) ArtifactKey(blueprintHash string, opts ArtifactKeyOpts) string {
	return hashKey(fmt.Sprintf("artifact:%s", opts.Format), blueprintHash, opts)
}

var _ Keyer = DefaultKeyer{}
