package cache

// ScopedKeyer wraps a Keyer with a prefix. The CLI scopes keys by release,
// since a change to the rewriter can change the generations a blueprint
// hash maps to.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), buildinfo.Get().Version+":")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// GenerationsKey generates a prefixed key for generation strings.
func (k *ScopedKeyer) GenerationsKey(blueprintHash string, opts GenerationsKeyOpts) string {
	return k.prefix + k.inner.GenerationsKey(blueprintHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(blueprintHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(blueprintHash, opts)
}
