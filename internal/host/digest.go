package host

import (
	"sync"
	"unique"

	"github.com/cespare/xxhash/v2"
)

// DigestCache remembers the content digest last reconciled for each shader path.
type DigestCache struct {
	mu      sync.Mutex
	digests map[unique.Handle[string]]uint64
}

// NewDigestCache creates an empty DigestCache.
func NewDigestCache() *DigestCache {
	return &DigestCache{digests: make(map[unique.Handle[string]]uint64)}
}

// Unchanged reports whether content matches the digest recorded for path.
func (c *DigestCache) Unchanged(path, content string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	digest, ok := c.digests[unique.Make(path)]
	return ok && digest == xxhash.Sum64String(content)
}

// Record stores the digest of content for path.
func (c *DigestCache) Record(path, content string) {
	sum := xxhash.Sum64String(content)
	c.mu.Lock()
	c.digests[unique.Make(path)] = sum
	c.mu.Unlock()
}

// Forget drops the digest for path.
func (c *DigestCache) Forget(path string) {
	c.mu.Lock()
	delete(c.digests, unique.Make(path))
	c.mu.Unlock()
}

// Len returns the number of recorded paths.
func (c *DigestCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.digests)
}
