package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Bump when CachePayload changes shape.
const cacheSchemaVersion uint16 = 1

// Digest is a SHA-256 content hash, the cache key.
type Digest [sha256.Size]byte

// DigestOf hashes raw file content into a cache key.
func DigestOf(content []byte) Digest {
	return sha256.Sum256(content)
}

// ExpandCache stores rendered expansion results on disk keyed by content
// hash. Thread-safe for concurrent access.
type ExpandCache struct {
	mu  sync.RWMutex
	dir string
}

// CachePayload is one cached expansion. Diagnostics are never cached;
// only clean results are worth replaying.
type CachePayload struct {
	Schema uint16
	Path   string
	Output string
}

// OpenExpandCache initializes a disk cache under $XDG_CACHE_HOME/<app>
// (or ~/.cache/<app>).
func OpenExpandCache(app string) (*ExpandCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ExpandCache{dir: dir}, nil
}

func (c *ExpandCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// subdirectory keeps the cache root readable and easy to clear
	return filepath.Join(c.dir, "expand", hexKey+".mp")
}

// Put serializes a payload and atomically replaces the cache entry.
func (c *ExpandCache) Put(key Digest, payload *CachePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload.Schema = cacheSchemaVersion

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload for the key. A missing entry or a schema mismatch
// is a miss, not an error.
func (c *ExpandCache) Get(key Digest, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *ExpandCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
