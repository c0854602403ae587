package speech

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Cache keeps synthesized WAV audio in memory and, when dir is set, on
// disk so words survive restarts.
type Cache struct {
	dir string
	mu  sync.RWMutex
	mem map[string][]byte
}

// NewCache returns a cache rooted at dir. An empty dir keeps audio in
// memory only.
func NewCache(dir string) (*Cache, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create audio cache dir: %w", err)
		}
	}
	return &Cache{dir: dir, mem: map[string][]byte{}}, nil
}

// DefaultCacheDir is $XDG_CACHE_HOME/wordgarden/audio.
func DefaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "wordgarden", "audio"), nil
}

// CacheKey identifies audio by style, language and text. Guided and mascot
// readings of a word are cached apart from the plain reading.
func CacheKey(u Utterance) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%s:%s", u.Style, u.Lang, u.Mascot, u.Text)))
	return hex.EncodeToString(h[:16])
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".wav")
}

// Get returns cached audio, reading through to disk on a memory miss.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	data, ok := c.mem[key]
	c.mu.RUnlock()
	if ok {
		return data, true
	}
	if c.dir == "" {
		return nil, false
	}
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}
	c.mu.Lock()
	c.mem[key] = data
	c.mu.Unlock()
	return data, true
}

// Put stores audio. A disk write failure keeps the memory copy.
func (c *Cache) Put(key string, data []byte) error {
	c.mu.Lock()
	c.mem[key] = data
	c.mu.Unlock()
	if c.dir == "" {
		return nil
	}
	if err := os.WriteFile(c.path(key), data, 0o644); err != nil {
		return fmt.Errorf("write audio cache: %w", err)
	}
	return nil
}

// Len is the number of entries held in memory.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.mem)
}
