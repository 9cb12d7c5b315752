package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"time"
)

// Cache defines the interface for memoizing per-article analysis
// results within a process.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ArticleKey derives a stable key from the inputs that drive
// classification and appraisal. Identical articles map to the same key
// regardless of batch position.
func ArticleKey(title, abstract string, tags []string) string {
	h := sha256.New()
	io.WriteString(h, title)
	h.Write([]byte{0})
	io.WriteString(h, abstract)
	for _, tag := range tags {
		h.Write([]byte{0})
		io.WriteString(h, tag)
	}
	return "evidentia:v1:" + hex.EncodeToString(h.Sum(nil))
}
