package render

import (
	"encoding/binary"
	"hash/fnv"
	"maps"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/drake/insectboard/board"
)

// DefaultCacheSize is the number of frames a Cache keeps by default.
const DefaultCacheSize = 64

type cacheKey struct {
	fingerprint uint64
	size        board.Size
	plain       bool
}

// cachedFrame keeps the snapshot a frame was drawn from, so a fingerprint
// collision is detected instead of serving another board.
type cachedFrame struct {
	snap  board.Snapshot
	frame string
}

// Cache memoizes rendered frames by snapshot content.
// It is safe for concurrent use.
type Cache struct {
	renderer    *Renderer
	frames      *lru.Cache[cacheKey, cachedFrame]
	fingerprint func(board.Snapshot) uint64
}

// NewCache wraps r with an LRU of the given capacity.
func NewCache(r *Renderer, capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	frames, _ := lru.New[cacheKey, cachedFrame](capacity)
	return &Cache{renderer: r, frames: frames, fingerprint: Fingerprint}
}

// String returns the rendered grid, reusing a previous frame for identical content.
func (c *Cache) String(snap board.Snapshot, size board.Size) (string, error) {
	key := cacheKey{
		fingerprint: c.fingerprint(snap),
		size:        size,
		plain:       c.renderer.opts.Plain,
	}
	if cached, ok := c.frames.Get(key); ok && maps.Equal(cached.snap, snap) {
		return cached.frame, nil
	}

	frame, err := c.renderer.String(snap, size)
	if err != nil {
		return "", err
	}
	c.frames.Add(key, cachedFrame{snap: maps.Clone(snap), frame: frame})
	return frame, nil
}

// Len returns the number of cached frames.
func (c *Cache) Len() int {
	return c.frames.Len()
}

// Fingerprint hashes the content of a snapshot independent of map order.
func Fingerprint(snap board.Snapshot) uint64 {
	coords := make([]board.Coord, 0, len(snap))
	for c := range snap {
		coords = append(coords, c)
	}
	slices.SortFunc(coords, func(a, b board.Coord) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})

	h := fnv.New64a()
	var buf [8]byte
	put := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	for _, c := range coords {
		e := snap[c]
		put(c.X)
		put(c.Y)
		put(int(e.Type))
		put(e.Value)
		put(int(e.Insect.Color))
		put(int(e.Insect.Kind))
	}
	return h.Sum64()
}
