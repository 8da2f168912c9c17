package mem

import (
	"sync"

	"github.com/google/uuid"
)

// RankingEntry is the denormalized poll row the web layer serves without
// touching the game state.
type RankingEntry struct {
	Rank     int       `json:"rank"`
	TeamID   uuid.UUID `json:"teamId"`
	Name     string    `json:"name"`
	Class    string    `json:"class"`
	Wins     int       `json:"wins"`
	Losses   int       `json:"losses"`
	Rating   int       `json:"rating"`
	Movement int       `json:"movement"`
}

type Cache struct {
	mu      sync.RWMutex
	valid   bool
	entries []RankingEntry
}

func New() *Cache {
	return &Cache{}
}

func (c *Cache) Update(entries []RankingEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make([]RankingEntry, len(entries))
	copy(c.entries, entries)
	c.valid = true
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
	c.valid = false
}

// Get returns the cached poll. ok is false until the first Update after an
// invalidation.
func (c *Cache) Get() ([]RankingEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid {
		return nil, false
	}
	out := make([]RankingEntry, len(c.entries))
	copy(out, c.entries)
	return out, true
}
