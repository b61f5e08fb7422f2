package domain

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ID identifies a note or a group. Values are millisecond timestamps,
// bumped forward when two are issued in the same millisecond.
type ID int64

// NoGroup is the zero ID, used as the group of an ungrouped note
const NoGroup ID = 0

// String returns the decimal form of the ID
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseID parses a decimal ID string
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q: %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid ID %q: must be positive", s)
	}
	return ID(n), nil
}

// IDGenerator issues unique, increasing IDs seeded from the wall clock
type IDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewIDGenerator creates a generator reading time from now.
// A nil now uses time.Now.
func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

// Next returns max(current millisecond, last issued + 1)
func (g *IDGenerator) Next() ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return ID(ms)
}

// Observe advances the generator past an ID that already exists
func (g *IDGenerator) Observe(id ID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if int64(id) > g.last {
		g.last = int64(id)
	}
}
