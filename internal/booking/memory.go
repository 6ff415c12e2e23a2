package booking

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// MemoryStore keeps bookings in a process-local map. Data is lost on
// restart, which is acceptable at current scope.
type MemoryStore struct {
	mu       sync.RWMutex
	bookings map[string]Booking
	entropy  *ulid.MonotonicEntropy
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bookings: make(map[string]Booking),
		entropy:  ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// newID returns a time-ordered unique ID. Callers must hold mu: the
// monotonic entropy source is not safe for concurrent use.
func (m *MemoryStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), m.entropy).String()
}

func (m *MemoryStore) List() []Booking {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		out = append(out, b.clone())
	}

	// ULIDs sort lexicographically by creation time.
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID() < out[j].ID()
	})

	return out
}

func (m *MemoryStore) Create(fields map[string]any) Booking {
	m.mu.Lock()
	defer m.mu.Unlock()

	b := make(Booking, len(fields)+1)
	for k, v := range fields {
		b[k] = v
	}
	b["id"] = m.newID()

	m.bookings[b.ID()] = b
	return b.clone()
}

func (m *MemoryStore) Update(id string, fields map[string]any) (Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}

	// Shallow merge; the assigned ID always wins.
	for k, v := range fields {
		b[k] = v
	}
	b["id"] = id

	return b.clone(), nil
}

func (m *MemoryStore) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.bookings, id)
}

func (b Booking) clone() Booking {
	c := make(Booking, len(b))
	for k, v := range b {
		c[k] = v
	}
	return c
}
