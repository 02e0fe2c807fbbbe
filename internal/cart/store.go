package cart

import (
	"sync"

	"github.com/florawhisper/storefront-gateway/pkg/flora"
	"github.com/florawhisper/storefront-gateway/pkg/types"
)

// Line is a single cart entry: one plant and how many of it.
type Line struct {
	Plant    flora.Plant `json:"plant"`
	Quantity int         `json:"quantity"`
}

// Summary is a point-in-time snapshot handed to observers after every
// mutation.
type Summary struct {
	TotalItems int
	TotalCost  types.Money
	LineCount  int
}

// Observer receives a summary after each cart mutation. Callbacks run
// synchronously on the mutating goroutine and must not call back into
// the store.
type Observer func(Summary)

// Store holds a single shopper's cart. Lines keep insertion order, at
// most one line per plant id.
type Store struct {
	mu        sync.Mutex
	lines     []Line
	observers []Observer
}

func NewStore() *Store {
	return &Store{}
}

// Subscribe registers an observer for subsequent mutations.
func (s *Store) Subscribe(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Add puts qty units of the plant in the cart. Quantities below one are
// treated as one. Adding a plant already in the cart increments its
// existing line rather than appending a second one.
func (s *Store) Add(plant flora.Plant, qty int) {
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	found := false
	for i := range s.lines {
		if s.lines[i].Plant.ID == plant.ID {
			s.lines[i].Quantity += qty
			found = true
			break
		}
	}
	if !found {
		s.lines = append(s.lines, Line{Plant: plant, Quantity: qty})
	}
	s.notifyLocked()
}

// Remove drops the plant's line entirely. Removing a plant that is not
// in the cart is a no-op.
func (s *Store) Remove(plantID int64) {
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].Plant.ID == plantID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	s.notifyLocked()
}

// SetQuantity replaces the plant's quantity. Zero or negative removes
// the line. Setting a quantity for a plant not in the cart is a no-op.
func (s *Store) SetQuantity(plantID int64, qty int) {
	if qty <= 0 {
		s.Remove(plantID)
		return
	}

	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].Plant.ID == plantID {
			s.lines[i].Quantity = qty
			break
		}
	}
	s.notifyLocked()
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.notifyLocked()
}

// Lines returns a copy of the cart lines in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalCost sums effective price times quantity across all lines. The
// effective price is the plant's sale price when one is set, otherwise
// its base price.
func (s *Store) TotalCost() types.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalCostLocked(s.lines)
}

// TotalItems sums quantities across all lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalItemsLocked(s.lines)
}

// PlantQuantities builds the plant id to quantity map sent at checkout.
// The map is built fresh on every call.
func (s *Store) PlantQuantities() map[int64]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int64]int, len(s.lines))
	for _, l := range s.lines {
		out[l.Plant.ID] = l.Quantity
	}
	return out
}

// notifyLocked snapshots a summary, releases the lock, and fans out to
// observers. Callers must hold s.mu and must not touch state afterwards.
func (s *Store) notifyLocked() {
	summary := Summary{
		TotalItems: totalItemsLocked(s.lines),
		TotalCost:  totalCostLocked(s.lines),
		LineCount:  len(s.lines),
	}
	observers := s.observers
	s.mu.Unlock()

	for _, fn := range observers {
		fn(summary)
	}
}

func totalCostLocked(lines []Line) types.Money {
	total := types.Money{}
	for _, l := range lines {
		total = total.Add(l.Plant.EffectivePrice().Times(l.Quantity))
	}
	return total
}

func totalItemsLocked(lines []Line) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}
