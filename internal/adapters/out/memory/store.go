// Package memory keeps orders, users and foods in process memory. It backs
// the service when no database is configured and serves as a fast stand-in
// for the GORM adapter in tests.
//
// Aggregates are copied on the way in and on the way out, so callers never
// share state with the store. Writes made inside a unit of work are staged
// and become visible to other units of work only on Commit. Concurrent
// commits are applied in order; the last one wins.
package memory

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/user"
)

// Store is the shared state behind every UnitOfWork created from the same factory.
type Store struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
	users  map[string]*user.User
	foods  map[string]*food.Food
}

func NewStore() *Store {
	return &Store{
		orders: make(map[string]*order.Order),
		users:  make(map[string]*user.User),
		foods:  make(map[string]*food.Food),
	}
}

// changeSet holds the writes of one transaction. A nil value marks a deletion.
type changeSet struct {
	orders map[string]*order.Order
	users  map[string]*user.User
	foods  map[string]*food.Food
}

func newChangeSet() *changeSet {
	return &changeSet{
		orders: make(map[string]*order.Order),
		users:  make(map[string]*user.User),
		foods:  make(map[string]*food.Food),
	}
}

func (s *Store) apply(c *changeSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applyTo(s.orders, c.orders)
	applyTo(s.users, c.users)
	applyTo(s.foods, c.foods)
}

func applyTo[T any](dst, changes map[string]*T) {
	for key, v := range changes {
		if v == nil {
			delete(dst, key)
			continue
		}
		dst[key] = v
	}
}

// lookup prefers the staged version of key. The second result is false when
// the row does not exist or was deleted in this transaction.
func lookup[T any](committed, staged map[string]*T, key string) (*T, bool) {
	if v, ok := staged[key]; ok {
		return v, v != nil
	}
	v, ok := committed[key]
	return v, ok
}

// merged returns the committed rows overlaid with the staged ones.
func merged[T any](committed, staged map[string]*T) []*T {
	out := make([]*T, 0, len(committed)+len(staged))
	for key, v := range committed {
		if _, overridden := staged[key]; overridden {
			continue
		}
		out = append(out, v)
	}
	for _, v := range staged {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}

// byCreation sorts oldest first, ties broken by id, so listings are stable.
func byCreation[T any](rows []T, createdAt func(T) time.Time, id func(T) string) {
	slices.SortFunc(rows, func(a, b T) int {
		if c := createdAt(a).Compare(createdAt(b)); c != 0 {
			return c
		}
		return cmp.Compare(id(a), id(b))
	})
}
