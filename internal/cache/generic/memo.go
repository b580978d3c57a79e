// Package generic provides an invalidation-driven memo cache.
package generic

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/keymapper-dev/keymapper/internal/application/port"
	"golang.org/x/sync/singleflight"
)

// Computer produces the value for a key on a cache miss.
// This interface allows for easy mocking in tests.
type Computer[K comparable, V any] interface {
	Compute(ctx context.Context, key K) (V, error)
}

// ComputeFunc adapts a function to Computer.
type ComputeFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

func (f ComputeFunc[K, V]) Compute(ctx context.Context, key K) (V, error) {
	return f(ctx, key)
}

// Memo caches computed values in a store until the next invalidation.
// All operations are thread-safe as long as the store is.
//
// Concurrent misses for the same key share one computation. A value computed
// while an invalidation happened is returned to its callers but not stored.
type Memo[K comparable, V any] struct {
	values     port.Cache[K, V]
	computer   Computer[K, V]
	group      singleflight.Group
	generation atomic.Uint64
}

// NewMemo creates a memo backed by computer that keeps values in store.
func NewMemo[K comparable, V any](computer Computer[K, V], store port.Cache[K, V]) *Memo[K, V] {
	return &Memo[K, V]{computer: computer, values: store}
}

// Get returns the cached value for key, computing it on a miss.
// Errors are not cached.
func (m *Memo[K, V]) Get(ctx context.Context, key K) (V, error) {
	return m.GetWith(ctx, key, m.computer)
}

// GetWith is Get with a computer for this call only, for keys that are
// fingerprints of inputs the memo's own computer cannot rebuild.
func (m *Memo[K, V]) GetWith(ctx context.Context, key K, computer Computer[K, V]) (V, error) {
	if val, ok := m.values.Get(key); ok {
		return val, nil
	}

	gen := m.generation.Load()
	flightKey := fmt.Sprintf("%d/%v", gen, key)

	val, err, _ := m.group.Do(flightKey, func() (interface{}, error) {
		v, err := computer.Compute(ctx, key)
		if err != nil {
			return nil, err
		}
		if m.generation.Load() == gen {
			m.values.Set(key, v)
		}
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return val.(V), nil
}

// Peek returns the cached value without computing.
func (m *Memo[K, V]) Peek(key K) (V, bool) {
	return m.values.Get(key)
}

// Invalidate drops every cached value.
func (m *Memo[K, V]) Invalidate() {
	m.generation.Add(1)
	m.values.Clear()
}

// Forget drops the cached value for one key.
func (m *Memo[K, V]) Forget(key K) {
	m.values.Remove(key)
}

// Len returns the number of cached values.
func (m *Memo[K, V]) Len() int {
	return m.values.Len()
}

// InvalidateOn calls Invalidate for every signal until ctx is done or signals is closed.
// onInvalidate, if set, runs after each invalidation.
func (m *Memo[K, V]) InvalidateOn(ctx context.Context, signals <-chan struct{}, onInvalidate func()) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-signals:
				if !ok {
					return
				}
				m.Invalidate()
				if onInvalidate != nil {
					onInvalidate()
				}
			}
		}
	}()
}
