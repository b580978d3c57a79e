package generic

import (
	"context"
	"sync"
)

// MockComputer is a mock implementation of Computer for testing.
// It's generic and thread-safe.
type MockComputer[K comparable, V any] struct {
	mu sync.Mutex

	ComputeFunc func(ctx context.Context, key K) (V, error)

	ComputeCalls []K
}

// NewMockComputer creates a mock that returns the zero value.
func NewMockComputer[K comparable, V any]() *MockComputer[K, V] {
	return &MockComputer[K, V]{
		ComputeFunc: func(ctx context.Context, key K) (V, error) {
			var zero V
			return zero, nil
		},
	}
}

// Compute implements Computer.Compute
func (m *MockComputer[K, V]) Compute(ctx context.Context, key K) (V, error) {
	m.mu.Lock()
	m.ComputeCalls = append(m.ComputeCalls, key)
	fn := m.ComputeFunc
	m.mu.Unlock()

	return fn(ctx, key)
}

// GetComputeCallCount returns the number of times Compute was called
func (m *MockComputer[K, V]) GetComputeCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ComputeCalls)
}

// Reset clears all call tracking
func (m *MockComputer[K, V]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ComputeCalls = nil
}
