// Package timeutil provides a clock abstraction for testability.
package timeutil

import "time"

// Clock provides an abstraction over time.Now() for testability.
// Use RealClock in production and MockClock in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock uses the actual system time.
type RealClock struct{}

// NewRealClock creates a new RealClock instance.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock returns a controllable time for testing.
type MockClock struct {
	fixedTime time.Time
}

// NewMockClock creates a mock clock with the given fixed time.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{fixedTime: t}
}

// Now returns the fixed time.
func (m *MockClock) Now() time.Time {
	return m.fixedTime
}

// Set sets the mock clock to a specific time.
func (m *MockClock) Set(t time.Time) {
	m.fixedTime = t
}

// Advance moves the mock clock forward by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.fixedTime = m.fixedTime.Add(d)
}

// Ensure interfaces are implemented.
var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
