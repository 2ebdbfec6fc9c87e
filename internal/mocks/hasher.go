package mocks

import (
	"io"

	"github.com/brettbedarf/dedupe"
	"github.com/stretchr/testify/mock"
)

// MockHasher implements dedupe.Hasher for testing across packages
type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockHasher) Digest(r io.Reader) (dedupe.Fingerprint, error) {
	args := m.Called(r)

	// Handle function return types (for content dependent tests)
	if fn, ok := args.Get(0).(func(io.Reader) dedupe.Fingerprint); ok {
		return fn(r), args.Error(1)
	}

	if args.Get(0) == nil {
		return "", args.Error(1)
	}
	return args.Get(0).(dedupe.Fingerprint), args.Error(1)
}

var _ dedupe.Hasher = (*MockHasher)(nil)
