package payments

import (
	"context"
	"sync"
)

// Mock records every session request. Err, if set, is returned instead of
// a session.
type Mock struct {
	mu       sync.Mutex
	Requests []SessionRequest
	Session  Session
	Err      error
}

func (m *Mock) Name() string { return "mock" }

func (m *Mock) CreateCheckoutSession(ctx context.Context, req SessionRequest) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return Session{}, m.Err
	}
	return m.Session, nil
}

// Calls reports how many session requests were issued.
func (m *Mock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}
