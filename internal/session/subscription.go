package session

import (
	"sync"

	"trackr/backend/internal/hub"
)

const subscriptionBuffer = 8

// Subscription receives a user's session events until cancelled.
type Subscription struct {
	Events <-chan []byte

	once   sync.Once
	cancel func()
}

// Cancel releases the hub slot. Calling it more than once is a no-op.
func (s *Subscription) Cancel() {
	s.once.Do(s.cancel)
}

// Watch subscribes to session events for uid.
func (m *Manager) Watch(uid string) *Subscription {
	client := make(hub.Client, subscriptionBuffer)
	m.hub.Subscribe(uid, client)
	return &Subscription{
		Events: client,
		cancel: func() { m.hub.Unsubscribe(uid, client) },
	}
}
