package realtime

import "sync"

// subscriptionSet tracks which topics the current connection subscribed to.
// Subscriptions are re-sent on every successful connect; the previous
// connection's subscriptions died with its socket.
type subscriptionSet struct {
	mu     sync.Mutex
	topics map[string]bool
}

func newSubscriptionSet() *subscriptionSet {
	return &subscriptionSet{topics: make(map[string]bool)}
}

func (s *subscriptionSet) add(topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics[topic] = true
}

func (s *subscriptionSet) active(topic string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topics[topic]
}

func (s *subscriptionSet) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics = make(map[string]bool)
}
