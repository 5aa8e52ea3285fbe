package dashboard

import (
	"context"
	"sync"
)

// InMemorySessionStore keeps page sessions in memory only. Sessions start from
// the page defaults and are dropped on reset, so nothing outlives the process.
type InMemorySessionStore struct {
	mu   sync.RWMutex
	data map[SessionKey]PageSession
}

// NewInMemorySessionStore creates an empty session store.
func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		data: make(map[SessionKey]PageSession),
	}
}

// Session returns the stored session or the page defaults. Defaults are not
// stored until the first update.
func (s *InMemorySessionStore) Session(_ context.Context, key SessionKey, def PageDefinition) (PageSession, error) {
	if key.Viewer == "" {
		return defaultSession(def), nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if session, ok := s.data[key]; ok {
		return session.clone(), nil
	}
	return defaultSession(def), nil
}

// UpdateSession applies fn to the current session atomically and stores the result.
func (s *InMemorySessionStore) UpdateSession(_ context.Context, key SessionKey, def PageDefinition, fn func(PageSession) PageSession) (PageSession, error) {
	if key.Viewer == "" {
		return PageSession{}, ErrMissingViewer
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.data[key]
	if !ok {
		current = defaultSession(def)
	}
	next := fn(current.clone())
	s.normalize(&next, def)
	s.data[key] = next
	return next.clone(), nil
}

// ResetSession drops the stored session so the next read yields defaults.
func (s *InMemorySessionStore) ResetSession(_ context.Context, key SessionKey) error {
	if key.Viewer == "" {
		return ErrMissingViewer
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *InMemorySessionStore) normalize(session *PageSession, def PageDefinition) {
	if session.Filters == nil {
		session.Filters = NewFilterSelection(def.DefaultFilters)
	}
	if session.Order == nil {
		session.Order = NewWidgetOrder(def.DefaultOrder)
	}
}

func defaultSession(def PageDefinition) PageSession {
	return PageSession{
		Filters: NewFilterSelection(def.DefaultFilters),
		Order:   NewWidgetOrder(def.DefaultOrder),
	}
}

func (p PageSession) clone() PageSession {
	return PageSession{
		Filters: NewFilterSelection(p.Filters),
		Order:   NewWidgetOrder(p.Order),
	}
}
