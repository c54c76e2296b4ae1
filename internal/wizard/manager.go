package wizard

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"backoffice/internal/domain"
)

// Manager tracks live wizard sessions for the HTTP surface. Each
// session still owns its aggregate exclusively; the manager only maps
// ids to sessions.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: map[string]*Session{}}
}

// Add registers a session and returns its id.
func (m *Manager) Add(s *Session) string {
	id := strconv.FormatInt(time.Now().UnixNano(), 36) + "-" + strconv.Itoa(rand.Intn(1000000))
	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()
	return id
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return nil, domain.NotFoundError{Resource: "wizard session"}
	}
	return s, nil
}

// Remove drops a session; the aggregate is discarded with it, which is
// all that cancelling a wizard means.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
