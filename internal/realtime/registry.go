package realtime

import "sync"

// Registry maps an authenticated user to its live connections. A user
// may hold several bindings at once (multi-device).
type Registry struct {
	mu     sync.RWMutex
	byUser map[int]map[string]Conn
}

func NewRegistry() *Registry {
	return &Registry{byUser: make(map[int]map[string]Conn)}
}

func (r *Registry) Bind(userID int, conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conns, ok := r.byUser[userID]
	if !ok {
		conns = make(map[string]Conn)
		r.byUser[userID] = conns
	}
	conns[conn.ID()] = conn
}

// Unbind drops one connection; the user entry goes away with its last
// connection.
func (r *Registry) Unbind(userID int, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conns, ok := r.byUser[userID]
	if !ok {
		return
	}
	delete(conns, connID)
	if len(conns) == 0 {
		delete(r.byUser, userID)
	}
}

// SendTo fans out to every connection the user holds. A user with no
// bindings is a no-op, never an error.
func (r *Registry) SendTo(userID int, event string, data any) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, conn := range r.byUser[userID] {
		conn.Send(Message{Event: event, Data: data})
	}
}

func (r *Registry) ConnectionCount(userID int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser[userID])
}
