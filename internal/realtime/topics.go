package realtime

import "sync"

// TopicRouter tracks which connections joined which named broadcast
// groups. A connection may belong to any number of topics.
type TopicRouter struct {
	mu      sync.RWMutex
	members map[string]map[string]Conn
	joined  map[string]map[string]bool // connID -> topics, for disconnect cleanup
}

func NewTopicRouter() *TopicRouter {
	return &TopicRouter{
		members: make(map[string]map[string]Conn),
		joined:  make(map[string]map[string]bool),
	}
}

func (t *TopicRouter) Join(topic string, conn Conn) {
	t.mu.Lock()
	defer t.mu.Unlock()

	conns, ok := t.members[topic]
	if !ok {
		conns = make(map[string]Conn)
		t.members[topic] = conns
	}
	conns[conn.ID()] = conn

	topics, ok := t.joined[conn.ID()]
	if !ok {
		topics = make(map[string]bool)
		t.joined[conn.ID()] = topics
	}
	topics[topic] = true
}

func (t *TopicRouter) Leave(topic, connID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.leaveLocked(topic, connID)
}

func (t *TopicRouter) leaveLocked(topic, connID string) {
	if conns, ok := t.members[topic]; ok {
		delete(conns, connID)
		if len(conns) == 0 {
			delete(t.members, topic)
		}
	}
	if topics, ok := t.joined[connID]; ok {
		delete(topics, topic)
		if len(topics) == 0 {
			delete(t.joined, connID)
		}
	}
}

// DropConn removes the connection from every topic it joined, so a
// disconnect never leaves dangling membership behind.
func (t *TopicRouter) DropConn(connID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for topic := range t.joined[connID] {
		t.leaveLocked(topic, connID)
	}
}

func (t *TopicRouter) Broadcast(topic, event string, data any) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, conn := range t.members[topic] {
		conn.Send(Message{Event: event, Data: data})
	}
}

func (t *TopicRouter) MemberCount(topic string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.members[topic])
}

// Topics returns the topics a connection currently belongs to.
func (t *TopicRouter) Topics(connID string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var topics []string
	for topic := range t.joined[connID] {
		topics = append(topics, topic)
	}
	return topics
}
