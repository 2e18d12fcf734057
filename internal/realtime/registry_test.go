package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeConn records every message it was handed.
type fakeConn struct {
	id       string
	messages []Message
}

func (c *fakeConn) ID() string       { return c.id }
func (c *fakeConn) Send(msg Message) { c.messages = append(c.messages, msg) }

func (c *fakeConn) events() []string {
	var events []string
	for _, m := range c.messages {
		events = append(events, m.Event)
	}
	return events
}

func TestRegistry_SendToFansOutToAllBindings(t *testing.T) {
	registry := NewRegistry()
	c1 := &fakeConn{id: "c1"}
	c2 := &fakeConn{id: "c2"}

	registry.Bind(9, c1)
	registry.Bind(9, c2)

	registry.SendTo(9, "new-like", map[string]any{"postId": 5})

	assert.Equal(t, []string{"new-like"}, c1.events())
	assert.Equal(t, []string{"new-like"}, c2.events())
}

func TestRegistry_UnbindDropsOnlyThatConnection(t *testing.T) {
	registry := NewRegistry()
	c1 := &fakeConn{id: "c1"}
	c2 := &fakeConn{id: "c2"}

	registry.Bind(9, c1)
	registry.Bind(9, c2)
	registry.Unbind(9, "c1")

	registry.SendTo(9, "new-like", nil)

	assert.Empty(t, c1.messages)
	assert.Len(t, c2.messages, 1)
}

func TestRegistry_LastUnbindRemovesUser(t *testing.T) {
	registry := NewRegistry()
	c1 := &fakeConn{id: "c1"}

	registry.Bind(9, c1)
	registry.Unbind(9, "c1")

	assert.Zero(t, registry.ConnectionCount(9))
	// Sending to an unbound user is a no-op, never an error.
	registry.SendTo(9, "new-like", nil)
	assert.Empty(t, c1.messages)
}

func TestRegistry_SendToUnknownUserIsNoop(t *testing.T) {
	registry := NewRegistry()
	registry.SendTo(404, "new-like", nil)
}
