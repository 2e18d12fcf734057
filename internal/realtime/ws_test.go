package realtime

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialGateway(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	return ws
}

func readEvent(t *testing.T, ws *websocket.Conn) Message {
	t.Helper()
	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	require.NoError(t, ws.ReadJSON(&msg))
	return msg
}

func TestGateway_AuthenticateBindsUser(t *testing.T) {
	registry := NewRegistry()
	router := NewTopicRouter()
	server := httptest.NewServer(NewGateway(registry, router))
	defer server.Close()

	ws := dialGateway(t, server)
	require.NoError(t, ws.WriteJSON(map[string]any{"type": "authenticate", "userId": 9}))

	msg := readEvent(t, ws)
	assert.Equal(t, "authenticated", msg.Event)
	assert.Equal(t, 1, registry.ConnectionCount(9))

	registry.SendTo(9, "new-like", map[string]any{"postId": 5})
	msg = readEvent(t, ws)
	assert.Equal(t, "new-like", msg.Event)
}

func TestGateway_JoinPostReceivesBroadcast(t *testing.T) {
	registry := NewRegistry()
	router := NewTopicRouter()
	server := httptest.NewServer(NewGateway(registry, router))
	defer server.Close()

	ws := dialGateway(t, server)
	require.NoError(t, ws.WriteJSON(map[string]any{"type": "authenticate", "userId": 9}))
	readEvent(t, ws) // authenticated

	require.NoError(t, ws.WriteJSON(map[string]any{"type": "join-post", "postId": 5}))

	// The join is handled by the read pump; wait for membership before
	// broadcasting.
	require.Eventually(t, func() bool {
		return router.MemberCount(PostTopic(5)) == 1
	}, 2*time.Second, 10*time.Millisecond)

	router.Broadcast(PostTopic(5), "post-liked", map[string]any{"postId": 5})
	msg := readEvent(t, ws)
	assert.Equal(t, "post-liked", msg.Event)
}

func TestGateway_DisconnectCleansUp(t *testing.T) {
	registry := NewRegistry()
	router := NewTopicRouter()
	server := httptest.NewServer(NewGateway(registry, router))
	defer server.Close()

	ws := dialGateway(t, server)
	require.NoError(t, ws.WriteJSON(map[string]any{"type": "authenticate", "userId": 9}))
	readEvent(t, ws)
	require.NoError(t, ws.WriteJSON(map[string]any{"type": "join-post", "postId": 5}))
	require.Eventually(t, func() bool {
		return router.MemberCount(PostTopic(5)) == 1
	}, 2*time.Second, 10*time.Millisecond)

	ws.Close()

	require.Eventually(t, func() bool {
		return registry.ConnectionCount(9) == 0 && router.MemberCount(PostTopic(5)) == 0
	}, 2*time.Second, 10*time.Millisecond)
}
