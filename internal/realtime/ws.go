package realtime

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 45 * time.Second
	maxMessageSize = 1024
	sendBuffer     = 16
)

// Gateway upgrades HTTP requests to websocket connections and wires
// them into the registry and topic router.
type Gateway struct {
	Registry *Registry
	Router   *TopicRouter

	upgrader  websocket.Upgrader
	idCounter atomic.Int64
}

func NewGateway(registry *Registry, router *TopicRouter) *Gateway {
	return &Gateway{
		Registry: registry,
		Router:   router,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		id:      fmt.Sprintf("conn_%d", g.idCounter.Add(1)),
		gateway: g,
		ws:      ws,
		send:    make(chan Message, sendBuffer),
	}
	client.active.Store(true)

	go client.writePump()
	go client.readPump()
}

// Client is one live websocket connection. Outbound messages go
// through a buffered channel; a full buffer drops the message rather
// than block the sender.
type Client struct {
	id      string
	gateway *Gateway
	ws      *websocket.Conn
	send    chan Message

	mu     sync.Mutex
	userID int

	active atomic.Bool
}

func (c *Client) ID() string { return c.id }

func (c *Client) Send(msg Message) {
	select {
	case c.send <- msg:
	default:
		log.Printf("dropping message for %s: send buffer full", c.id)
	}
}

func (c *Client) user() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userID
}

type inboundMessage struct {
	Type         string `json:"type"`
	UserID       int    `json:"userId,omitempty"`
	RestaurantID int    `json:"restaurantId,omitempty"`
	PostID       int    `json:"postId,omitempty"`
}

func (c *Client) readPump() {
	defer c.close()

	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg inboundMessage
		if err := c.ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("read error for %s: %v", c.id, err)
			}
			return
		}
		c.handle(msg)
	}
}

func (c *Client) handle(msg inboundMessage) {
	switch msg.Type {
	case "authenticate":
		if msg.UserID <= 0 {
			return
		}
		c.mu.Lock()
		previous := c.userID
		c.userID = msg.UserID
		c.mu.Unlock()
		if previous != 0 && previous != msg.UserID {
			c.gateway.Registry.Unbind(previous, c.id)
		}
		c.gateway.Registry.Bind(msg.UserID, c)
		c.Send(Message{Event: "authenticated", Data: map[string]any{"userId": msg.UserID}})
	case "join-restaurant":
		if msg.RestaurantID > 0 {
			c.gateway.Router.Join(RestaurantTopic(msg.RestaurantID), c)
		}
	case "leave-restaurant":
		c.leaveByPrefix("restaurant:", msg.RestaurantID, RestaurantTopic)
	case "join-post":
		if msg.PostID > 0 {
			c.gateway.Router.Join(PostTopic(msg.PostID), c)
		}
	case "leave-post":
		c.leaveByPrefix("post:", msg.PostID, PostTopic)
	default:
		log.Printf("unknown message type %q from %s", msg.Type, c.id)
	}
}

// leaveByPrefix leaves the named topic when an id was given, otherwise
// every joined topic of that kind.
func (c *Client) leaveByPrefix(prefix string, id int, topicFor func(int) string) {
	if id > 0 {
		c.gateway.Router.Leave(topicFor(id), c.id)
		return
	}
	for _, topic := range c.gateway.Router.Topics(c.id) {
		if strings.HasPrefix(topic, prefix) {
			c.gateway.Router.Leave(topic, c.id)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteJSON(msg); err != nil {
				log.Printf("write error for %s: %v", c.id, err)
				c.close()
				return
			}
		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}
		}
	}
}

// close tears down the connection and removes it from the registry and
// from every topic it joined.
func (c *Client) close() {
	if !c.active.CompareAndSwap(true, false) {
		return
	}

	if userID := c.user(); userID != 0 {
		c.gateway.Registry.Unbind(userID, c.id)
	}
	c.gateway.Router.DropConn(c.id)
	c.ws.Close()
}
