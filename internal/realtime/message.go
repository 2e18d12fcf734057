package realtime

import "strconv"

// Message is the envelope written to clients.
type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Conn is a live client connection the registry and router can address.
// Implementations must make Send safe to call from any goroutine and
// never block the caller.
type Conn interface {
	ID() string
	Send(msg Message)
}

func PostTopic(postID int) string {
	return "post:" + strconv.Itoa(postID)
}

func RestaurantTopic(restaurantID int) string {
	return "restaurant:" + strconv.Itoa(restaurantID)
}
