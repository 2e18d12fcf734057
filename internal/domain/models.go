package domain

import "time"

type Post struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	RestaurantID   int       `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	Cuisine        string    `json:"cuisine"`
	Content        string    `json:"content"`
	Images         []string  `json:"images"`
	Rating         int       `json:"rating,omitempty"`
	LikeCount      int       `json:"like_count"`
	CommentCount   int       `json:"comment_count"`
	LikedByMe      bool      `json:"liked_by_me"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Comment struct {
	ID        int       `json:"id"`
	PostID    int       `json:"post_id"`
	UserID    int       `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Order struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	RestaurantID int       `json:"restaurant_id"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FeedFilters carries every query parameter that shapes a feed page.
// All fields participate in the cache key, so zero values must mean
// "filter not applied".
type FeedFilters struct {
	Search       string `json:"search"`
	Cuisine      string `json:"cuisine"`
	City         string `json:"city"`
	State        string `json:"state"`
	MinRating    int    `json:"min_rating"`
	MinLikes     int    `json:"min_likes"`
	TimeFilter   string `json:"time_filter"` // today|week|month|all
	SortBy       string `json:"sort_by"`     // createdAt|likes|comments|rating
	SortOrder    string `json:"sort_order"`  // asc|desc
	Personalized bool   `json:"personalized"`
}

type FeedMeta struct {
	CurrentPage     int  `json:"currentPage"`
	ItemsPerPage    int  `json:"itemsPerPage"`
	TotalItems      int  `json:"totalItems"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

type FeedPage struct {
	Data []Post   `json:"data"`
	Meta FeedMeta `json:"meta"`
}

// InteractionProfile is derived per request from recent engagement
// history and never persisted.
type InteractionProfile struct {
	FavoriteCuisines      []string
	InteractedRestaurants []int
	FollowedUsers         []int
	RecentlyLikedPosts    []int
}

// PostEngagement is a single like or comment projected down to the
// fields the profile builder weighs.
type PostEngagement struct {
	PostID       int
	RestaurantID int
	Cuisine      string
}

type Notification struct {
	ID        int            `json:"id"`
	UserID    int            `json:"user_id"`
	Type      string         `json:"type"` // like|comment|order-status|new-post|follow
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Payload   map[string]any `json:"payload,omitempty"`
	Read      bool           `json:"read"`
	CreatedAt time.Time      `json:"created_at"`
	ReadAt    *time.Time     `json:"read_at,omitempty"`
}

type EventType string

const (
	EventPostLiked          EventType = "post_liked"
	EventPostCommented      EventType = "post_commented"
	EventOrderCreated       EventType = "order_created"
	EventOrderStatusChanged EventType = "order_status_changed"
)

// EngagementEvent is the message dispatched to the notification layer
// and published to Kafka for count aggregation.
type EngagementEvent struct {
	Type         EventType `json:"type"`
	ActorID      int       `json:"actor_id"`
	PostID       int       `json:"post_id,omitempty"`
	PostAuthorID int       `json:"post_author_id,omitempty"`
	RestaurantID int       `json:"restaurant_id,omitempty"`
	OrderID      int       `json:"order_id,omitempty"`
	OrderOwnerID int       `json:"order_owner_id,omitempty"`
	Status       string    `json:"status,omitempty"`
	CommentID    int       `json:"comment_id,omitempty"`
	CommentText  string    `json:"comment_text,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
