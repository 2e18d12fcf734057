package service

import (
	"context"

	"github.com/jeremiasmarinho/foodconnect-sub000/internal/domain"
)

type FeedServiceInterface interface {
	GetFeed(ctx context.Context, filters domain.FeedFilters, page, pageSize, userID int) (*domain.FeedPage, error)
}

type ProfileBuilderInterface interface {
	BuildProfile(ctx context.Context, userID int) (*domain.InteractionProfile, error)
}

type EngagementServiceInterface interface {
	ToggleLike(ctx context.Context, userID, postID int) (bool, error)
	AddComment(ctx context.Context, userID, postID int, content string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID int) error
	CreateOrder(ctx context.Context, userID, restaurantID int, total float64) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int, status string) (*domain.Order, error)
}

type NotificationServiceInterface interface {
	Dispatch(ctx context.Context, ev domain.EngagementEvent)
	List(ctx context.Context, userID int, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID int) error
}

// PostRepository covers the feed read path.
type PostRepository interface {
	QueryPosts(ctx context.Context, f domain.FeedFilters, limit, offset int) ([]domain.Post, error)
	CountPosts(ctx context.Context, f domain.FeedFilters) (int, error)
	GetPost(ctx context.Context, id int) (*domain.Post, error)
	LikedPostIDs(ctx context.Context, userID int, postIDs []int) (map[int]bool, error)
}

// EngagementRepository covers the write triggers.
type EngagementRepository interface {
	GetPost(ctx context.Context, id int) (*domain.Post, error)
	LikeExists(ctx context.Context, userID, postID int) (bool, error)
	InsertLike(ctx context.Context, userID, postID int) error
	DeleteLike(ctx context.Context, userID, postID int) error
	InsertComment(ctx context.Context, c *domain.Comment) error
	GetComment(ctx context.Context, id int) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id int) error
	InsertOrder(ctx context.Context, o *domain.Order) error
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status string) error
}

// ProfileRepository feeds the interaction profile builder.
type ProfileRepository interface {
	RecentLikes(ctx context.Context, userID, limit int) ([]domain.PostEngagement, error)
	RecentComments(ctx context.Context, userID, limit int) ([]domain.PostEngagement, error)
	RecentFollows(ctx context.Context, userID, limit int) ([]int, error)
}

type NotificationRepository interface {
	InsertNotification(ctx context.Context, n *domain.Notification) error
	ListNotifications(ctx context.Context, userID int, unreadOnly bool) ([]domain.Notification, error)
	GetNotification(ctx context.Context, id int) (*domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id int) error
}

// PostCounter refreshes denormalized like/comment counts.
type PostCounter interface {
	RefreshPostCounts(ctx context.Context, postID int) error
}

type FeedCache interface {
	Key(f domain.FeedFilters, page, pageSize, userID int) string
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	InvalidateFeed(ctx context.Context) error
}

// RealtimeEmitter addresses every live connection of a single user.
type RealtimeEmitter interface {
	SendTo(userID int, event string, data any)
}

// TopicBroadcaster addresses every member of a named topic group.
type TopicBroadcaster interface {
	Broadcast(topic, event string, data any)
}

type EventPublisher interface {
	PublishEngagement(ctx context.Context, ev domain.EngagementEvent) error
}

var (
	_ FeedServiceInterface         = (*FeedService)(nil)
	_ ProfileBuilderInterface      = (*ProfileBuilder)(nil)
	_ EngagementServiceInterface   = (*EngagementService)(nil)
	_ NotificationServiceInterface = (*NotificationService)(nil)
)
