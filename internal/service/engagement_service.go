package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jeremiasmarinho/foodconnect-sub000/internal/domain"

	"github.com/lib/pq"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrCommentTooLong  = errors.New("comment exceeds 500 characters")
	ErrEmptyComment    = errors.New("comment must not be empty")
	ErrInvalidStatus   = errors.New("invalid order status")
)

const maxCommentLength = 500

var orderStatuses = map[string]bool{
	"pending":   true,
	"confirmed": true,
	"preparing": true,
	"ready":     true,
	"delivered": true,
	"cancelled": true,
}

// EngagementService owns the write triggers: like toggles, comments
// and order lifecycle. Every successful write dispatches the matching
// event, publishes it to Kafka for count aggregation, and invalidates
// the feed cache. The Kafka and cache legs are best-effort.
type EngagementService struct {
	repository EngagementRepository
	notifier   NotificationServiceInterface
	publisher  EventPublisher
	cache      FeedCache
}

func NewEngagementService(repository EngagementRepository, notifier NotificationServiceInterface, publisher EventPublisher, cache FeedCache) *EngagementService {
	return &EngagementService{
		repository: repository,
		notifier:   notifier,
		publisher:  publisher,
		cache:      cache,
	}
}

// ToggleLike is idempotent per user+post: liking an already-liked post
// removes the like, and a concurrent duplicate insert counts as the
// post already being liked rather than an error.
func (s *EngagementService) ToggleLike(ctx context.Context, userID, postID int) (bool, error) {
	post, err := s.repository.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, ErrPostNotFound
		}
		return false, fmt.Errorf("load post: %w", err)
	}

	exists, err := s.repository.LikeExists(ctx, userID, postID)
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}

	liked := !exists
	if exists {
		if err := s.repository.DeleteLike(ctx, userID, postID); err != nil {
			return false, fmt.Errorf("remove like: %w", err)
		}
	} else if err := s.repository.InsertLike(ctx, userID, postID); err != nil {
		if !isUniqueViolation(err) {
			return false, fmt.Errorf("insert like: %w", err)
		}
		// Lost a race with another request from the same user; the
		// like exists, which is the state this call wanted.
	}

	ev := domain.EngagementEvent{
		Type:         domain.EventPostLiked,
		ActorID:      userID,
		PostID:       postID,
		PostAuthorID: post.UserID,
		RestaurantID: post.RestaurantID,
		Timestamp:    time.Now(),
	}
	if liked {
		s.notifier.Dispatch(ctx, ev)
	}
	s.publishAndInvalidate(ctx, ev)

	return liked, nil
}

func (s *EngagementService) AddComment(ctx context.Context, userID, postID int, content string) (*domain.Comment, error) {
	if content == "" {
		return nil, ErrEmptyComment
	}
	if len(content) > maxCommentLength {
		return nil, ErrCommentTooLong
	}

	post, err := s.repository.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("load post: %w", err)
	}

	comment := &domain.Comment{PostID: postID, UserID: userID, Content: content}
	if err := s.repository.InsertComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	ev := domain.EngagementEvent{
		Type:         domain.EventPostCommented,
		ActorID:      userID,
		PostID:       postID,
		PostAuthorID: post.UserID,
		RestaurantID: post.RestaurantID,
		CommentID:    comment.ID,
		CommentText:  content,
		Timestamp:    time.Now(),
	}
	s.notifier.Dispatch(ctx, ev)
	s.publishAndInvalidate(ctx, ev)

	return comment, nil
}

func (s *EngagementService) DeleteComment(ctx context.Context, userID, commentID int) error {
	comment, err := s.repository.GetComment(ctx, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("load comment: %w", err)
	}
	if comment.UserID != userID {
		return ErrForbidden
	}
	if err := s.repository.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	s.publishAndInvalidate(ctx, domain.EngagementEvent{
		Type:      domain.EventPostCommented,
		ActorID:   userID,
		PostID:    comment.PostID,
		Timestamp: time.Now(),
	})
	return nil
}

func (s *EngagementService) CreateOrder(ctx context.Context, userID, restaurantID int, total float64) (*domain.Order, error) {
	order := &domain.Order{
		UserID:       userID,
		RestaurantID: restaurantID,
		Status:       "pending",
		Total:        total,
	}
	if err := s.repository.InsertOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	s.notifier.Dispatch(ctx, domain.EngagementEvent{
		Type:         domain.EventOrderCreated,
		ActorID:      userID,
		RestaurantID: restaurantID,
		OrderID:      order.ID,
		OrderOwnerID: userID,
		Timestamp:    time.Now(),
	})
	return order, nil
}

func (s *EngagementService) UpdateOrderStatus(ctx context.Context, orderID int, status string) (*domain.Order, error) {
	if !orderStatuses[status] {
		return nil, ErrInvalidStatus
	}

	order, err := s.repository.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("load order: %w", err)
	}

	if err := s.repository.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	order.Status = status

	s.notifier.Dispatch(ctx, domain.EngagementEvent{
		Type:         domain.EventOrderStatusChanged,
		RestaurantID: order.RestaurantID,
		OrderID:      order.ID,
		OrderOwnerID: order.UserID,
		Status:       status,
		Timestamp:    time.Now(),
	})
	return order, nil
}

func (s *EngagementService) publishAndInvalidate(ctx context.Context, ev domain.EngagementEvent) {
	if s.publisher != nil {
		if err := s.publisher.PublishEngagement(ctx, ev); err != nil {
			log.Printf("Warning: failed to publish %s event: %v", ev.Type, err)
		}
	}
	if err := s.cache.InvalidateFeed(ctx); err != nil {
		log.Printf("Warning: feed cache invalidation failed: %v", err)
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
