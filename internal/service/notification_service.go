package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/jeremiasmarinho/foodconnect-sub000/internal/domain"
	"github.com/jeremiasmarinho/foodconnect-sub000/internal/realtime"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrForbidden            = errors.New("resource belongs to another user")
)

// persistTimeout bounds the detached durable write so a hung
// persistence call cannot pile up goroutines.
const persistTimeout = 5 * time.Second

// NotificationService resolves a domain event to its recipients, emits
// the realtime messages, and persists a durable record. The durable
// write is fire-and-forget: it runs detached, and a failure is logged,
// never retried, and never surfaced to the caller.
type NotificationService struct {
	repository  NotificationRepository
	emitter     RealtimeEmitter
	broadcaster TopicBroadcaster

	pending sync.WaitGroup
}

func NewNotificationService(repository NotificationRepository, emitter RealtimeEmitter, broadcaster TopicBroadcaster) *NotificationService {
	return &NotificationService{
		repository:  repository,
		emitter:     emitter,
		broadcaster: broadcaster,
	}
}

func (s *NotificationService) Dispatch(ctx context.Context, ev domain.EngagementEvent) {
	switch ev.Type {
	case domain.EventPostLiked:
		if ev.ActorID == ev.PostAuthorID {
			return
		}
		payload := map[string]any{"postId": ev.PostID, "userId": ev.ActorID}
		s.emitter.SendTo(ev.PostAuthorID, "new-like", payload)
		s.broadcaster.Broadcast(realtime.PostTopic(ev.PostID), "post-liked", payload)
		s.persistDetached(domain.Notification{
			UserID:  ev.PostAuthorID,
			Type:    "like",
			Title:   "New like",
			Message: "Someone liked your post",
			Payload: payload,
		})

	case domain.EventPostCommented:
		if ev.ActorID == ev.PostAuthorID {
			return
		}
		payload := map[string]any{"postId": ev.PostID, "userId": ev.ActorID, "commentId": ev.CommentID}
		s.emitter.SendTo(ev.PostAuthorID, "new-comment", payload)
		s.broadcaster.Broadcast(realtime.PostTopic(ev.PostID), "post-commented", payload)
		s.persistDetached(domain.Notification{
			UserID:  ev.PostAuthorID,
			Type:    "comment",
			Title:   "New comment",
			Message: truncate(ev.CommentText, 80),
			Payload: payload,
		})

	case domain.EventOrderCreated:
		// Live order board for the restaurant only; no durable
		// per-user record.
		s.broadcaster.Broadcast(realtime.RestaurantTopic(ev.RestaurantID), "new-order", map[string]any{
			"orderId": ev.OrderID, "userId": ev.OrderOwnerID,
		})

	case domain.EventOrderStatusChanged:
		payload := map[string]any{"orderId": ev.OrderID, "status": ev.Status}
		s.emitter.SendTo(ev.OrderOwnerID, "order-status-update", payload)
		s.persistDetached(domain.Notification{
			UserID:  ev.OrderOwnerID,
			Type:    "order-status",
			Title:   "Order update",
			Message: fmt.Sprintf("Your order is now %s", ev.Status),
			Payload: payload,
		})

	default:
		log.Printf("Warning: dropping event with unknown type %q", ev.Type)
	}
}

func (s *NotificationService) persistDetached(n domain.Notification) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := s.repository.InsertNotification(ctx, &n); err != nil {
			log.Printf("Warning: failed to persist %s notification for user %d: %v", n.Type, n.UserID, err)
		}
	}()
}

// Flush waits for detached writes; used by tests and shutdown.
func (s *NotificationService) Flush() {
	s.pending.Wait()
}

func (s *NotificationService) List(ctx context.Context, userID int, unreadOnly bool) ([]domain.Notification, error) {
	return s.repository.ListNotifications(ctx, userID, unreadOnly)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID int) error {
	n, err := s.repository.GetNotification(ctx, notificationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotificationNotFound
		}
		return err
	}
	if n.UserID != userID {
		return ErrForbidden
	}
	if n.Read {
		return nil
	}
	return s.repository.MarkNotificationRead(ctx, notificationID)
}

// truncate cuts on a rune boundary so a multi-byte character is never
// split mid-sequence.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
