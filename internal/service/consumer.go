package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jeremiasmarinho/foodconnect-sub000/internal/domain"

	"github.com/segmentio/kafka-go"
)

// Consumer reads engagement events and keeps the denormalized
// like/comment counters in step with the source-of-truth tables,
// dropping stale feed pages afterwards.
type Consumer struct {
	Reader *kafka.Reader
	Posts  PostCounter
	Cache  FeedCache
}

func NewConsumer(reader *kafka.Reader, posts PostCounter, cache FeedCache) *Consumer {
	return &Consumer{Reader: reader, Posts: posts, Cache: cache}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting engagement consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var ev domain.EngagementEvent
		if err := json.Unmarshal(message.Value, &ev); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(ctx, ev)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, ev domain.EngagementEvent) {
	switch ev.Type {
	case domain.EventPostLiked, domain.EventPostCommented:
	default:
		return
	}
	if ev.PostID == 0 {
		return
	}

	if err := c.Posts.RefreshPostCounts(ctx, ev.PostID); err != nil {
		log.Printf("Error refreshing counts for post %d: %v", ev.PostID, err)
		return
	}

	if err := c.Cache.InvalidateFeed(ctx); err != nil {
		log.Printf("Error invalidating feed cache: %v", err)
	}
}
