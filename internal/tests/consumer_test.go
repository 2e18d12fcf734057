package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/jeremiasmarinho/foodconnect-sub000/internal/domain"
	"github.com/jeremiasmarinho/foodconnect-sub000/internal/mocks"
	"github.com/jeremiasmarinho/foodconnect-sub000/internal/service"
)

func TestConsumer_ProcessEvent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		event        domain.EngagementEvent
		prepareMocks func(posts *mocks.PostCounter, cache *mocks.FeedCache)
	}{
		{
			name:  "like_refreshes_counts_and_invalidates",
			event: domain.EngagementEvent{Type: domain.EventPostLiked, PostID: 5},
			prepareMocks: func(posts *mocks.PostCounter, cache *mocks.FeedCache) {
				posts.On("RefreshPostCounts", ctx, 5).Return(nil).Once()
				cache.On("InvalidateFeed", ctx).Return(nil).Once()
			},
		},
		{
			name:  "comment_refreshes_counts",
			event: domain.EngagementEvent{Type: domain.EventPostCommented, PostID: 5},
			prepareMocks: func(posts *mocks.PostCounter, cache *mocks.FeedCache) {
				posts.On("RefreshPostCounts", ctx, 5).Return(nil).Once()
				cache.On("InvalidateFeed", ctx).Return(nil).Once()
			},
		},
		{
			name:  "refresh_error_skips_invalidation",
			event: domain.EngagementEvent{Type: domain.EventPostLiked, PostID: 5},
			prepareMocks: func(posts *mocks.PostCounter, cache *mocks.FeedCache) {
				posts.On("RefreshPostCounts", ctx, 5).Return(errors.New("db gone")).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			posts := mocks.NewPostCounter(t)
			cache := mocks.NewFeedCache(t)
			testCase.prepareMocks(posts, cache)

			consumer := &service.Consumer{Posts: posts, Cache: cache}
			consumer.ProcessEvent(ctx, testCase.event)
		})
	}
}

func TestConsumer_IgnoresOtherEvents(t *testing.T) {
	posts := mocks.NewPostCounter(t)
	cache := mocks.NewFeedCache(t)

	consumer := &service.Consumer{Posts: posts, Cache: cache}
	consumer.ProcessEvent(context.Background(), domain.EngagementEvent{
		Type: domain.EventOrderCreated, OrderID: 3,
	})
	consumer.ProcessEvent(context.Background(), domain.EngagementEvent{
		Type: "unknown_type", PostID: 5,
	})

	posts.AssertNotCalled(t, "RefreshPostCounts")
	cache.AssertNotCalled(t, "InvalidateFeed")
}
