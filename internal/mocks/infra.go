package mocks

import (
	"context"

	"github.com/jeremiasmarinho/foodconnect-sub000/internal/domain"

	"github.com/stretchr/testify/mock"
)

type FeedCache struct {
	mock.Mock
}

func NewFeedCache(t constructorT) *FeedCache {
	m := &FeedCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *FeedCache) Key(f domain.FeedFilters, page, pageSize, userID int) string {
	return m.Called(f, page, pageSize, userID).Get(0).(string)
}

func (m *FeedCache) Get(ctx context.Context, key string) (string, error) {
	ret := m.Called(ctx, key)
	return ret.Get(0).(string), ret.Error(1)
}

func (m *FeedCache) Set(ctx context.Context, key, value string) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *FeedCache) InvalidateFeed(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type RealtimeEmitter struct {
	mock.Mock
}

func NewRealtimeEmitter(t constructorT) *RealtimeEmitter {
	m := &RealtimeEmitter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RealtimeEmitter) SendTo(userID int, event string, data any) {
	m.Called(userID, event, data)
}

type TopicBroadcaster struct {
	mock.Mock
}

func NewTopicBroadcaster(t constructorT) *TopicBroadcaster {
	m := &TopicBroadcaster{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TopicBroadcaster) Broadcast(topic, event string, data any) {
	m.Called(topic, event, data)
}

type EventPublisher struct {
	mock.Mock
}

func NewEventPublisher(t constructorT) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EventPublisher) PublishEngagement(ctx context.Context, ev domain.EngagementEvent) error {
	return m.Called(ctx, ev).Error(0)
}
