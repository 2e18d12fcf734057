// Package mocks holds testify mocks for the service-layer interfaces.
package mocks

import (
	"context"

	"github.com/jeremiasmarinho/foodconnect-sub000/internal/domain"

	"github.com/stretchr/testify/mock"
)

type constructorT interface {
	mock.TestingT
	Cleanup(func())
}

type PostRepository struct {
	mock.Mock
}

func NewPostRepository(t constructorT) *PostRepository {
	m := &PostRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PostRepository) QueryPosts(ctx context.Context, f domain.FeedFilters, limit, offset int) ([]domain.Post, error) {
	ret := m.Called(ctx, f, limit, offset)
	var r0 []domain.Post
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Post)
	}
	return r0, ret.Error(1)
}

func (m *PostRepository) CountPosts(ctx context.Context, f domain.FeedFilters) (int, error) {
	ret := m.Called(ctx, f)
	return ret.Get(0).(int), ret.Error(1)
}

func (m *PostRepository) GetPost(ctx context.Context, id int) (*domain.Post, error) {
	ret := m.Called(ctx, id)
	var r0 *domain.Post
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Post)
	}
	return r0, ret.Error(1)
}

func (m *PostRepository) LikedPostIDs(ctx context.Context, userID int, postIDs []int) (map[int]bool, error) {
	ret := m.Called(ctx, userID, postIDs)
	var r0 map[int]bool
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[int]bool)
	}
	return r0, ret.Error(1)
}

type EngagementRepository struct {
	mock.Mock
}

func NewEngagementRepository(t constructorT) *EngagementRepository {
	m := &EngagementRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EngagementRepository) GetPost(ctx context.Context, id int) (*domain.Post, error) {
	ret := m.Called(ctx, id)
	var r0 *domain.Post
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Post)
	}
	return r0, ret.Error(1)
}

func (m *EngagementRepository) LikeExists(ctx context.Context, userID, postID int) (bool, error) {
	ret := m.Called(ctx, userID, postID)
	return ret.Get(0).(bool), ret.Error(1)
}

func (m *EngagementRepository) InsertLike(ctx context.Context, userID, postID int) error {
	return m.Called(ctx, userID, postID).Error(0)
}

func (m *EngagementRepository) DeleteLike(ctx context.Context, userID, postID int) error {
	return m.Called(ctx, userID, postID).Error(0)
}

func (m *EngagementRepository) InsertComment(ctx context.Context, c *domain.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *EngagementRepository) GetComment(ctx context.Context, id int) (*domain.Comment, error) {
	ret := m.Called(ctx, id)
	var r0 *domain.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Comment)
	}
	return r0, ret.Error(1)
}

func (m *EngagementRepository) DeleteComment(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *EngagementRepository) InsertOrder(ctx context.Context, o *domain.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *EngagementRepository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	ret := m.Called(ctx, id)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (m *EngagementRepository) UpdateOrderStatus(ctx context.Context, id int, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type ProfileRepository struct {
	mock.Mock
}

func NewProfileRepository(t constructorT) *ProfileRepository {
	m := &ProfileRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProfileRepository) RecentLikes(ctx context.Context, userID, limit int) ([]domain.PostEngagement, error) {
	ret := m.Called(ctx, userID, limit)
	var r0 []domain.PostEngagement
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PostEngagement)
	}
	return r0, ret.Error(1)
}

func (m *ProfileRepository) RecentComments(ctx context.Context, userID, limit int) ([]domain.PostEngagement, error) {
	ret := m.Called(ctx, userID, limit)
	var r0 []domain.PostEngagement
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PostEngagement)
	}
	return r0, ret.Error(1)
}

func (m *ProfileRepository) RecentFollows(ctx context.Context, userID, limit int) ([]int, error) {
	ret := m.Called(ctx, userID, limit)
	var r0 []int
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]int)
	}
	return r0, ret.Error(1)
}

type NotificationRepository struct {
	mock.Mock
}

func NewNotificationRepository(t constructorT) *NotificationRepository {
	m := &NotificationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *NotificationRepository) InsertNotification(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *NotificationRepository) ListNotifications(ctx context.Context, userID int, unreadOnly bool) ([]domain.Notification, error) {
	ret := m.Called(ctx, userID, unreadOnly)
	var r0 []domain.Notification
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Notification)
	}
	return r0, ret.Error(1)
}

func (m *NotificationRepository) GetNotification(ctx context.Context, id int) (*domain.Notification, error) {
	ret := m.Called(ctx, id)
	var r0 *domain.Notification
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Notification)
	}
	return r0, ret.Error(1)
}

func (m *NotificationRepository) MarkNotificationRead(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type PostCounter struct {
	mock.Mock
}

func NewPostCounter(t constructorT) *PostCounter {
	m := &PostCounter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PostCounter) RefreshPostCounts(ctx context.Context, postID int) error {
	return m.Called(ctx, postID).Error(0)
}
