package mocks

import (
	"context"

	"github.com/jeremiasmarinho/foodconnect-sub000/internal/domain"

	"github.com/stretchr/testify/mock"
)

type FeedServiceInterface struct {
	mock.Mock
}

func NewFeedServiceInterface(t constructorT) *FeedServiceInterface {
	m := &FeedServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *FeedServiceInterface) GetFeed(ctx context.Context, filters domain.FeedFilters, page, pageSize, userID int) (*domain.FeedPage, error) {
	ret := m.Called(ctx, filters, page, pageSize, userID)
	var r0 *domain.FeedPage
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.FeedPage)
	}
	return r0, ret.Error(1)
}

type ProfileBuilderInterface struct {
	mock.Mock
}

func NewProfileBuilderInterface(t constructorT) *ProfileBuilderInterface {
	m := &ProfileBuilderInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProfileBuilderInterface) BuildProfile(ctx context.Context, userID int) (*domain.InteractionProfile, error) {
	ret := m.Called(ctx, userID)
	var r0 *domain.InteractionProfile
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.InteractionProfile)
	}
	return r0, ret.Error(1)
}

type EngagementServiceInterface struct {
	mock.Mock
}

func NewEngagementServiceInterface(t constructorT) *EngagementServiceInterface {
	m := &EngagementServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EngagementServiceInterface) ToggleLike(ctx context.Context, userID, postID int) (bool, error) {
	ret := m.Called(ctx, userID, postID)
	return ret.Get(0).(bool), ret.Error(1)
}

func (m *EngagementServiceInterface) AddComment(ctx context.Context, userID, postID int, content string) (*domain.Comment, error) {
	ret := m.Called(ctx, userID, postID, content)
	var r0 *domain.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Comment)
	}
	return r0, ret.Error(1)
}

func (m *EngagementServiceInterface) DeleteComment(ctx context.Context, userID, commentID int) error {
	return m.Called(ctx, userID, commentID).Error(0)
}

func (m *EngagementServiceInterface) CreateOrder(ctx context.Context, userID, restaurantID int, total float64) (*domain.Order, error) {
	ret := m.Called(ctx, userID, restaurantID, total)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (m *EngagementServiceInterface) UpdateOrderStatus(ctx context.Context, orderID int, status string) (*domain.Order, error) {
	ret := m.Called(ctx, orderID, status)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

type NotificationServiceInterface struct {
	mock.Mock
}

func NewNotificationServiceInterface(t constructorT) *NotificationServiceInterface {
	m := &NotificationServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *NotificationServiceInterface) Dispatch(ctx context.Context, ev domain.EngagementEvent) {
	m.Called(ctx, ev)
}

func (m *NotificationServiceInterface) List(ctx context.Context, userID int, unreadOnly bool) ([]domain.Notification, error) {
	ret := m.Called(ctx, userID, unreadOnly)
	var r0 []domain.Notification
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Notification)
	}
	return r0, ret.Error(1)
}

func (m *NotificationServiceInterface) MarkRead(ctx context.Context, userID, notificationID int) error {
	return m.Called(ctx, userID, notificationID).Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t constructorT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *QRGenerator) Generate(restaurantID int) ([]byte, error) {
	ret := m.Called(restaurantID)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}
