package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "github.com/jeremiasmarinho/foodconnect-sub000/internal/api/http"
	"github.com/jeremiasmarinho/foodconnect-sub000/internal/domain"
	"github.com/jeremiasmarinho/foodconnect-sub000/internal/mocks"
	"github.com/jeremiasmarinho/foodconnect-sub000/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type handlerFixture struct {
	feed          *mocks.FeedServiceInterface
	engagement    *mocks.EngagementServiceInterface
	notifications *mocks.NotificationServiceInterface
	qr            *mocks.QRGenerator
	router        *mux.Router
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	f := &handlerFixture{
		feed:          mocks.NewFeedServiceInterface(t),
		engagement:    mocks.NewEngagementServiceInterface(t),
		notifications: mocks.NewNotificationServiceInterface(t),
		qr:            mocks.NewQRGenerator(t),
	}
	handler := httpapi.NewHandler(f.feed, f.engagement, f.notifications, f.qr)
	f.router = mux.NewRouter()
	handler.RegisterRoutes(f.router)
	return f
}

func TestHandler_getFeed(t *testing.T) {
	f := newHandlerFixture(t)

	page := &domain.FeedPage{
		Data: []domain.Post{{ID: 1}},
		Meta: domain.FeedMeta{CurrentPage: 1, ItemsPerPage: 10, TotalItems: 1, TotalPages: 1},
	}
	f.feed.On("GetFeed", mock.Anything, domain.FeedFilters{
		Cuisine: "sushi", SortBy: "likes", SortOrder: "desc",
	}, 2, 5, 9).Return(page, nil).Once()

	req := httptest.NewRequest("GET", "/api/feed?page=2&limit=5&cuisine=sushi&sortBy=likes&sortOrder=desc", nil)
	req.Header.Set("X-User-ID", "9")
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"currentPage":1`)
	assert.Contains(t, recorder.Body.String(), `"hasNextPage":false`)
}

func TestHandler_getFeed_ServiceError(t *testing.T) {
	f := newHandlerFixture(t)

	f.feed.On("GetFeed", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError).Once()

	req := httptest.NewRequest("GET", "/api/feed", nil)
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestHandler_toggleLike(t *testing.T) {
	tests := []struct {
		name         string
		userHeader   string
		prepareMocks func(f *handlerFixture)
		expectedCode int
		expectedBody string
	}{
		{
			name:       "success",
			userHeader: "9",
			prepareMocks: func(f *handlerFixture) {
				f.engagement.On("ToggleLike", mock.Anything, 9, 5).Return(true, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"liked":true`,
		},
		{
			name:         "missing_user",
			userHeader:   "",
			prepareMocks: func(f *handlerFixture) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:       "post_not_found",
			userHeader: "9",
			prepareMocks: func(f *handlerFixture) {
				f.engagement.On("ToggleLike", mock.Anything, 9, 5).
					Return(false, service.ErrPostNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			testCase.prepareMocks(f)

			req := httptest.NewRequest("POST", "/api/posts/5/like", nil)
			if testCase.userHeader != "" {
				req.Header.Set("X-User-ID", testCase.userHeader)
			}
			recorder := httptest.NewRecorder()
			f.router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_addComment(t *testing.T) {
	f := newHandlerFixture(t)

	f.engagement.On("AddComment", mock.Anything, 9, 5, "tasty").
		Return(&domain.Comment{ID: 77, PostID: 5, UserID: 9, Content: "tasty"}, nil).Once()

	req := httptest.NewRequest("POST", "/api/posts/5/comments", bytes.NewBufferString(`{"content":"tasty"}`))
	req.Header.Set("X-User-ID", "9")
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"id":77`)
}

func TestHandler_addComment_TooLong(t *testing.T) {
	f := newHandlerFixture(t)

	f.engagement.On("AddComment", mock.Anything, 9, 5, mock.Anything).
		Return(nil, service.ErrCommentTooLong).Once()

	req := httptest.NewRequest("POST", "/api/posts/5/comments", bytes.NewBufferString(`{"content":"way too long"}`))
	req.Header.Set("X-User-ID", "9")
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_deleteComment_Forbidden(t *testing.T) {
	f := newHandlerFixture(t)

	f.engagement.On("DeleteComment", mock.Anything, 9, 77).
		Return(service.ErrForbidden).Once()

	req := httptest.NewRequest("DELETE", "/api/comments/77", nil)
	req.Header.Set("X-User-ID", "9")
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestHandler_createOrder(t *testing.T) {
	f := newHandlerFixture(t)

	f.engagement.On("CreateOrder", mock.Anything, 9, 10, 42.5).
		Return(&domain.Order{ID: 3, UserID: 9, RestaurantID: 10, Status: "pending", Total: 42.5}, nil).Once()

	req := httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString(`{"restaurant_id":10,"total":42.5}`))
	req.Header.Set("X-User-ID", "9")
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"pending"`)
}

func TestHandler_updateOrderStatus_Invalid(t *testing.T) {
	f := newHandlerFixture(t)

	f.engagement.On("UpdateOrderStatus", mock.Anything, 3, "teleported").
		Return(nil, service.ErrInvalidStatus).Once()

	req := httptest.NewRequest("PATCH", "/api/orders/3/status", bytes.NewBufferString(`{"status":"teleported"}`))
	req.Header.Set("X-User-ID", "9")
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_updateOrderStatus_MissingUser(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest("PATCH", "/api/orders/3/status", bytes.NewBufferString(`{"status":"ready"}`))
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	f.engagement.AssertNotCalled(t, "UpdateOrderStatus")
}

func TestHandler_listNotifications(t *testing.T) {
	f := newHandlerFixture(t)

	f.notifications.On("List", mock.Anything, 9, true).
		Return([]domain.Notification{{ID: 5, UserID: 9, Type: "like"}}, nil).Once()

	req := httptest.NewRequest("GET", "/api/notifications?unread=true", nil)
	req.Header.Set("X-User-ID", "9")
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var notifications []domain.Notification
	json.NewDecoder(recorder.Body).Decode(&notifications)
	assert.Len(t, notifications, 1)
}

func TestHandler_markNotificationRead(t *testing.T) {
	f := newHandlerFixture(t)

	f.notifications.On("MarkRead", mock.Anything, 9, 5).Return(nil).Once()

	req := httptest.NewRequest("POST", "/api/notifications/5/read", nil)
	req.Header.Set("X-User-ID", "9")
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestHandler_restaurantQR(t *testing.T) {
	f := newHandlerFixture(t)

	f.qr.On("Generate", 10).Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil).Once()

	req := httptest.NewRequest("GET", "/api/restaurants/10/qr", nil)
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
}
