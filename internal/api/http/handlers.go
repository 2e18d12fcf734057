package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/jeremiasmarinho/foodconnect-sub000/internal/domain"
	"github.com/jeremiasmarinho/foodconnect-sub000/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Feed          service.FeedServiceInterface
	Engagement    service.EngagementServiceInterface
	Notifications service.NotificationServiceInterface
	QR            service.QRGenerator
}

func NewHandler(feed service.FeedServiceInterface, engagement service.EngagementServiceInterface,
	notifications service.NotificationServiceInterface, qr service.QRGenerator) *Handler {
	return &Handler{Feed: feed, Engagement: engagement, Notifications: notifications, QR: qr}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/feed", h.getFeed).Methods("GET")
	r.HandleFunc("/api/posts/{postId}/like", h.toggleLike).Methods("POST")
	r.HandleFunc("/api/posts/{postId}/comments", h.addComment).Methods("POST")
	r.HandleFunc("/api/comments/{commentId}", h.deleteComment).Methods("DELETE")
	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{orderId}/status", h.updateOrderStatus).Methods("PATCH")
	r.HandleFunc("/api/notifications", h.listNotifications).Methods("GET")
	r.HandleFunc("/api/notifications/{notificationId}/read", h.markNotificationRead).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/qr", h.restaurantQR).Methods("GET")
}

// requestUserID reads the authenticated caller set by the auth proxy.
func requestUserID(r *http.Request) int {
	id, _ := strconv.Atoi(r.Header.Get("X-User-ID"))
	return id
}

func (h *Handler) getFeed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	minRating, _ := strconv.Atoi(q.Get("minRating"))
	minLikes, _ := strconv.Atoi(q.Get("minLikes"))

	filters := domain.FeedFilters{
		Search:       q.Get("search"),
		Cuisine:      q.Get("cuisine"),
		City:         q.Get("city"),
		State:        q.Get("state"),
		MinRating:    minRating,
		MinLikes:     minLikes,
		TimeFilter:   q.Get("timeFilter"),
		SortBy:       q.Get("sortBy"),
		SortOrder:    q.Get("sortOrder"),
		Personalized: q.Get("personalized") == "true",
	}

	feed, err := h.Feed.GetFeed(r.Context(), filters, page, limit, requestUserID(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(feed)
}

func (h *Handler) toggleLike(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == 0 {
		http.Error(w, "Missing X-User-ID", http.StatusUnauthorized)
		return
	}
	postID, _ := strconv.Atoi(mux.Vars(r)["postId"])

	liked, err := h.Engagement.ToggleLike(r.Context(), userID, postID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"liked": liked})
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == 0 {
		http.Error(w, "Missing X-User-ID", http.StatusUnauthorized)
		return
	}
	postID, _ := strconv.Atoi(mux.Vars(r)["postId"])

	var payload struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.Engagement.AddComment(r.Context(), userID, postID, payload.Content)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(comment)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == 0 {
		http.Error(w, "Missing X-User-ID", http.StatusUnauthorized)
		return
	}
	commentID, _ := strconv.Atoi(mux.Vars(r)["commentId"])

	if err := h.Engagement.DeleteComment(r.Context(), userID, commentID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == 0 {
		http.Error(w, "Missing X-User-ID", http.StatusUnauthorized)
		return
	}

	var payload struct {
		RestaurantID int     `json:"restaurant_id"`
		Total        float64 `json:"total"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.RestaurantID == 0 {
		http.Error(w, "Missing restaurant_id", http.StatusBadRequest)
		return
	}

	order, err := h.Engagement.CreateOrder(r.Context(), userID, payload.RestaurantID, payload.Total)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	if requestUserID(r) == 0 {
		http.Error(w, "Missing X-User-ID", http.StatusUnauthorized)
		return
	}
	orderID, _ := strconv.Atoi(mux.Vars(r)["orderId"])

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Engagement.UpdateOrderStatus(r.Context(), orderID, payload.Status)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == 0 {
		http.Error(w, "Missing X-User-ID", http.StatusUnauthorized)
		return
	}

	notifications, err := h.Notifications.List(r.Context(), userID, r.URL.Query().Get("unread") == "true")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(notifications)
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == 0 {
		http.Error(w, "Missing X-User-ID", http.StatusUnauthorized)
		return
	}
	notificationID, _ := strconv.Atoi(mux.Vars(r)["notificationId"])

	if err := h.Notifications.MarkRead(r.Context(), userID, notificationID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) restaurantQR(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	if restaurantID == 0 {
		http.Error(w, "Invalid restaurant id", http.StatusBadRequest)
		return
	}

	png, err := h.QR.Generate(restaurantID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrNotificationNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrCommentTooLong),
		errors.Is(err, service.ErrEmptyComment),
		errors.Is(err, service.ErrInvalidStatus):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
