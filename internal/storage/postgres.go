package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jeremiasmarinho/foodconnect-sub000/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

var feedSortColumns = map[string]string{
	"createdAt": "p.created_at",
	"likes":     "p.like_count",
	"comments":  "p.comment_count",
	"rating":    "p.rating",
}

const postColumns = `p.id, p.user_id, p.restaurant_id, r.name, r.cuisine, p.content,
		p.images, p.rating, p.like_count, p.comment_count, p.created_at, p.updated_at`

// buildFeedWhere translates the filter set into a WHERE clause. The
// minimum-like-count filter is deliberately absent: it is applied
// in-process by the feed service.
func buildFeedWhere(f domain.FeedFilters) (string, []any) {
	clauses := []string{"1=1"}
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.Search != "" {
		placeholder := arg("%" + f.Search + "%")
		clauses = append(clauses, "(p.content ILIKE "+placeholder+" OR r.name ILIKE "+placeholder+")")
	}
	if f.Cuisine != "" {
		clauses = append(clauses, "r.cuisine = "+arg(f.Cuisine))
	}
	if f.City != "" {
		clauses = append(clauses, "r.city = "+arg(f.City))
	}
	if f.State != "" {
		clauses = append(clauses, "r.state = "+arg(f.State))
	}
	if f.MinRating > 0 {
		clauses = append(clauses, "p.rating >= "+arg(f.MinRating))
	}
	switch f.TimeFilter {
	case "today":
		clauses = append(clauses, "p.created_at >= CURRENT_DATE")
	case "week":
		clauses = append(clauses, "p.created_at >= NOW() - INTERVAL '7 days'")
	case "month":
		clauses = append(clauses, "p.created_at >= NOW() - INTERVAL '30 days'")
	}

	return strings.Join(clauses, " AND "), args
}

func feedOrderBy(f domain.FeedFilters) string {
	column, ok := feedSortColumns[f.SortBy]
	if !ok {
		column = "p.created_at"
	}
	direction := "DESC"
	if strings.EqualFold(f.SortOrder, "asc") {
		direction = "ASC"
	}
	// Secondary key keeps pagination stable across identical values.
	return column + " " + direction + ", p.id DESC"
}

func (r *PostgresRepository) QueryPosts(ctx context.Context, f domain.FeedFilters, limit, offset int) ([]domain.Post, error) {
	where, args := buildFeedWhere(f)
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN restaurants r ON p.restaurant_id = r.id
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`,
		postColumns, where, feedOrderBy(f), len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("feed query: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.RestaurantID, &p.RestaurantName, &p.Cuisine,
			&p.Content, pq.Array(&p.Images), &p.Rating, &p.LikeCount, &p.CommentCount,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("feed scan: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostgresRepository) CountPosts(ctx context.Context, f domain.FeedFilters) (int, error) {
	where, args := buildFeedWhere(f)
	var total int
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM posts p
		JOIN restaurants r ON p.restaurant_id = r.id
		WHERE `+where, args...).Scan(&total)
	return total, err
}

func (r *PostgresRepository) GetPost(ctx context.Context, id int) (*domain.Post, error) {
	var p domain.Post
	err := r.DB.QueryRowContext(ctx, `
		SELECT `+postColumns+`
		FROM posts p
		JOIN restaurants r ON p.restaurant_id = r.id
		WHERE p.id = $1`, id).
		Scan(&p.ID, &p.UserID, &p.RestaurantID, &p.RestaurantName, &p.Cuisine,
			&p.Content, pq.Array(&p.Images), &p.Rating, &p.LikeCount, &p.CommentCount,
			&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) LikedPostIDs(ctx context.Context, userID int, postIDs []int) (map[int]bool, error) {
	liked := make(map[int]bool)
	if len(postIDs) == 0 {
		return liked, nil
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT post_id FROM likes
		WHERE user_id = $1 AND post_id = ANY($2)`, userID, pq.Array(postIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		liked[id] = true
	}
	return liked, rows.Err()
}

func (r *PostgresRepository) LikeExists(ctx context.Context, userID, postID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = $1 AND post_id = $2)`,
		userID, postID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) InsertLike(ctx context.Context, userID, postID int) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO likes (user_id, post_id) VALUES ($1, $2)`, userID, postID)
	return err
}

func (r *PostgresRepository) DeleteLike(ctx context.Context, userID, postID int) error {
	_, err := r.DB.ExecContext(ctx, `
		DELETE FROM likes WHERE user_id = $1 AND post_id = $2`, userID, postID)
	return err
}

func (r *PostgresRepository) InsertComment(ctx context.Context, c *domain.Comment) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO comments (post_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`, c.PostID, c.UserID, c.Content).
		Scan(&c.ID, &c.CreatedAt)
}

func (r *PostgresRepository) GetComment(ctx context.Context, id int) (*domain.Comment, error) {
	var c domain.Comment
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, post_id, user_id, content, created_at
		FROM comments WHERE id = $1`, id).
		Scan(&c.ID, &c.PostID, &c.UserID, &c.Content, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) DeleteComment(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	return err
}

// RefreshPostCounts recomputes the denormalized counters from the
// source-of-truth tables.
func (r *PostgresRepository) RefreshPostCounts(ctx context.Context, postID int) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE posts
		SET like_count = (SELECT COUNT(*) FROM likes WHERE post_id = $1),
		    comment_count = (SELECT COUNT(*) FROM comments WHERE post_id = $1)
		WHERE id = $1`, postID)
	return err
}

func (r *PostgresRepository) RecentLikes(ctx context.Context, userID, limit int) ([]domain.PostEngagement, error) {
	return r.queryEngagements(ctx, `
		SELECT l.post_id, p.restaurant_id, r.cuisine
		FROM likes l
		JOIN posts p ON l.post_id = p.id
		JOIN restaurants r ON p.restaurant_id = r.id
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC
		LIMIT $2`, userID, limit)
}

func (r *PostgresRepository) RecentComments(ctx context.Context, userID, limit int) ([]domain.PostEngagement, error) {
	return r.queryEngagements(ctx, `
		SELECT c.post_id, p.restaurant_id, r.cuisine
		FROM comments c
		JOIN posts p ON c.post_id = p.id
		JOIN restaurants r ON p.restaurant_id = r.id
		WHERE c.user_id = $1
		ORDER BY c.created_at DESC
		LIMIT $2`, userID, limit)
}

func (r *PostgresRepository) queryEngagements(ctx context.Context, query string, args ...any) ([]domain.PostEngagement, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var engagements []domain.PostEngagement
	for rows.Next() {
		var e domain.PostEngagement
		if err := rows.Scan(&e.PostID, &e.RestaurantID, &e.Cuisine); err != nil {
			return nil, err
		}
		engagements = append(engagements, e)
	}
	return engagements, rows.Err()
}

func (r *PostgresRepository) RecentFollows(ctx context.Context, userID, limit int) ([]int, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT followed_id FROM follows
		WHERE follower_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var followed []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		followed = append(followed, id)
	}
	return followed, rows.Err()
}

func (r *PostgresRepository) InsertNotification(ctx context.Context, n *domain.Notification) error {
	payload, err := json.Marshal(n.Payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO notifications (user_id, type, title, message, payload)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		n.UserID, n.Type, n.Title, n.Message, payload).
		Scan(&n.ID, &n.CreatedAt)
}

func (r *PostgresRepository) ListNotifications(ctx context.Context, userID int, unreadOnly bool) ([]domain.Notification, error) {
	query := `
		SELECT id, user_id, type, title, message, payload, read, created_at, read_at
		FROM notifications
		WHERE user_id = $1`
	if unreadOnly {
		query += ` AND read = FALSE`
	}
	query += ` ORDER BY created_at DESC LIMIT 50`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var payload []byte
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message,
			&payload, &n.Read, &n.CreatedAt, &n.ReadAt); err != nil {
			return nil, err
		}
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &n.Payload); err != nil {
				return nil, fmt.Errorf("unmarshal payload: %w", err)
			}
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *PostgresRepository) GetNotification(ctx context.Context, id int) (*domain.Notification, error) {
	var n domain.Notification
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, type, read, created_at, read_at
		FROM notifications WHERE id = $1`, id).
		Scan(&n.ID, &n.UserID, &n.Type, &n.Read, &n.CreatedAt, &n.ReadAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *PostgresRepository) MarkNotificationRead(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE notifications SET read = TRUE, read_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *PostgresRepository) InsertOrder(ctx context.Context, o *domain.Order) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, restaurant_id, status, total)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		o.UserID, o.RestaurantID, o.Status, o.Total).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	var o domain.Order
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, restaurant_id, status, total, created_at, updated_at
		FROM orders WHERE id = $1`, id).
		Scan(&o.ID, &o.UserID, &o.RestaurantID, &o.Status, &o.Total, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id int, status string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	return err
}
