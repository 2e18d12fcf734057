package storage

import (
	"context"
	"testing"
	"time"

	"github.com/jeremiasmarinho/foodconnect-sub000/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func setupRepository(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func postRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "restaurant_id", "name", "cuisine", "content",
		"images", "rating", "like_count", "comment_count", "created_at", "updated_at",
	})
}

func TestQueryPosts_CuisineFilter(t *testing.T) {
	repository, mock := setupRepository(t)

	rows := postRows().AddRow(1, 9, 10, "Aki Sushi", "sushi", "omakase night",
		"{img1.jpg,img2.jpg}", 5, 3, 1, time.Now(), time.Now())

	mock.ExpectQuery("SELECT p.id, p.user_id").
		WithArgs("sushi", 10, 0).
		WillReturnRows(rows)

	posts, err := repository.QueryPosts(context.Background(),
		domain.FeedFilters{Cuisine: "sushi"}, 10, 0)
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "Aki Sushi", posts[0].RestaurantName)
	assert.Equal(t, []string{"img1.jpg", "img2.jpg"}, posts[0].Images)
}

func TestQueryPosts_SearchMatchesBodyOrRestaurant(t *testing.T) {
	repository, mock := setupRepository(t)

	mock.ExpectQuery("p.content ILIKE").
		WithArgs("%ramen%", 10, 0).
		WillReturnRows(postRows())

	posts, err := repository.QueryPosts(context.Background(),
		domain.FeedFilters{Search: "ramen"}, 10, 0)
	assert.NoError(t, err)
	assert.Empty(t, posts)
}

func TestQueryPosts_UnknownSortFallsBackToCreatedAt(t *testing.T) {
	repository, mock := setupRepository(t)

	mock.ExpectQuery("ORDER BY p.created_at DESC").
		WithArgs(10, 0).
		WillReturnRows(postRows())

	_, err := repository.QueryPosts(context.Background(),
		domain.FeedFilters{SortBy: "evil; DROP TABLE posts"}, 10, 0)
	assert.NoError(t, err)
}

func TestCountPosts(t *testing.T) {
	repository, mock := setupRepository(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(23))

	total, err := repository.CountPosts(context.Background(),
		domain.FeedFilters{MinRating: 4})
	assert.NoError(t, err)
	assert.Equal(t, 23, total)
}

func TestLikeExists(t *testing.T) {
	repository, mock := setupRepository(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(9, 5).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repository.LikeExists(context.Background(), 9, 5)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestRefreshPostCounts(t *testing.T) {
	repository, mock := setupRepository(t)

	mock.ExpectExec("UPDATE posts").
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repository.RefreshPostCounts(context.Background(), 5))
}
