package storage

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jeremiasmarinho/foodconnect-sub000/internal/domain"

	"github.com/redis/go-redis/v9"
)

const feedKeyPrefix = "feed:"

// FeedCache stores serialized feed pages under deterministic keys so
// identical requests within the TTL hit the same entry.
type FeedCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewFeedCache(client *redis.Client, ttl time.Duration) *FeedCache {
	return &FeedCache{Client: client, TTL: ttl}
}

// Key builds the cache key from every input that shapes the page.
// Every string field is escaped so two logically different queries can
// never collide on the separator.
func (c *FeedCache) Key(f domain.FeedFilters, page, pageSize, userID int) string {
	who := "public"
	if userID != 0 {
		who = strconv.Itoa(userID)
	}
	parts := []string{
		url.QueryEscape(f.Search),
		url.QueryEscape(f.Cuisine),
		url.QueryEscape(f.City),
		url.QueryEscape(f.State),
		strconv.Itoa(f.MinRating),
		strconv.Itoa(f.MinLikes),
		url.QueryEscape(f.TimeFilter),
		url.QueryEscape(f.SortBy),
		url.QueryEscape(f.SortOrder),
		strconv.FormatBool(f.Personalized),
		strconv.Itoa(page),
		strconv.Itoa(pageSize),
		who,
	}
	return feedKeyPrefix + strings.Join(parts, ":")
}

func (c *FeedCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (c *FeedCache) Set(ctx context.Context, key, value string) error {
	return c.Client.Set(ctx, key, value, c.TTL).Err()
}

func (c *FeedCache) Delete(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

// InvalidateFeed drops every cached feed page. Redis SCAN with a MATCH
// pattern replaces the literal wildcard delete the store cannot
// express; readers may still observe a stale page until the scan
// completes, bounded by the TTL.
func (c *FeedCache) InvalidateFeed(ctx context.Context) error {
	iter := c.Client.Scan(ctx, 0, feedKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.Client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
