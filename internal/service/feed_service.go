package service

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/jeremiasmarinho/foodconnect-sub000/internal/domain"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

type FeedService struct {
	repository PostRepository
	cache      FeedCache
	profiles   ProfileBuilderInterface

	// candidateMultiplier sizes the recency window fetched before a
	// personalized re-rank, as a multiple of the page size.
	candidateMultiplier int
}

func NewFeedService(repository PostRepository, cache FeedCache, profiles ProfileBuilderInterface, candidateMultiplier int) *FeedService {
	if candidateMultiplier < 1 {
		candidateMultiplier = 3
	}
	return &FeedService{
		repository:          repository,
		cache:               cache,
		profiles:            profiles,
		candidateMultiplier: candidateMultiplier,
	}
}

// GetFeed serves a filtered, sorted, paginated page of posts, from
// cache when a fresh entry exists. Cache failures degrade to the
// persistence query; persistence failures surface to the caller.
func (s *FeedService) GetFeed(ctx context.Context, filters domain.FeedFilters, page, pageSize, userID int) (*domain.FeedPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	key := s.cache.Key(filters, page, pageSize, userID)
	if raw, err := s.cache.Get(ctx, key); err != nil {
		log.Printf("Warning: feed cache read failed: %v", err)
	} else if raw != "" {
		var cached domain.FeedPage
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &cached, nil
		}
		log.Printf("Warning: discarding corrupt feed cache entry %s", key)
	}

	var result *domain.FeedPage
	var err error
	if filters.Personalized && userID != 0 {
		result, err = s.personalizedPage(ctx, filters, page, pageSize, userID)
	} else {
		result, err = s.standardPage(ctx, filters, page, pageSize, userID)
	}
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, key, string(raw)); err != nil {
			log.Printf("Warning: feed cache write failed: %v", err)
		}
	}

	return result, nil
}

func (s *FeedService) standardPage(ctx context.Context, filters domain.FeedFilters, page, pageSize, userID int) (*domain.FeedPage, error) {
	posts, err := s.repository.QueryPosts(ctx, filters, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	total, err := s.repository.CountPosts(ctx, filters)
	if err != nil {
		return nil, err
	}

	// The persistence layer cannot express an aggregate-count
	// predicate, so minimum-like-count is applied here. The page may
	// come back short and totalItems keeps the unfiltered count; both
	// are documented behavior.
	posts = filterMinLikes(posts, filters.MinLikes)

	if err := s.mergeLikedFlags(ctx, posts, userID); err != nil {
		return nil, err
	}

	return &domain.FeedPage{
		Data: posts,
		Meta: buildMeta(page, pageSize, total),
	}, nil
}

// personalizedPage fetches an oversized recency-ordered candidate
// window, re-ranks it by interaction score, and slices out the
// requested page. This is a best-effort re-rank over a bounded window,
// not a full-corpus sort; total-count semantics are unchanged.
func (s *FeedService) personalizedPage(ctx context.Context, filters domain.FeedFilters, page, pageSize, userID int) (*domain.FeedPage, error) {
	window := filters
	window.SortBy = "createdAt"
	window.SortOrder = "desc"

	candidates, err := s.repository.QueryPosts(ctx, window, pageSize*s.candidateMultiplier, 0)
	if err != nil {
		return nil, err
	}

	total, err := s.repository.CountPosts(ctx, filters)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.BuildProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates = filterMinLikes(candidates, filters.MinLikes)

	if err := s.mergeLikedFlags(ctx, candidates, userID); err != nil {
		return nil, err
	}

	scores := make([]float64, len(candidates))
	now := time.Now()
	scorer := newScorer(profile)
	for i, post := range candidates {
		scores[i] = scorer.score(post, now)
	}

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	// Stable: ties keep the original fetch order.
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	start := (page - 1) * pageSize
	if start > len(order) {
		start = len(order)
	}
	end := start + pageSize
	if end > len(order) {
		end = len(order)
	}

	pageItems := make([]domain.Post, 0, end-start)
	for _, idx := range order[start:end] {
		pageItems = append(pageItems, candidates[idx])
	}

	return &domain.FeedPage{
		Data: pageItems,
		Meta: buildMeta(page, pageSize, total),
	}, nil
}

func (s *FeedService) mergeLikedFlags(ctx context.Context, posts []domain.Post, userID int) error {
	if userID == 0 || len(posts) == 0 {
		return nil
	}
	ids := make([]int, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	liked, err := s.repository.LikedPostIDs(ctx, userID, ids)
	if err != nil {
		return err
	}
	for i := range posts {
		posts[i].LikedByMe = liked[posts[i].ID]
	}
	return nil
}

func filterMinLikes(posts []domain.Post, minLikes int) []domain.Post {
	if minLikes <= 0 {
		return posts
	}
	filtered := posts[:0]
	for _, p := range posts {
		if p.LikeCount >= minLikes {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func buildMeta(page, pageSize, total int) domain.FeedMeta {
	totalPages := (total + pageSize - 1) / pageSize
	return domain.FeedMeta{
		CurrentPage:     page,
		ItemsPerPage:    pageSize,
		TotalItems:      total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

type scorer struct {
	cuisines    map[string]bool
	restaurants map[int]bool
	follows     map[int]bool
}

func newScorer(profile *domain.InteractionProfile) *scorer {
	s := &scorer{
		cuisines:    make(map[string]bool, len(profile.FavoriteCuisines)),
		restaurants: make(map[int]bool, len(profile.InteractedRestaurants)),
		follows:     make(map[int]bool, len(profile.FollowedUsers)),
	}
	for _, c := range profile.FavoriteCuisines {
		s.cuisines[c] = true
	}
	for _, id := range profile.InteractedRestaurants {
		s.restaurants[id] = true
	}
	for _, id := range profile.FollowedUsers {
		s.follows[id] = true
	}
	return s
}

// score must match the historical formula exactly; clients depend on
// the relative ordering it produces.
func (s *scorer) score(p domain.Post, now time.Time) float64 {
	score := float64(p.LikeCount)*0.3 + float64(p.CommentCount)*0.2 + float64(p.Rating)*0.1
	if s.cuisines[p.Cuisine] {
		score += 10
	}
	if s.restaurants[p.RestaurantID] {
		score += 5
	}
	if s.follows[p.UserID] {
		score += 15
	}
	age := now.Sub(p.CreatedAt)
	switch {
	case age < 24*time.Hour:
		score += 3
	case age < 72*time.Hour:
		score += 1
	}
	return score
}
