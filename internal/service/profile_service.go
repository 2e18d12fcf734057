package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/jeremiasmarinho/foodconnect-sub000/internal/domain"
)

const (
	likeWindow    = 50
	commentWindow = 30
	followWindow  = 100

	likeWeight    = 2
	commentWeight = 1

	topCuisines    = 3
	topRestaurants = 10
)

// ProfileBuilder derives a user's cuisine and restaurant affinities
// from a bounded window of recent engagement. The windows cap cost at
// the expense of recency skew for very active users.
type ProfileBuilder struct {
	repository ProfileRepository
}

func NewProfileBuilder(repository ProfileRepository) *ProfileBuilder {
	return &ProfileBuilder{repository: repository}
}

func (b *ProfileBuilder) BuildProfile(ctx context.Context, userID int) (*domain.InteractionProfile, error) {
	likes, err := b.repository.RecentLikes(ctx, userID, likeWindow)
	if err != nil {
		return nil, fmt.Errorf("recent likes: %w", err)
	}

	comments, err := b.repository.RecentComments(ctx, userID, commentWindow)
	if err != nil {
		return nil, fmt.Errorf("recent comments: %w", err)
	}

	follows, err := b.repository.RecentFollows(ctx, userID, followWindow)
	if err != nil {
		return nil, fmt.Errorf("recent follows: %w", err)
	}

	cuisineWeights := make(map[string]int)
	restaurantWeights := make(map[int]int)
	likedPosts := make([]int, 0, len(likes))

	for _, like := range likes {
		cuisineWeights[like.Cuisine] += likeWeight
		restaurantWeights[like.RestaurantID] += likeWeight
		likedPosts = append(likedPosts, like.PostID)
	}
	for _, comment := range comments {
		cuisineWeights[comment.Cuisine] += commentWeight
		restaurantWeights[comment.RestaurantID] += commentWeight
	}

	return &domain.InteractionProfile{
		FavoriteCuisines:      topCuisinesByWeight(cuisineWeights, topCuisines),
		InteractedRestaurants: topRestaurantsByWeight(restaurantWeights, topRestaurants),
		FollowedUsers:         follows,
		RecentlyLikedPosts:    likedPosts,
	}, nil
}

// Ties break by name so repeated builds over the same history produce
// the same profile.
func topCuisinesByWeight(weights map[string]int, n int) []string {
	cuisines := make([]string, 0, len(weights))
	for cuisine := range weights {
		cuisines = append(cuisines, cuisine)
	}
	sort.Slice(cuisines, func(i, j int) bool {
		if weights[cuisines[i]] != weights[cuisines[j]] {
			return weights[cuisines[i]] > weights[cuisines[j]]
		}
		return cuisines[i] < cuisines[j]
	})
	if len(cuisines) > n {
		cuisines = cuisines[:n]
	}
	return cuisines
}

func topRestaurantsByWeight(weights map[int]int, n int) []int {
	restaurants := make([]int, 0, len(weights))
	for id := range weights {
		restaurants = append(restaurants, id)
	}
	sort.Slice(restaurants, func(i, j int) bool {
		if weights[restaurants[i]] != weights[restaurants[j]] {
			return weights[restaurants[i]] > weights[restaurants[j]]
		}
		return restaurants[i] < restaurants[j]
	})
	if len(restaurants) > n {
		restaurants = restaurants[:n]
	}
	return restaurants
}
