package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"moviematch_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"golang.org/x/sync/errgroup"
)

// profileResolveConcurrency bounds the parallel profile lookups when a
// follower/following list is resolved.
const profileResolveConcurrency = 8

// FollowListener is invoked after a follow edge was written or deleted.
type FollowListener func(followerID, followingID string, following bool)

// FollowService owns the directed follow graph between users.
type FollowService struct {
	Dynamo  DocumentStore
	Session *SessionService
	Users   *UserService

	mu        sync.Mutex
	listeners []FollowListener
}

func followKey(followerID, followingID string) string {
	return followerID + "_" + followingID
}

// Follow writes a follow edge from the session user to the target.
// Re-following an already-followed user overwrites the edge with a fresh
// timestamp; that is not an error.
func (s *FollowService) Follow(ctx context.Context, targetID string) error {
	user := s.Session.CurrentUser()
	if user == nil {
		return ErrUnauthenticated
	}
	if user.UserID == targetID {
		return ErrSelfFollow
	}

	edge := models.FollowEdge{
		FollowID:    followKey(user.UserID, targetID),
		FollowerID:  user.UserID,
		FollowingID: targetID,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Dynamo.PutItem(ctx, models.FollowsTable, edge); err != nil {
		log.Printf("❌ Failed to follow user %s: %v", targetID, err)
		return fmt.Errorf("failed to follow user: %w", err)
	}

	s.notify(user.UserID, targetID, true)
	return nil
}

// Unfollow deletes the follow edge from the session user to the target.
// Unfollowing a user that was never followed is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, targetID string) error {
	user := s.Session.CurrentUser()
	if user == nil {
		return ErrUnauthenticated
	}

	key := map[string]types.AttributeValue{
		"followId": &types.AttributeValueMemberS{Value: followKey(user.UserID, targetID)},
	}
	if err := s.Dynamo.DeleteItem(ctx, models.FollowsTable, key); err != nil {
		log.Printf("❌ Failed to unfollow user %s: %v", targetID, err)
		return fmt.Errorf("failed to unfollow user: %w", err)
	}

	s.notify(user.UserID, targetID, false)
	return nil
}

// IsFollowing reports whether the session user follows the target. Store
// failures and a missing session both read as not-following.
func (s *FollowService) IsFollowing(ctx context.Context, targetID string) bool {
	user := s.Session.CurrentUser()
	if user == nil {
		return false
	}

	key := map[string]types.AttributeValue{
		"followId": &types.AttributeValueMemberS{Value: followKey(user.UserID, targetID)},
	}
	_, err := s.Dynamo.GetItem(ctx, models.FollowsTable, key)
	if err != nil {
		if !errors.Is(err, ErrItemNotFound) {
			log.Printf("❌ Failed to check follow status for %s: %v", targetID, err)
		}
		return false
	}
	return true
}

// GetFollowing returns the profiles the given user follows. An empty
// userID defaults to the session user. Store failures degrade to an empty
// list.
func (s *FollowService) GetFollowing(ctx context.Context, userID string) []models.UserProfile {
	targetID := s.resolveUserID(userID)
	if targetID == "" {
		return []models.UserProfile{}
	}

	edges := s.queryEdges(ctx, models.FollowerIDIndex, "followerId", targetID)
	ids := make([]string, 0, len(edges))
	for _, edge := range edges {
		ids = append(ids, edge.FollowingID)
	}
	return s.resolveProfiles(ctx, ids)
}

// GetFollowers returns the profiles following the given user. An empty
// userID defaults to the session user. Store failures degrade to an empty
// list.
func (s *FollowService) GetFollowers(ctx context.Context, userID string) []models.UserProfile {
	targetID := s.resolveUserID(userID)
	if targetID == "" {
		return []models.UserProfile{}
	}

	edges := s.queryEdges(ctx, models.FollowingIDIndex, "followingId", targetID)
	ids := make([]string, 0, len(edges))
	for _, edge := range edges {
		ids = append(ids, edge.FollowerID)
	}
	return s.resolveProfiles(ctx, ids)
}

// GetFollowCounts returns the follower/following totals for the given user,
// defaulting to the session user. Failed count queries read as zero.
func (s *FollowService) GetFollowCounts(ctx context.Context, userID string) models.FollowCounts {
	targetID := s.resolveUserID(userID)
	if targetID == "" {
		return models.FollowCounts{}
	}

	followers, err := s.Dynamo.CountItemsWithIndex(ctx, models.FollowsTable, models.FollowingIDIndex,
		"followingId = :id", map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: targetID},
		})
	if err != nil {
		log.Printf("❌ Failed to count followers for %s: %v", targetID, err)
	}

	following, err := s.Dynamo.CountItemsWithIndex(ctx, models.FollowsTable, models.FollowerIDIndex,
		"followerId = :id", map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: targetID},
		})
	if err != nil {
		log.Printf("❌ Failed to count following for %s: %v", targetID, err)
	}

	return models.FollowCounts{Followers: followers, Following: following}
}

// OnFollowChanged registers a listener for follow graph updates.
func (s *FollowService) OnFollowChanged(listener FollowListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

func (s *FollowService) resolveUserID(userID string) string {
	if userID != "" {
		return userID
	}
	if user := s.Session.CurrentUser(); user != nil {
		return user.UserID
	}
	return ""
}

func (s *FollowService) queryEdges(ctx context.Context, indexName, field, value string) []models.FollowEdge {
	keyCondition := field + " = :id"
	expressionValues := map[string]types.AttributeValue{
		":id": &types.AttributeValueMemberS{Value: value},
	}

	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.FollowsTable, indexName, keyCondition, expressionValues, nil, 0)
	if err != nil {
		log.Printf("❌ Failed to query follow edges (%s=%s): %v", field, value, err)
		return nil
	}

	var edges []models.FollowEdge
	if err := attributevalue.UnmarshalListOfMaps(items, &edges); err != nil {
		log.Printf("❌ Failed to unmarshal follow edges: %v", err)
		return nil
	}
	return edges
}

// resolveProfiles fetches the profile for each id concurrently. Ids that
// fail to resolve are skipped; the returned order follows the input order.
func (s *FollowService) resolveProfiles(ctx context.Context, ids []string) []models.UserProfile {
	resolved := make([]*models.UserProfile, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(profileResolveConcurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			profile, err := s.Users.GetUserByID(gctx, id)
			if err != nil {
				log.Printf("⚠️ Skipping unresolvable user %s: %v", id, err)
				return nil
			}
			resolved[i] = profile
			return nil
		})
	}
	// Workers only return nil; Wait is just the join point.
	_ = g.Wait()

	profiles := make([]models.UserProfile, 0, len(ids))
	for _, profile := range resolved {
		if profile != nil {
			profiles = append(profiles, *profile)
		}
	}
	return profiles
}

func (s *FollowService) notify(followerID, followingID string, following bool) {
	s.mu.Lock()
	listeners := make([]FollowListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(followerID, followingID, following)
	}
}
