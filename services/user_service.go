package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"moviematch_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// UserService resolves user ids to profiles and backs the user search.
// Profile lookups are cached briefly because the follow fan-out re-resolves
// the same ids over and over.
type UserService struct {
	Dynamo  DocumentStore
	Session *SessionService

	profileCache *gocache.Cache
}

func NewUserService(store DocumentStore, session *SessionService) *UserService {
	return &UserService{
		Dynamo:       store,
		Session:      session,
		profileCache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// GetUserByID resolves a user id to a profile. A missing profile returns
// (nil, nil) so list-building callers can skip it without special-casing.
func (us *UserService) GetUserByID(ctx context.Context, userID string) (*models.UserProfile, error) {
	if cached, ok := us.profileCache.Get(userID); ok {
		profile := cached.(models.UserProfile)
		return &profile, nil
	}

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	item, err := us.Dynamo.GetItem(ctx, models.UsersTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user %s: %w", userID, err)
	}

	us.profileCache.SetDefault(userID, profile)
	return &profile, nil
}

// EnsureUserProfile returns the stored profile for the given user, creating
// it on first login. The identity provider owns profile mutation; this only
// fills the gap for users that authenticated before a profile existed.
func (us *UserService) EnsureUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if profile.UserID == "" {
		profile.UserID = uuid.NewString()
	}

	existing, err := us.GetUserByID(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if profile.CreatedAt == "" {
		profile.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if profile.DisplayName == "" {
		profile.DisplayName = "User"
	}

	if err := us.Dynamo.PutItem(ctx, models.UsersTable, profile); err != nil {
		log.Printf("❌ Failed to create profile for %s: %v", profile.UserID, err)
		return nil, fmt.Errorf("failed to create user profile: %w", err)
	}

	us.profileCache.SetDefault(profile.UserID, profile)
	return &profile, nil
}

// SearchUsers returns users whose display name or email contains the term,
// case-insensitively, always excluding the session user. An empty term
// returns everyone else. The store has no text search, so the filter runs
// client-side over a scan.
func (us *UserService) SearchUsers(ctx context.Context, term string) ([]models.UserProfile, error) {
	items, err := us.Dynamo.ScanItems(ctx, models.UsersTable)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	var profiles []models.UserProfile
	if err := attributevalue.UnmarshalListOfMaps(items, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal users: %w", err)
	}

	currentID := ""
	if user := us.Session.CurrentUser(); user != nil {
		currentID = user.UserID
	}

	needle := strings.ToLower(strings.TrimSpace(term))
	matches := make([]models.UserProfile, 0, len(profiles))
	for _, profile := range profiles {
		if profile.UserID == currentID {
			continue
		}
		if needle == "" ||
			strings.Contains(strings.ToLower(profile.DisplayName), needle) ||
			strings.Contains(strings.ToLower(profile.Email), needle) {
			matches = append(matches, profile)
		}
	}
	return matches, nil
}
