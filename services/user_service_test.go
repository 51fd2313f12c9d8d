package services

import (
	"context"
	"testing"

	"moviematch_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture() (*memoryStore, *SessionService, *UserService) {
	store := newMemoryStore()
	session := NewSessionService()
	users := NewUserService(store, session)
	return store, session, users
}

func TestSearchUsersSubstringFilter(t *testing.T) {
	ctx := context.Background()
	store, session, users := newUserFixture()
	seedProfile(t, store, "user-alice", "Alice")
	seedProfile(t, store, "user-bob", "Bob")
	seedProfile(t, store, "user-carol", "Carol")
	signInTestUser(session, "user-carol")

	matches, err := users.SearchUsers(ctx, "ali")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Alice", matches[0].DisplayName)

	// Case-insensitive, matches email too.
	matches, err = users.SearchUsers(ctx, "USER-BOB@")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Bob", matches[0].DisplayName)
}

func TestSearchUsersEmptyTermReturnsEveryoneElse(t *testing.T) {
	ctx := context.Background()
	store, session, users := newUserFixture()
	seedProfile(t, store, "user-alice", "Alice")
	seedProfile(t, store, "user-bob", "Bob")
	seedProfile(t, store, "user-carol", "Carol")
	signInTestUser(session, "user-carol")

	matches, err := users.SearchUsers(ctx, "")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	for _, profile := range matches {
		assert.NotEqual(t, "user-carol", profile.UserID)
	}
}

func TestSearchUsersPropagatesStoreError(t *testing.T) {
	ctx := context.Background()
	store, _, users := newUserFixture()

	store.setFailReads(true)
	_, err := users.SearchUsers(ctx, "any")
	assert.ErrorIs(t, err, errStoreUnavailable)
}

func TestGetUserByIDMissingProfile(t *testing.T) {
	ctx := context.Background()
	_, _, users := newUserFixture()

	profile, err := users.GetUserByID(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, profile)
}

func TestGetUserByIDCachesLookups(t *testing.T) {
	ctx := context.Background()
	store, _, users := newUserFixture()
	seedProfile(t, store, "user-alice", "Alice")

	first, err := users.GetUserByID(ctx, "user-alice")
	require.NoError(t, err)
	require.NotNil(t, first)

	// Delete the backing record; the cached profile is still served.
	require.NoError(t, store.DeleteItem(ctx, models.UsersTable, map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: "user-alice"},
	}))

	second, err := users.GetUserByID(ctx, "user-alice")
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.DisplayName, second.DisplayName)
}

func TestEnsureUserProfileCreatesOnFirstLogin(t *testing.T) {
	ctx := context.Background()
	_, _, users := newUserFixture()

	created, err := users.EnsureUserProfile(ctx, models.UserProfile{
		UserID:      "user-new",
		DisplayName: "Newcomer",
		Email:       "new@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.CreatedAt)

	// A second login returns the stored profile unchanged.
	again, err := users.EnsureUserProfile(ctx, models.UserProfile{
		UserID:      "user-new",
		DisplayName: "Renamed",
	})
	require.NoError(t, err)
	assert.Equal(t, "Newcomer", again.DisplayName)
	assert.Equal(t, created.CreatedAt, again.CreatedAt)
}

func TestEnsureUserProfileGeneratesID(t *testing.T) {
	ctx := context.Background()
	_, _, users := newUserFixture()

	created, err := users.EnsureUserProfile(ctx, models.UserProfile{DisplayName: "Anon"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.UserID)
}
