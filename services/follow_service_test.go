package services

import (
	"context"
	"testing"

	"moviematch_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFollowFixture() (*memoryStore, *SessionService, *FollowService) {
	store := newMemoryStore()
	session := NewSessionService()
	users := NewUserService(store, session)
	follow := &FollowService{Dynamo: store, Session: session, Users: users}
	return store, session, follow
}

func seedProfile(t *testing.T, store *memoryStore, userID, displayName string) {
	t.Helper()
	require.NoError(t, store.PutItem(context.Background(), models.UsersTable, models.UserProfile{
		UserID:      userID,
		DisplayName: displayName,
		Email:       userID + "@example.com",
	}))
}

func TestFollowThenIsFollowing(t *testing.T) {
	ctx := context.Background()
	_, session, follow := newFollowFixture()
	signInTestUser(session, "user-a")

	require.False(t, follow.IsFollowing(ctx, "user-b"))
	require.NoError(t, follow.Follow(ctx, "user-b"))
	assert.True(t, follow.IsFollowing(ctx, "user-b"))

	require.NoError(t, follow.Unfollow(ctx, "user-b"))
	assert.False(t, follow.IsFollowing(ctx, "user-b"))
}

func TestSelfFollowRejected(t *testing.T) {
	ctx := context.Background()
	_, session, follow := newFollowFixture()
	signInTestUser(session, "user-a")

	assert.ErrorIs(t, follow.Follow(ctx, "user-a"), ErrSelfFollow)
	assert.Zero(t, follow.GetFollowCounts(ctx, "user-a").Following)
}

func TestFollowRequiresSession(t *testing.T) {
	ctx := context.Background()
	_, _, follow := newFollowFixture()

	assert.ErrorIs(t, follow.Follow(ctx, "user-b"), ErrUnauthenticated)
	assert.ErrorIs(t, follow.Unfollow(ctx, "user-b"), ErrUnauthenticated)
	assert.False(t, follow.IsFollowing(ctx, "user-b"))
}

func TestUnfollowMissingEdgeIsNoop(t *testing.T) {
	ctx := context.Background()
	_, session, follow := newFollowFixture()
	signInTestUser(session, "user-a")

	assert.NoError(t, follow.Unfollow(ctx, "user-never-followed"))
}

func TestFollowIsIdempotent(t *testing.T) {
	ctx := context.Background()
	_, session, follow := newFollowFixture()
	signInTestUser(session, "user-a")

	require.NoError(t, follow.Follow(ctx, "user-b"))
	require.NoError(t, follow.Follow(ctx, "user-b"))

	assert.Equal(t, 1, follow.GetFollowCounts(ctx, "").Following)
}

func TestFollowCountsAfterFollowsAndUnfollow(t *testing.T) {
	ctx := context.Background()
	_, session, follow := newFollowFixture()
	signInTestUser(session, "user-a")

	require.NoError(t, follow.Follow(ctx, "user-b"))
	require.NoError(t, follow.Follow(ctx, "user-c"))
	require.NoError(t, follow.Follow(ctx, "user-d"))
	require.NoError(t, follow.Unfollow(ctx, "user-d"))

	// Empty userID defaults to the session user.
	counts := follow.GetFollowCounts(ctx, "")
	assert.Equal(t, 2, counts.Following)
	assert.Zero(t, counts.Followers)

	assert.Equal(t, 1, follow.GetFollowCounts(ctx, "user-b").Followers)
	assert.Zero(t, follow.GetFollowCounts(ctx, "user-d").Followers)
}

func TestGetFollowingResolvesProfiles(t *testing.T) {
	ctx := context.Background()
	store, session, follow := newFollowFixture()
	signInTestUser(session, "user-a")
	seedProfile(t, store, "user-b", "Bea")
	seedProfile(t, store, "user-c", "Cal")

	require.NoError(t, follow.Follow(ctx, "user-b"))
	require.NoError(t, follow.Follow(ctx, "user-c"))

	following := follow.GetFollowing(ctx, "")
	require.Len(t, following, 2)
	names := []string{following[0].DisplayName, following[1].DisplayName}
	assert.ElementsMatch(t, []string{"Bea", "Cal"}, names)
}

func TestGetFollowingSkipsUnresolvableProfiles(t *testing.T) {
	ctx := context.Background()
	store, session, follow := newFollowFixture()
	signInTestUser(session, "user-a")
	seedProfile(t, store, "user-b", "Bea")

	require.NoError(t, follow.Follow(ctx, "user-b"))
	require.NoError(t, follow.Follow(ctx, "user-ghost")) // no profile exists

	following := follow.GetFollowing(ctx, "")
	require.Len(t, following, 1)
	assert.Equal(t, "user-b", following[0].UserID)
}

func TestGetFollowersQueriesReverseEdges(t *testing.T) {
	ctx := context.Background()
	store, session, follow := newFollowFixture()
	seedProfile(t, store, "user-a", "Ada")
	seedProfile(t, store, "user-b", "Bea")

	signInTestUser(session, "user-a")
	require.NoError(t, follow.Follow(ctx, "user-b"))
	signInTestUser(session, "user-b")
	require.NoError(t, follow.Follow(ctx, "user-a"))

	followers := follow.GetFollowers(ctx, "user-b")
	require.Len(t, followers, 1)
	assert.Equal(t, "user-a", followers[0].UserID)
}

func TestGetFollowersFailSafeEmpty(t *testing.T) {
	ctx := context.Background()
	store, session, follow := newFollowFixture()
	signInTestUser(session, "user-a")

	store.setFailReads(true)
	assert.Empty(t, follow.GetFollowers(ctx, ""))
	assert.Empty(t, follow.GetFollowing(ctx, ""))
	assert.Zero(t, follow.GetFollowCounts(ctx, "").Followers)
}
