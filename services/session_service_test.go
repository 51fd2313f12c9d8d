package services

import (
	"testing"

	"moviematch_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSignInAndOut(t *testing.T) {
	session := NewSessionService()
	require.Nil(t, session.CurrentUser())

	session.SignIn(&models.UserProfile{UserID: "user-a"})
	require.NotNil(t, session.CurrentUser())
	assert.Equal(t, "user-a", session.CurrentUser().UserID)

	session.SignOut()
	assert.Nil(t, session.CurrentUser())
}

func TestAuthStateListenersObserveTransitions(t *testing.T) {
	session := NewSessionService()

	var transitions []string
	session.OnAuthStateChanged(func(user *models.UserProfile) {
		if user == nil {
			transitions = append(transitions, "signed-out")
		} else {
			transitions = append(transitions, user.UserID)
		}
	})

	session.SignIn(&models.UserProfile{UserID: "user-a"})
	session.SignIn(&models.UserProfile{UserID: "user-b"})
	session.SignOut()

	assert.Equal(t, []string{"user-a", "user-b", "signed-out"}, transitions)
}
