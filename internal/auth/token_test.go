package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cdms/internal/model"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret")

	user := &model.User{
		ID:    "11111111-1111-1111-1111-111111111111",
		Email: "a@x.com",
	}

	token, err := tm.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.ID, claims.Subject)
}

func TestTokenManager_ExpiryBoundary(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tm := NewTokenManager("test-secret")
	tm.now = func() time.Time { return issued }

	token, err := tm.Issue(&model.User{ID: "user-id", Email: "a@x.com"})
	require.NoError(t, err)

	t.Run("accepted six days after issue", func(t *testing.T) {
		tm.now = func() time.Time { return issued.Add(6 * 24 * time.Hour) }

		claims, err := tm.Verify(token)
		assert.NoError(t, err)
		assert.NotNil(t, claims)
	})

	t.Run("rejected eight days after issue", func(t *testing.T) {
		tm.now = func() time.Time { return issued.Add(8 * 24 * time.Hour) }

		claims, err := tm.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})
}

func TestTokenManager_RejectsForeignSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a").Issue(&model.User{ID: "user-id", Email: "a@x.com"})
	require.NoError(t, err)

	claims, err := NewTokenManager("secret-b").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret")

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		claims, err := tm.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	}
}
