package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	userID := uuid.New()

	raw, err := m.Issue(userID)
	require.NoError(t, err)

	parsed, err := m.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issued, err := NewTokenManager("secret", time.Hour).Issue(uuid.New())
	require.NoError(t, err)

	_, err = NewTokenManager("other", time.Hour).Parse(issued)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	m := NewTokenManager("secret", -time.Minute)
	raw, err := m.Issue(uuid.New())
	require.NoError(t, err)

	_, err = m.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	_, err := m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
