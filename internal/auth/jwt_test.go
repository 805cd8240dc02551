package auth

import (
	"testing"
	"time"

	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := m.Issue(&domain.User{ID: "u1", Role: domain.RoleAdmin})
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, string(domain.RoleAdmin), claims.Role)
}

func TestManager_Parse_WrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)

	token, err := issuer.Issue(&domain.User{ID: "u1", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Parse_Expired(t *testing.T) {
	m := NewManager("secret", -time.Minute)

	token, err := m.Issue(&domain.User{ID: "u1", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Parse_Garbage(t *testing.T) {
	m := NewManager("secret", time.Hour)

	_, err := m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
