package token

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	manager := NewJWT("test-secret")
	userID := uuid.New()

	tokenString, err := manager.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	parsedID, err := manager.ParseToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestJWT_ParseToken_WrongSecret(t *testing.T) {
	manager := NewJWT("test-secret")
	other := NewJWT("other-secret")

	tokenString, err := manager.GenerateToken(uuid.New())
	require.NoError(t, err)

	parsedID, err := other.ParseToken(tokenString)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}

func TestJWT_ParseToken_Garbage(t *testing.T) {
	manager := NewJWT("test-secret")

	parsedID, err := manager.ParseToken("not.a.token")
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}
