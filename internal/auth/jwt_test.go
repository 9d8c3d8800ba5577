package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	token, err := m.Generate("employee1", "Ivan Petrov", "employee")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "employee1", claims.Subject)
	assert.Equal(t, "Ivan Petrov", claims.Name)
	assert.Equal(t, "employee", claims.Role)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).Generate("employee1", "", "employee")
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)

	token, err := m.Generate("employee1", "", "employee")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}
