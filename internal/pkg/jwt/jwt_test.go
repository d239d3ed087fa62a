package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("test-secret", time.Hour)

	token, err := svc.GenerateToken(42, "made@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "made@example.com", claims.Email)
}

func TestValidate_WrongSecret(t *testing.T) {
	token, _ := New("secret-a", time.Hour).GenerateToken(1, "x@example.com")

	_, err := New("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	token, _ := New("test-secret", -time.Minute).GenerateToken(1, "x@example.com")

	_, err := New("test-secret", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}
