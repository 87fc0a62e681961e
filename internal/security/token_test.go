package security

import (
	"testing"

	"carshowroom-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-0123456789abcdef0123456789"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 24)

	token, err := tm.Generate(3, "anita@example.com", domain.UserTypeCustomer)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tm.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, int32(3), claims.UserID)
	assert.Equal(t, "anita@example.com", claims.Email)
	assert.Equal(t, domain.UserTypeCustomer, claims.UserType)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, 24)
	other := NewTokenManager("another-secret-0123456789abcdef01234", 24)

	token, err := tm.Generate(3, "anita@example.com", domain.UserTypeCustomer)
	assert.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := NewTokenManager(testSecret, 24)

	_, err := tm.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
