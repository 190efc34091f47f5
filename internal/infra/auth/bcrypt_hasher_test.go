package auth

import (
	"testing"

	"expo/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	hash, err := hasher.Hash("1908")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "1908", hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check("1908", hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	hash, err := hasher.Hash("1908")
	assert.NoError(t, err)

	assert.True(t, hasher.Check("1908", hash))
	assert.False(t, hasher.Check("0000", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("1908", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Payment: &config.PaymentConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("1908")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_IgnoresInvalidCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Payment: &config.PaymentConfig{BcryptCost: 99}})

	hash, err := hasher.Hash("1908")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
