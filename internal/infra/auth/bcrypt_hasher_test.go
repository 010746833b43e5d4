package auth

import (
	"testing"

	"plantcare/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	password := "secret1"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	first, err := hasher.Hash("secret1")
	assert.NoError(t, err)
	second, err := hasher.Hash("secret1")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(nil)
	password := "secret1"

	// Generate hash
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("secret2", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_CostFloor(t *testing.T) {
	tests := []struct {
		name       string
		configured int
		want       int
	}{
		{"below floor is raised", 4, minBcryptCost},
		{"floor is kept", 10, 10},
		{"higher cost is kept", 11, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: tt.configured}})

			hash, err := hasher.Hash("secret1")
			assert.NoError(t, err)

			// Verify the hash uses the correct cost
			cost, err := bcrypt.Cost([]byte(hash))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, cost)
		})
	}
}
