package auth

import (
	"testing"

	"comanda/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	assert.NotEqual(t, "StrongPass123!", hash)

	assert.True(t, hasher.Check("StrongPass123!", hash))
	assert.False(t, hasher.Check("WrongPassword", hash))
	assert.False(t, hasher.Check("StrongPass123!", ""))
}

func TestBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{"nil config", nil, bcrypt.DefaultCost},
		{"configured cost", &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}, 5},
		{"too low", &config.Config{Auth: &config.AuthConfig{BcryptCost: 1}}, bcrypt.DefaultCost},
		{"too high", &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}, bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	cost, err := bcrypt.Cost([]byte(first))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}
