package auth

import (
	"testing"
	"time"

	"comanda/config"
	"comanda/internal/domain/entity"
	"comanda/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			CustomerTokenTTL: 30 * 24 * time.Hour,
			StaffTokenTTL:    7 * 24 * time.Hour,
			DeliveryTokenTTL: 7 * 24 * time.Hour,
		},
	}
	cfg.SecretKey.JWT = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	concrete, ok := svc.(*jwtService)
	require.True(t, ok)

	return concrete
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)
}

func TestJWTService_StaffTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService(t, "test_secret_key_very_long_for_testing")
	restaurantID := uuid.New()
	userID := uuid.New()

	token, expiresAt, err := svc.IssueToken(service.Claims{
		UserID:       userID,
		Email:        "admin@example.com",
		Name:         "Admin",
		Role:         entity.RoleAdmin,
		RestaurantID: &restaurantID,
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, time.Minute)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	require.NotNil(t, claims.RestaurantID)
	assert.Equal(t, restaurantID, *claims.RestaurantID)
	assert.False(t, claims.IsSuperAdmin)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_TTLByRole(t *testing.T) {
	svc := newTestJWTService(t, "secret")
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	tests := []struct {
		role entity.Role
		want time.Duration
	}{
		{entity.RoleCustomer, 30 * 24 * time.Hour},
		{entity.RoleAdmin, 7 * 24 * time.Hour},
		{entity.RoleEmployee, 7 * 24 * time.Hour},
		{entity.RoleDelivery, 7 * 24 * time.Hour},
		{entity.RoleSuperAdmin, 7 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			_, expiresAt, err := svc.IssueToken(service.Claims{UserID: uuid.New(), Role: tt.role})
			require.NoError(t, err)
			assert.Equal(t, fixed.Add(tt.want), expiresAt)
		})
	}
}

func TestJWTService_SuperAdminClaim(t *testing.T) {
	svc := newTestJWTService(t, "secret")

	token, _, err := svc.IssueToken(service.Claims{
		UserID:       uuid.New(),
		Role:         entity.RoleSuperAdmin,
		IsSuperAdmin: true,
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsSuperAdmin)
	_, ok := claims.TenantID()
	assert.False(t, ok)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t, "secret")

	_, err := svc.ValidateToken("invalid.token.string")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuerSvc := newTestJWTService(t, "secret-one")
	otherSvc := newTestJWTService(t, "secret-two")

	token, _, err := issuerSvc.IssueToken(service.Claims{UserID: uuid.New(), Role: entity.RoleCustomer})
	require.NoError(t, err)

	_, err = otherSvc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, "secret")
	svc.now = func() time.Time { return time.Now().Add(-31 * 24 * time.Hour) }

	token, _, err := svc.IssueToken(service.Claims{UserID: uuid.New(), Role: entity.RoleCustomer})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc := newTestJWTService(t, "secret")

	claims := &service.Claims{UserID: uuid.New(), Role: entity.RoleAdmin}
	claims.Issuer = issuer
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(unsigned)
	assert.Error(t, err)
}
