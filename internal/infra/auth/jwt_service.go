// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"comanda/config"
	"comanda/internal/domain/entity"
	"comanda/internal/domain/service"
	"comanda/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "comanda"

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret      []byte
	customerTTL time.Duration
	staffTTL    time.Duration
	deliveryTTL time.Duration
	now         func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.Auth == nil {
		return nil, errors.New("auth configuration must be provided")
	}

	return &jwtService{
		secret:      []byte(cfg.SecretKey.JWT),
		customerTTL: cfg.Auth.CustomerTokenTTL,
		staffTTL:    cfg.Auth.StaffTokenTTL,
		deliveryTTL: cfg.Auth.DeliveryTokenTTL,
		now:         time.Now,
	}, nil
}

// IssueToken signs the claims with a lifetime picked from the role.
func (s *jwtService) IssueToken(claims service.Claims) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttlFor(claims.Role))

	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   claims.UserID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

// ValidateToken parses the token and rejects any signing method other than HS256.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if !claims.Role.IsValid() {
		return nil, errors.Errorf("invalid role %q in token", claims.Role)
	}

	return claims, nil
}

func (s *jwtService) ttlFor(role entity.Role) time.Duration {
	switch role {
	case entity.RoleCustomer:
		return s.customerTTL
	case entity.RoleDelivery:
		return s.deliveryTTL
	default:
		return s.staffTTL
	}
}
