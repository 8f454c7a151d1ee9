package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/storelane/auth-service/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storelane/auth-service/internal/auth/domain"
)

type TokenGenerator interface {
	Generate(user *domain.User) (string, time.Time, error)
	GetTokenExpiry() time.Duration
	Verify(tokenString string) (*JWTCustomClaims, error)
}

type TokenService struct {
	Secret      string
	Issuer      string
	Audience    string
	TokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func NewTokenService(secret, issuer, audience string, expiryMinutes int) *TokenService {
	return &TokenService{
		Secret:      secret,
		Issuer:      issuer,
		Audience:    audience,
		TokenExpiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

// Generate signs a session token for the user. Expiry is always issuance time
// plus the configured TTL.
func (ts *TokenService) Generate(user *domain.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.TokenExpiry)

	claims := JWTCustomClaims{
		Email: user.Email,
		Name:  user.DisplayName(),
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    ts.Issuer,
			Audience:  jwt.ClaimStrings{ts.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

func (ts *TokenService) GetTokenExpiry() time.Duration {
	return ts.TokenExpiry
}

// Verify parses and validates the given token string.
func (ts *TokenService) Verify(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
