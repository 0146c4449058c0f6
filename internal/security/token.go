package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrWrongTokenType = errors.New("wrong token type for this endpoint")
)

// TokenType distinguishes the two parallel identity schemes: a primary
// account holder authenticated through the hosted session, and a per-tenant
// local credential authenticated separately.
type TokenType string

const (
	TokenTypeAccount     TokenType = "account"
	TokenTypeTenantLocal TokenType = "tenant_local"
)

// Claims defines the standard claims carried by both token schemes.
type Claims struct {
	UserID   int32     `json:"user_id"`
	Email    string    `json:"email,omitempty"`
	Type     TokenType `json:"type"`
	TenantID int32     `json:"tenant_id,omitempty"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	GenerateAccountToken(userID int32, email string) (string, error)
	GenerateTenantLocalToken(userID, tenantID int32) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type tokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
	}
}

func (m *tokenManager) GenerateAccountToken(userID int32, email string) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		Type:   TokenTypeAccount,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(userID)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(8 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "rentadesk",
			Audience:  jwt.ClaimStrings{"backoffice"},
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) GenerateTenantLocalToken(userID, tenantID int32) (string, error) {
	claims := Claims{
		UserID:   userID,
		Type:     TokenTypeTenantLocal,
		TenantID: tenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(userID)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(8 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "rentadesk",
			Audience:  jwt.ClaimStrings{"backoffice"},
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != TokenTypeAccount && claims.Type != TokenTypeTenantLocal {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}
