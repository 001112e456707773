package jwt

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/pointage/timeclock-backend-go/internal/domain/user"
)

type Service interface {
	GenerateAccessToken(userID string, email string, role user.Role) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID string) (token string, expiresAt int64, err error)
	// GenerateKioskToken issues a device-scoped token handed out after the
	// shared kiosk password gate. It carries no user identity.
	GenerateKioskToken(stationID string, expiration time.Duration) (token string, expiresAt int64, err error)
	ValidateKioskToken(tokenString string) (stationID string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
	revokedTokens              map[string]int64
	mu                         sync.RWMutex
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:              make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID string, email string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id": userID,
		"email":   email,
		"role":    string(role),
		"type":    "access",
		"exp":     expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(userID string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	// The jti keeps two tokens issued in the same second distinct, so
	// revoking one never revokes the other.
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"exp":     expiresAt,
		"type":    "refresh",
		"jti":     uuid.NewString(),
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateKioskToken(stationID string, expiration time.Duration) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(expiration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"station_id": stationID,
		"exp":        expiresAt,
		"type":       "kiosk",
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) ValidateKioskToken(tokenString string) (string, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", err
	}

	claims, err := token.AsMap(context.Background())
	if err != nil {
		return "", err
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "kiosk" {
		return "", errors.New("not a kiosk token")
	}

	stationID, ok := claims["station_id"].(string)
	if !ok || stationID == "" {
		return "", errors.New("station_id claim is missing")
	}

	return stationID, nil
}

// ParseClaims verifies the token against the service keyset and returns its
// claims. Expired tokens fail verification in jwtauth, so callers only see
// claims from tokens that are still valid.
func ParseClaims(s Service, tokenString string) (map[string]interface{}, error) {
	token, err := jwtauth.VerifyToken(s.JWTAuth(), tokenString)
	if err != nil {
		return nil, err
	}
	return token.AsMap(context.Background())
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
}

// RevokeToken stores the token in the in-memory denylist until its natural
// expiry. Durable revocation lives in the refresh_tokens table; this catches
// access tokens logged out mid-lifetime.
func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}
