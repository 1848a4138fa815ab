package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTStrategy implements session token creation/verification using HS256 JWTs.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
}

type sessionClaims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &JWTStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates a signed expiring token for the user.
func (s *JWTStrategy) IssueToken(userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: userID,
	})

	return token.SignedString(s.secret)
}

// ParseToken validates token and returns encoded user ID.
func (s *JWTStrategy) ParseToken(token string) (int64, error) {
	claims := &sessionClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}

	if claims.UserID <= 0 {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}
