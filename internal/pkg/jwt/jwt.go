package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidSigningMethod is returned when the JWT signing method is not supported.
	ErrInvalidSigningMethod = errors.New("invalid JWT signing method")

	// ErrSigningKeyTooShort is returned when the HS512 signing key is less than 64 bytes.
	ErrSigningKeyTooShort = errors.New("HS512 signing key must be at least 64 bytes (512 bits)")

	// ErrTokenExpired is returned when the JWT token has expired.
	ErrTokenExpired = errors.New("JWT token has expired")

	// ErrInvalidToken is returned when the token is malformed or fails validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidTokenType is returned when a token of the wrong type is presented,
	// e.g. a refresh token used where an access token is required.
	ErrInvalidTokenType = errors.New("invalid token type")
)

// TokenType discriminates access tokens from refresh tokens.
type TokenType string

const (
	// TokenTypeAccess marks short-lived tokens accepted by protected endpoints.
	TokenTypeAccess TokenType = "access"
	// TokenTypeRefresh marks long-lived tokens accepted only by the refresh flow.
	TokenTypeRefresh TokenType = "refresh"
)

// Pair is an access/refresh token pair issued on successful authentication.
type Pair struct {
	Access  string
	Refresh string
}

// JWT defines the operations needed by the app: issue a token pair and
// verify tokens of either type.
type JWT interface {
	// GeneratePair creates signed access and refresh tokens for the user.
	GeneratePair(uid int64, phone string) (Pair, error)
	// VerifyAccess parses and validates an access token and returns claims.
	VerifyAccess(tokenStr string) (Claims, error)
	// VerifyRefresh parses and validates a refresh token and returns claims.
	VerifyRefresh(tokenStr string) (Claims, error)
}

type clocker interface {
	Now() time.Time
}

type generator interface {
	Generate() string
}

type jwtContextKey struct{}

// Config defines the inputs for building a JWT implementation.
type Config struct {
	// Secret is the HMAC signing key.
	Secret []byte
	// Issuer is the token issuer value.
	Issuer string
	// Audiences are the accepted token audiences.
	Audiences []string
	// AccessTTL is the access token time-to-live.
	AccessTTL time.Duration
	// RefreshTTL is the refresh token time-to-live.
	RefreshTTL time.Duration
	// Clock provides the current time source.
	Clock clocker
	// UUID generates token IDs.
	UUID generator
}

// Claims is a helper for wrapping registered claims with a payload.
type Claims struct {
	// RegisteredClaims holds the standard JWT claims.
	jwt.RegisteredClaims
	// UserID is the authenticated user identifier.
	UserID int64 `json:"user_id,string"`
	// UserPhone is the authenticated user phone number.
	UserPhone string `json:"user_phone"`
	// Type distinguishes access tokens from refresh tokens.
	Type TokenType `json:"token_type"`
}

// GetAuth returns the JWT claims stored in the context, if any.
func GetAuth(ctx context.Context) *Claims {
	clm, ok := ctx.Value(jwtContextKey{}).(Claims)
	if !ok {
		return nil
	}

	return &clm
}

// SetAuth stores JWT claims in the context.
func SetAuth(ctx context.Context, clm Claims) context.Context {
	return context.WithValue(ctx, jwtContextKey{}, clm)
}
