package jwt

import (
	"errors"
	"strconv"
	"time"

	libJWT "github.com/golang-jwt/jwt/v5"
)

// Symmetric implements JWT signing and verification using an HMAC secret.
type Symmetric struct {
	secret     []byte
	issuer     string
	audiences  []string
	accessTTL  time.Duration
	refreshTTL time.Duration
	clock      clocker
	uuid       generator
}

// NewHS512 constructs a Symmetric JWT implementation using HS512.
func NewHS512(cfg Config) (*Symmetric, error) {
	if len(cfg.Secret) < 64 {
		return nil, ErrSigningKeyTooShort
	}

	return &Symmetric{
		secret:     cfg.Secret,
		issuer:     cfg.Issuer,
		audiences:  cfg.Audiences,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		clock:      cfg.Clock,
		uuid:       cfg.UUID,
	}, nil
}

// GeneratePair creates signed access and refresh JWTs for the user.
func (s *Symmetric) GeneratePair(uid int64, phone string) (Pair, error) {
	access, err := s.generate(uid, phone, TokenTypeAccess, s.accessTTL)
	if err != nil {
		return Pair{}, err
	}

	refresh, err := s.generate(uid, phone, TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return Pair{}, err
	}

	return Pair{Access: access, Refresh: refresh}, nil
}

func (s *Symmetric) generate(uid int64, phone string, typ TokenType, ttl time.Duration) (string, error) {
	now := s.clock.Now()

	if len(s.secret) < 64 {
		return "", ErrSigningKeyTooShort
	}

	return libJWT.
		NewWithClaims(libJWT.SigningMethodHS512, Claims{
			RegisteredClaims: libJWT.RegisteredClaims{
				ID:        s.uuid.Generate(),
				Subject:   strconv.FormatInt(uid, 10),
				Issuer:    s.issuer,
				Audience:  s.audiences,
				IssuedAt:  libJWT.NewNumericDate(now),
				NotBefore: libJWT.NewNumericDate(now),
				ExpiresAt: libJWT.NewNumericDate(now.Add(ttl)),
			},
			UserID:    uid,
			UserPhone: phone,
			Type:      typ,
		}).
		SignedString(s.secret)
}

// VerifyAccess parses and validates an access token.
func (s *Symmetric) VerifyAccess(tokenStr string) (Claims, error) {
	return s.verify(tokenStr, TokenTypeAccess)
}

// VerifyRefresh parses and validates a refresh token.
func (s *Symmetric) VerifyRefresh(tokenStr string) (Claims, error) {
	return s.verify(tokenStr, TokenTypeRefresh)
}

func (s *Symmetric) verify(tokenStr string, typ TokenType) (Claims, error) {
	var claims Claims

	if len(s.secret) < 64 {
		return Claims{}, ErrSigningKeyTooShort
	}

	token, err := libJWT.ParseWithClaims(tokenStr, &claims,
		func(t *libJWT.Token) (any, error) {
			if t.Method != libJWT.SigningMethodHS512 {
				return nil, ErrInvalidSigningMethod
			}
			return s.secret, nil
		},
		libJWT.WithIssuer(s.issuer),
		libJWT.WithAudience(s.audiences...),
		libJWT.WithValidMethods([]string{libJWT.SigningMethodHS512.Alg()}),
		libJWT.WithIssuedAt(),
		libJWT.WithExpirationRequired(),
		libJWT.WithTimeFunc(s.clock.Now),
	)

	if err != nil {
		if errors.Is(err, libJWT.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, err
	}

	if !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	if claims.Type != typ {
		return Claims{}, ErrInvalidTokenType
	}

	return claims, nil
}
