package jwt

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClock struct {
	mu  sync.Mutex
	now time.Time
}

func newStubClock() *stubClock {
	return &stubClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *stubClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stubClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type stubUUID struct{}

func (stubUUID) Generate() string { return "test-token-id" }

var testSecret = []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")

func newTestJWT(t *testing.T, clk *stubClock) *Symmetric {
	t.Helper()

	s, err := NewHS512(Config{
		Secret:     testSecret,
		Issuer:     "bolbol-test",
		Audiences:  []string{"bolbol-test"},
		AccessTTL:  time.Hour,
		RefreshTTL: 7 * 24 * time.Hour,
		Clock:      clk,
		UUID:       stubUUID{},
	})
	require.NoError(t, err)
	return s
}

func TestNewHS512ShortSecret(t *testing.T) {
	_, err := NewHS512(Config{Secret: []byte("too-short")})
	assert.ErrorIs(t, err, ErrSigningKeyTooShort)
}

func TestGeneratePairAndVerify(t *testing.T) {
	clk := newStubClock()
	s := newTestJWT(t, clk)

	pair, err := s.GeneratePair(42, "994501234567")
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)
	require.NotEqual(t, pair.Access, pair.Refresh)

	claims, err := s.VerifyAccess(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "994501234567", claims.UserPhone)
	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.Equal(t, "42", claims.Subject)

	claims, err = s.VerifyRefresh(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
}

func TestVerifyRejectsWrongTokenType(t *testing.T) {
	s := newTestJWT(t, newStubClock())

	pair, err := s.GeneratePair(42, "994501234567")
	require.NoError(t, err)

	_, err = s.VerifyAccess(pair.Refresh)
	assert.ErrorIs(t, err, ErrInvalidTokenType)

	_, err = s.VerifyRefresh(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestVerifyExpired(t *testing.T) {
	clk := newStubClock()
	s := newTestJWT(t, clk)

	pair, err := s.GeneratePair(42, "994501234567")
	require.NoError(t, err)

	clk.Advance(time.Hour + time.Minute)
	_, err = s.VerifyAccess(pair.Access)
	assert.ErrorIs(t, err, ErrTokenExpired)

	// The refresh token outlives the access token.
	_, err = s.VerifyRefresh(pair.Refresh)
	assert.NoError(t, err)

	clk.Advance(7 * 24 * time.Hour)
	_, err = s.VerifyRefresh(pair.Refresh)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	clk := newStubClock()
	s := newTestJWT(t, clk)

	other, err := NewHS512(Config{
		Secret:     []byte("anothersecretanothersecretanothersecretanothersecretanothersecret!!"),
		Issuer:     "bolbol-test",
		Audiences:  []string{"bolbol-test"},
		AccessTTL:  time.Hour,
		RefreshTTL: 7 * 24 * time.Hour,
		Clock:      clk,
		UUID:       stubUUID{},
	})
	require.NoError(t, err)

	pair, err := other.GeneratePair(42, "994501234567")
	require.NoError(t, err)

	_, err = s.VerifyAccess(pair.Access)
	assert.Error(t, err)
}

func TestVerifyMalformed(t *testing.T) {
	s := newTestJWT(t, newStubClock())

	_, err := s.VerifyAccess("not-a-token")
	assert.Error(t, err)
}
