package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bolbol-az/bolbol/internal/auth/entity"
	"github.com/bolbol-az/bolbol/internal/pkg/cache"
	"github.com/bolbol-az/bolbol/internal/pkg/config"
	"github.com/bolbol-az/bolbol/internal/pkg/goerror"
	"github.com/bolbol-az/bolbol/internal/pkg/goroutine"
	"github.com/bolbol-az/bolbol/internal/pkg/instrument"
	"github.com/bolbol-az/bolbol/internal/pkg/jwt"
	"github.com/bolbol-az/bolbol/internal/pkg/uid"
	"github.com/bolbol-az/bolbol/internal/pkg/validator"
)

const testConfigYAML = `
modules:
  auth:
    otp_length: 6
    otp_ttl_seconds: 300
    otp_cooldown_seconds: 120
    otp_attempt_limit: 5
    otp_attempt_window_hours: 24
`

const testPhone = "994501234567"

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type stubRepoDB struct {
	findOrCreate func(ctx context.Context, in entity.NewUser) (*entity.User, bool, error)
}

func (s *stubRepoDB) FindOrCreateUserByPhone(ctx context.Context, in entity.NewUser) (*entity.User, bool, error) {
	return s.findOrCreate(ctx, in)
}

type stubMessaging struct {
	mu        sync.Mutex
	published []OTPRequestedEvent
	err       error
}

func (s *stubMessaging) PublishOTPRequested(_ context.Context, msg OTPRequestedEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published = append(s.published, msg)
	return s.err
}

func (s *stubMessaging) Published() []OTPRequestedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]OTPRequestedEvent(nil), s.published...)
}

type staticUID struct{ id int64 }

func (s staticUID) Generate() int64 { return s.id }

type fixture struct {
	uc        *Usecase
	cache     *cache.Memory
	clock     *fakeClock
	messaging *stubMessaging
	repoDB    *stubRepoDB
	goroutine *goroutine.Manager
	jwt       jwt.JWT
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	require.NoError(t, err)

	v10, err := validator.NewV10Validator()
	require.NoError(t, err)

	clk := newFakeClock()

	tokenizer, err := jwt.NewHS512(jwt.Config{
		Secret:     []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"),
		Issuer:     "bolbol-test",
		Audiences:  []string{"bolbol-test"},
		AccessTTL:  time.Hour,
		RefreshTTL: 7 * 24 * time.Hour,
		Clock:      clk,
		UUID:       uid.NewUUID(),
	})
	require.NoError(t, err)

	f := &fixture{
		cache:     cache.NewMemory(clk),
		clock:     clk,
		messaging: &stubMessaging{},
		goroutine: goroutine.NewManager(10),
		jwt:       tokenizer,
		repoDB: &stubRepoDB{
			findOrCreate: func(_ context.Context, in entity.NewUser) (*entity.User, bool, error) {
				return &entity.User{ID: in.ID, Phone: in.Phone, IsActive: true}, true, nil
			},
		},
	}

	f.uc = New(Dependency{
		RepoDB:        f.repoDB,
		RepoMessaging: f.messaging,
		Cache:         f.cache,
		Validator:     v10,
		Config:        cfg,
		UID:           staticUID{id: 42},
		Clock:         clk,
		JWT:           f.jwt,
		Instrument:    instrument.NewNoop(),
		Goroutine:     f.goroutine,
	})

	return f
}

func asGoError(t *testing.T, err error) *goerror.Error {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	return gerr
}

func requireBusinessError(t *testing.T, err error, wantMsg string, wantStatus int) {
	t.Helper()

	gerr := asGoError(t, err)
	require.Equal(t, wantMsg, gerr.Msg())
	require.Equal(t, wantStatus, gerr.StatusCode())
}
