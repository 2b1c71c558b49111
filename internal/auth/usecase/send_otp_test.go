package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bolbol-az/bolbol/internal/auth/entity"
)

func TestSendOTP(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.uc.SendOTP(ctx, SendOTPInput{Phone: testPhone})
	require.NoError(t, err)

	code, err := f.cache.Get(ctx, entity.OTPKey(testPhone))
	require.NoError(t, err)
	require.Len(t, code, 6)

	ttl, ok := f.cache.TTL(entity.OTPKey(testPhone))
	require.True(t, ok)
	require.Equal(t, 5*time.Minute, ttl)

	ttl, ok = f.cache.TTL(entity.OTPCooldownKey(testPhone))
	require.True(t, ok)
	require.Equal(t, 2*time.Minute, ttl)

	attempts, err := f.cache.Get(ctx, entity.OTPAttemptsKey(testPhone))
	require.NoError(t, err)
	require.Equal(t, "1", attempts)

	require.NoError(t, f.goroutine.Wait())
	published := f.messaging.Published()
	require.Len(t, published, 1)
	require.Equal(t, testPhone, published[0].Phone)
	require.Equal(t, code, published[0].Code)
}

func TestSendOTPNormalizesPhone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.uc.SendOTP(ctx, SendOTPInput{Phone: "+994 50-123-45-67"})
	require.NoError(t, err)

	_, err = f.cache.Get(ctx, entity.OTPKey(testPhone))
	require.NoError(t, err)
}

func TestSendOTPMissingPhone(t *testing.T) {
	f := newFixture(t)

	err := f.uc.SendOTP(context.Background(), SendOTPInput{})

	requireBusinessError(t, err, "Phone number is required", http.StatusBadRequest)
}

func TestSendOTPInvalidPhone(t *testing.T) {
	f := newFixture(t)

	err := f.uc.SendOTP(context.Background(), SendOTPInput{Phone: "79991234567"})

	requireBusinessError(t, err,
		"Invalid phone number: 79991234567. It must be in the format 994XXXXXXXXX.",
		http.StatusBadRequest)
}

func TestSendOTPCooldown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.uc.SendOTP(ctx, SendOTPInput{Phone: testPhone}))

	err := f.uc.SendOTP(ctx, SendOTPInput{Phone: testPhone})
	requireBusinessError(t, err, "Too many OTP requests. Please try again later.", http.StatusTooManyRequests)

	// The cooldown expires and a resend goes through.
	f.clock.Advance(2*time.Minute + time.Second)
	require.NoError(t, f.uc.SendOTP(ctx, SendOTPInput{Phone: testPhone}))

	attempts, err := f.cache.Get(ctx, entity.OTPAttemptsKey(testPhone))
	require.NoError(t, err)
	require.Equal(t, "2", attempts)
}

func TestSendOTPAttemptWindowRolls(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.uc.SendOTP(ctx, SendOTPInput{Phone: testPhone}))

	// The quota window counts from the most recent send, not the first.
	f.clock.Advance(2*time.Minute + time.Second)
	require.NoError(t, f.uc.SendOTP(ctx, SendOTPInput{Phone: testPhone}))

	ttl, ok := f.cache.TTL(entity.OTPAttemptsKey(testPhone))
	require.True(t, ok)
	require.Equal(t, 24*time.Hour, ttl)
}

func TestSendOTPQuotaExceeded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cache.Set(ctx, entity.OTPAttemptsKey(testPhone), "5", 24*time.Hour))

	err := f.uc.SendOTP(ctx, SendOTPInput{Phone: testPhone})

	requireBusinessError(t, err, "You have exceeded the maximum number of OTP attempts.", http.StatusTooManyRequests)

	// No code was issued for the blocked request.
	_, err = f.cache.Get(ctx, entity.OTPKey(testPhone))
	require.Error(t, err)
}

func TestSendOTPCooldownCheckedBeforeQuota(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cache.Set(ctx, entity.OTPCooldownKey(testPhone), "1", 2*time.Minute))
	require.NoError(t, f.cache.Set(ctx, entity.OTPAttemptsKey(testPhone), "5", 24*time.Hour))

	err := f.uc.SendOTP(ctx, SendOTPInput{Phone: testPhone})

	requireBusinessError(t, err, "Too many OTP requests. Please try again later.", http.StatusTooManyRequests)
}
