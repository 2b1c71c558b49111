package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bolbol-az/bolbol/internal/auth/entity"
	"github.com/bolbol-az/bolbol/internal/pkg/cache"
)

func seedOTP(t *testing.T, f *fixture, phone, code string) {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, f.cache.Set(ctx, entity.OTPKey(phone), code, 5*time.Minute))
	require.NoError(t, f.cache.Set(ctx, entity.OTPCooldownKey(phone), "1", 2*time.Minute))
	require.NoError(t, f.cache.Set(ctx, entity.OTPAttemptsKey(phone), "1", 24*time.Hour))
}

func TestVerifyOTP(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedOTP(t, f, testPhone, "123456")

	out, err := f.uc.VerifyOTP(ctx, VerifyOTPInput{Phone: testPhone, Code: "123456"})
	require.NoError(t, err)
	require.Equal(t, int64(42), out.UserID)
	require.True(t, out.Created)

	claims, err := f.jwt.VerifyAccess(out.AccessToken)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, testPhone, claims.UserPhone)

	_, err = f.jwt.VerifyRefresh(out.RefreshToken)
	require.NoError(t, err)

	// The code and the attempt counter are gone, the cooldown runs out on its own.
	_, err = f.cache.Get(ctx, entity.OTPKey(testPhone))
	require.ErrorIs(t, err, cache.ErrMiss)
	_, err = f.cache.Get(ctx, entity.OTPAttemptsKey(testPhone))
	require.ErrorIs(t, err, cache.ErrMiss)
	_, err = f.cache.Get(ctx, entity.OTPCooldownKey(testPhone))
	require.NoError(t, err)
}

func TestVerifyOTPMissingFields(t *testing.T) {
	f := newFixture(t)

	for _, in := range []VerifyOTPInput{
		{},
		{Phone: testPhone},
		{Code: "123456"},
	} {
		_, err := f.uc.VerifyOTP(context.Background(), in)
		requireBusinessError(t, err, "Phone number and OTP code are required.", http.StatusBadRequest)
	}
}

func TestVerifyOTPInvalidPhone(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Phone: "0501234567", Code: "123456"})

	requireBusinessError(t, err,
		"Invalid phone number: 0501234567. It must be in the format 994XXXXXXXXX.",
		http.StatusBadRequest)
}

func TestVerifyOTPConsumesCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedOTP(t, f, testPhone, "123456")

	_, err := f.uc.VerifyOTP(ctx, VerifyOTPInput{Phone: testPhone, Code: "123456"})
	require.NoError(t, err)

	// Replaying the same code after a successful login is rejected.
	_, err = f.uc.VerifyOTP(ctx, VerifyOTPInput{Phone: testPhone, Code: "123456"})
	requireBusinessError(t, err, "OTP has expired or is invalid. Please request a new one.", http.StatusBadRequest)
}

func TestVerifyOTPExpired(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Phone: testPhone, Code: "123456"})

	requireBusinessError(t, err, "OTP has expired or is invalid. Please request a new one.", http.StatusBadRequest)
}

func TestVerifyOTPMismatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedOTP(t, f, testPhone, "123456")

	_, err := f.uc.VerifyOTP(ctx, VerifyOTPInput{Phone: testPhone, Code: "654321"})
	requireBusinessError(t, err, "Invalid OTP. Please try again.", http.StatusBadRequest)

	// The stored code survives a wrong guess.
	stored, err := f.cache.Get(ctx, entity.OTPKey(testPhone))
	require.NoError(t, err)
	require.Equal(t, "123456", stored)

	// A correct retry still succeeds.
	out, err := f.uc.VerifyOTP(ctx, VerifyOTPInput{Phone: testPhone, Code: "123456"})
	require.NoError(t, err)
	require.NotEmpty(t, out.AccessToken)
}

func TestVerifyOTPExistingUser(t *testing.T) {
	f := newFixture(t)
	f.repoDB.findOrCreate = func(_ context.Context, in entity.NewUser) (*entity.User, bool, error) {
		return &entity.User{ID: 7, Phone: in.Phone, IsActive: true}, false, nil
	}
	seedOTP(t, f, testPhone, "123456")

	out, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Phone: testPhone, Code: "123456"})
	require.NoError(t, err)
	require.Equal(t, int64(7), out.UserID)
	require.False(t, out.Created)
}

func TestVerifyOTPRepoFailure(t *testing.T) {
	f := newFixture(t)
	f.repoDB.findOrCreate = func(context.Context, entity.NewUser) (*entity.User, bool, error) {
		return nil, false, errors.New("connection refused")
	}
	seedOTP(t, f, testPhone, "123456")

	_, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Phone: testPhone, Code: "123456"})

	gerr := asGoError(t, err)
	require.Equal(t, http.StatusInternalServerError, gerr.StatusCode())
}
