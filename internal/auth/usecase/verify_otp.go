package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bolbol-az/bolbol/internal/auth/entity"
	"github.com/bolbol-az/bolbol/internal/pkg/cache"
	"github.com/bolbol-az/bolbol/internal/pkg/goerror"
)

type VerifyOTPInput struct {
	Phone string
	Code  string
}

type VerifyOTPOutput struct {
	UserID       int64
	Created      bool
	AccessToken  string
	RefreshToken string
}

// VerifyOTP checks the submitted code against the stored one and, on match,
// signs the caller in, creating the account on first login.
func (s *Usecase) VerifyOTP(ctx context.Context, in VerifyOTPInput) (*VerifyOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyOTP")
	defer span.End()

	if in.Phone == "" || in.Code == "" {
		return nil, goerror.NewBusiness("Phone number and OTP code are required.", goerror.CodeInvalidInput)
	}

	phone := entity.NormalizePhone(in.Phone)
	if err := entity.ValidatePhone(phone); err != nil {
		return nil, goerror.NewBusiness(err.Error(), goerror.CodeInvalidInput)
	}

	otpKey := entity.OTPKey(phone)
	stored, err := s.cache.Get(ctx, otpKey)
	if errors.Is(err, cache.ErrMiss) {
		slog.WarnContext(ctx, "otp missing or expired", "phone", phone)
		return nil, goerror.NewBusiness("OTP has expired or is invalid. Please request a new one.", goerror.CodeInvalidInput)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to read otp code", "phone", phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	// A mismatch keeps the stored code so the caller can retry until it
	// expires, matching the send-side quota semantics.
	if stored != in.Code {
		slog.WarnContext(ctx, "otp mismatch", "phone", phone)
		return nil, goerror.NewBusiness("Invalid OTP. Please try again.", goerror.CodeInvalidInput)
	}

	user, created, err := s.repoDB.FindOrCreateUserByPhone(ctx, entity.NewUser{
		ID:    s.uid.Generate(),
		Phone: phone,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to find or create user", "phone", phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.cache.Delete(ctx, entity.OTPAttemptsKey(phone)); err != nil {
		slog.WarnContext(ctx, "failed to clear otp attempt counter", "phone", phone, "error", err)
	}
	if err := s.cache.Delete(ctx, otpKey); err != nil {
		slog.WarnContext(ctx, "failed to clear otp code", "phone", phone, "error", err)
	}

	pair, err := s.jwt.GeneratePair(user.ID, user.Phone)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate token pair", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if created {
		slog.InfoContext(ctx, "user account created on first login", "user_id", user.ID)
	}

	return &VerifyOTPOutput{
		UserID:       user.ID,
		Created:      created,
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
	}, nil
}
