package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/bolbol-az/bolbol/internal/auth/entity"
	"github.com/bolbol-az/bolbol/internal/pkg/cache"
	"github.com/bolbol-az/bolbol/internal/pkg/goerror"
)

type SendOTPInput struct {
	Phone string
}

// SendOTP generates a one-time code for the phone number and dispatches it
// over SMS, subject to a resend cooldown and a rolling send quota.
func (s *Usecase) SendOTP(ctx context.Context, in SendOTPInput) error {
	ctx, span := s.startSpan(ctx, "SendOTP")
	defer span.End()

	if in.Phone == "" {
		return goerror.NewBusiness("Phone number is required", goerror.CodeInvalidInput)
	}

	phone := entity.NormalizePhone(in.Phone)
	if err := entity.ValidatePhone(phone); err != nil {
		return goerror.NewBusiness(err.Error(), goerror.CodeInvalidInput)
	}

	cooldownKey := entity.OTPCooldownKey(phone)
	if _, err := s.cache.Get(ctx, cooldownKey); err == nil {
		slog.WarnContext(ctx, "otp requested during cooldown", "phone", phone)
		return goerror.NewBusiness("Too many OTP requests. Please try again later.", goerror.CodeTooManyRequest)
	} else if !errors.Is(err, cache.ErrMiss) {
		slog.ErrorContext(ctx, "failed to read otp cooldown", "phone", phone, "error", err)
		return goerror.NewServer(err)
	}

	attempts, err := s.getAttempts(ctx, phone)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read otp attempt counter", "phone", phone, "error", err)
		return goerror.NewServer(err)
	}
	if attempts >= s.cfg.GetInt64("modules.auth.otp_attempt_limit") {
		slog.WarnContext(ctx, "otp send quota exceeded", "phone", phone, "attempts", attempts)
		return goerror.NewBusiness("You have exceeded the maximum number of OTP attempts.", goerror.CodeTooManyRequest)
	}

	// Claiming the cooldown key atomically makes a concurrent duplicate
	// request lose the race instead of sending a second code.
	acquired, err := s.cache.SetNX(ctx, cooldownKey, "1", s.cfg.GetSecond("modules.auth.otp_cooldown_seconds"))
	if err != nil {
		slog.ErrorContext(ctx, "failed to acquire otp cooldown", "phone", phone, "error", err)
		return goerror.NewServer(err)
	}
	if !acquired {
		slog.WarnContext(ctx, "otp requested during cooldown", "phone", phone)
		return goerror.NewBusiness("Too many OTP requests. Please try again later.", goerror.CodeTooManyRequest)
	}

	code, err := entity.GenerateOTPCode(s.cfg.GetInt("modules.auth.otp_length"))
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp code", "phone", phone, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.cache.Set(ctx, entity.OTPKey(phone), code, s.cfg.GetSecond("modules.auth.otp_ttl_seconds")); err != nil {
		slog.ErrorContext(ctx, "failed to store otp code", "phone", phone, "error", err)
		return goerror.NewServer(err)
	}

	if _, err := s.cache.Incr(ctx, entity.OTPAttemptsKey(phone), s.cfg.GetHour("modules.auth.otp_attempt_window_hours")); err != nil {
		slog.ErrorContext(ctx, "failed to bump otp attempt counter", "phone", phone, "error", err)
		return goerror.NewServer(err)
	}

	// SMS dispatch must not block or fail the request.
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.repoMessaging.PublishOTPRequested(ctx, OTPRequestedEvent{Phone: phone, Code: code}); err != nil {
			slog.ErrorContext(ctx, "failed to publish otp requested event", "phone", phone, "error", err)
			return err
		}
		return nil
	})

	return nil
}

func (s *Usecase) getAttempts(ctx context.Context, phone string) (int64, error) {
	val, err := s.cache.Get(ctx, entity.OTPAttemptsKey(phone))
	if errors.Is(err, cache.ErrMiss) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	attempts, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, err
	}
	return attempts, nil
}
