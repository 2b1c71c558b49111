package usecase

import (
	"context"
	"log/slog"

	"github.com/bolbol-az/bolbol/internal/notification/entity"
	"github.com/bolbol-az/bolbol/internal/pkg/sms"
)

type ConsumeOTPRequestedInput struct {
	Phone string `validate:"required,azphone"`
	Code  string `validate:"required,numeric"`
}

// ConsumeOTPRequested delivers a one-time code over SMS and records the
// attempt in the delivery log.
func (s *Usecase) ConsumeOTPRequested(ctx context.Context, in ConsumeOTPRequestedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeOTPRequested")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	text := "Your OTP code is " + in.Code

	logID := s.uid.Generate()
	if err := s.repoDB.CreateDeliveryLog(ctx, entity.CreateDeliveryLog{
		ID:      logID,
		Phone:   in.Phone,
		Message: text,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create delivery log", "phone", in.Phone, "error", err)
		return err
	}

	if err := s.repoSMS.Send(ctx, sms.Message{To: in.Phone, Text: text}); err != nil {
		slog.ErrorContext(ctx, "failed to send otp sms", "phone", in.Phone, "error", err)
		s.markDelivery(ctx, entity.UpdateDeliveryLog{
			ID:     logID,
			Status: entity.DeliveryStatusFailed,
			Error:  err.Error(),
		})
		return err
	}

	s.markDelivery(ctx, entity.UpdateDeliveryLog{
		ID:     logID,
		Status: entity.DeliveryStatusSent,
	})

	return nil
}

func (s *Usecase) markDelivery(ctx context.Context, in entity.UpdateDeliveryLog) {
	if err := s.repoDB.UpdateDeliveryLogStatus(ctx, in); err != nil {
		slog.ErrorContext(ctx, "failed to repo update delivery log", "delivery_log_id", in.ID, "error", err)
	}
}
