package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/bolbol-az/bolbol/internal/notification/usecase"
	"github.com/bolbol-az/bolbol/internal/pkg/instrument"
	"github.com/bolbol-az/bolbol/internal/pkg/messaging"
	"github.com/bolbol-az/bolbol/internal/pkg/uid"
	"github.com/bolbol-az/bolbol/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type uc interface {
	ConsumeOTPRequested(ctx context.Context, in usecase.ConsumeOTPRequestedInput) error
}

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, headers []messaging.Header) context.Context {
	for i := range headers {
		if headers[i].Key == keyOfCorrelationID {
			return instrument.SetCorrelationID(ctx, string(headers[i].Value))
		}
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) OTPRequestedNotification(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "OTPRequestedNotification")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: otp requested notification", "msg_body", string(body))

	var payload event.OTPRequestedMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of otp requested notification", "msg_id", msg.ID(), "error", err)
		return nil
	}

	if err := h.uc.ConsumeOTPRequested(ctx, usecase.ConsumeOTPRequestedInput{
		Phone: payload.Phone,
		Code:  payload.Code,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume otp requested", "msg_id", msg.ID(), "error", err)
		return err
	}

	return nil
}
