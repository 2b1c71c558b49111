package sms

import (
	"context"

	"go.opentelemetry.io/otel/codes"

	"github.com/bolbol-az/bolbol/internal/pkg/instrument"
	pkgsms "github.com/bolbol-az/bolbol/internal/pkg/sms"
)

type SMS struct {
	client pkgsms.SMS
	ins    instrument.Instrumentation
}

func New(client pkgsms.SMS, ins instrument.Instrumentation) *SMS {
	return &SMS{client: client, ins: ins}
}

func (m *SMS) Send(ctx context.Context, msg pkgsms.Message) error {
	ctx, span := m.ins.Tracer("notification.outbound.sms").Start(ctx, "Send")
	defer span.End()

	if err := m.client.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
