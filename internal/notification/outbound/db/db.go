package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bolbol-az/bolbol/internal/notification/entity"
	"github.com/bolbol-az/bolbol/internal/pkg/goerror"
	"github.com/bolbol-az/bolbol/internal/pkg/instrument"
)

type DB struct {
	conn *pgxpool.Pool
	ins  instrument.Instrumentation
}

func NewDB(conn *pgxpool.Pool, ins instrument.Instrumentation) *DB {
	return &DB{
		conn: conn,
		ins:  ins,
	}
}

func (s *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return goerror.ErrNotFound
	}

	return err
}

func (s *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.outbound.db").Start(ctx, name)
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

const queryCreateDeliveryLog = `
INSERT INTO sms_delivery_logs (id, phone_number, message, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
`

func (s *DB) CreateDeliveryLog(ctx context.Context, in entity.CreateDeliveryLog) (err error) {
	ctx, span := s.startSpan(ctx, "CreateDeliveryLog")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateDeliveryLog, in.ID, in.Phone, in.Message, entity.DeliveryStatusQueued.String())
	return s.mapError(err)
}

const queryUpdateDeliveryLog = `
UPDATE sms_delivery_logs
SET status = $2, error = NULLIF($3, ''), updated_at = now()
WHERE id = $1
`

func (s *DB) UpdateDeliveryLogStatus(ctx context.Context, in entity.UpdateDeliveryLog) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateDeliveryLogStatus")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, queryUpdateDeliveryLog, in.ID, in.Status.String(), in.Error)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
