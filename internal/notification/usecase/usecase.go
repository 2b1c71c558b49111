package usecase

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/bolbol-az/bolbol/internal/notification/entity"
	"github.com/bolbol-az/bolbol/internal/pkg/clock"
	"github.com/bolbol-az/bolbol/internal/pkg/config"
	"github.com/bolbol-az/bolbol/internal/pkg/instrument"
	"github.com/bolbol-az/bolbol/internal/pkg/sms"
	"github.com/bolbol-az/bolbol/internal/pkg/uid"
	"github.com/bolbol-az/bolbol/internal/pkg/validator"
)

type repoDB interface {
	CreateDeliveryLog(ctx context.Context, in entity.CreateDeliveryLog) error
	UpdateDeliveryLogStatus(ctx context.Context, in entity.UpdateDeliveryLog) error
}

type repoSMS interface {
	Send(ctx context.Context, msg sms.Message) error
}

type Usecase struct {
	repoDB    repoDB
	repoSMS   repoSMS
	cfg       config.Config
	uid       uid.NumberID
	clock     clock.Clocker
	validator validator.Validator
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	RepoSMS    repoSMS
	Config     config.Config
	UID        uid.NumberID
	Clock      clock.Clocker
	Validator  validator.Validator
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		repoSMS:   dep.RepoSMS,
		cfg:       dep.Config,
		uid:       dep.UID,
		clock:     dep.Clock,
		validator: dep.Validator,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.usecase").Start(ctx, name)
}
