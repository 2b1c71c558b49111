package usecase

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/bolbol-az/bolbol/internal/auth/entity"
	"github.com/bolbol-az/bolbol/internal/pkg/cache"
	"github.com/bolbol-az/bolbol/internal/pkg/clock"
	"github.com/bolbol-az/bolbol/internal/pkg/config"
	"github.com/bolbol-az/bolbol/internal/pkg/goroutine"
	"github.com/bolbol-az/bolbol/internal/pkg/instrument"
	"github.com/bolbol-az/bolbol/internal/pkg/jwt"
	"github.com/bolbol-az/bolbol/internal/pkg/uid"
	"github.com/bolbol-az/bolbol/internal/pkg/validator"
)

type OTPRequestedEvent struct {
	Phone string
	Code  string
}

type repoMessaging interface {
	PublishOTPRequested(ctx context.Context, msg OTPRequestedEvent) error
}

type repoDB interface {
	FindOrCreateUserByPhone(ctx context.Context, in entity.NewUser) (*entity.User, bool, error)
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	cache         cache.Cache
	validator     validator.Validator
	cfg           config.Config
	uid           uid.NumberID
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Cache         cache.Cache
	Validator     validator.Validator
	Config        config.Config
	UID           uid.NumberID
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		cache:         dep.Cache,
		validator:     dep.Validator,
		cfg:           dep.Config,
		uid:           dep.UID,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.usecase").Start(ctx, name)
}
