package auth

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bolbol-az/bolbol/internal/auth/inbound"
	"github.com/bolbol-az/bolbol/internal/auth/outbound/db"
	"github.com/bolbol-az/bolbol/internal/auth/outbound/mq"
	"github.com/bolbol-az/bolbol/internal/auth/usecase"
	"github.com/bolbol-az/bolbol/internal/pkg/cache"
	"github.com/bolbol-az/bolbol/internal/pkg/clock"
	"github.com/bolbol-az/bolbol/internal/pkg/config"
	"github.com/bolbol-az/bolbol/internal/pkg/goroutine"
	"github.com/bolbol-az/bolbol/internal/pkg/instrument"
	"github.com/bolbol-az/bolbol/internal/pkg/jwt"
	"github.com/bolbol-az/bolbol/internal/pkg/messaging"
	"github.com/bolbol-az/bolbol/internal/pkg/router"
	"github.com/bolbol-az/bolbol/internal/pkg/uid"
	"github.com/bolbol-az/bolbol/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Cache      cache.Cache                `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbAuth,
		RepoMessaging: repoMsg,
		Cache:         dep.Cache,
		Validator:     dep.Validator,
		Config:        dep.Config,
		UID:           dep.UID,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
