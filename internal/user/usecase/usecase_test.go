package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bolbol-az/bolbol/internal/pkg/clock"
	"github.com/bolbol-az/bolbol/internal/pkg/config"
	"github.com/bolbol-az/bolbol/internal/pkg/goerror"
	"github.com/bolbol-az/bolbol/internal/pkg/instrument"
	"github.com/bolbol-az/bolbol/internal/pkg/validator"
	"github.com/bolbol-az/bolbol/internal/user/entity"
)

type stubRepoDB struct {
	getByID func(ctx context.Context, id int64) (*entity.User, error)
	patch   func(ctx context.Context, in entity.PatchUser) (*entity.User, error)
}

func (s *stubRepoDB) GetUserByID(ctx context.Context, id int64) (*entity.User, error) {
	return s.getByID(ctx, id)
}

func (s *stubRepoDB) PatchUser(ctx context.Context, in entity.PatchUser) (*entity.User, error) {
	return s.patch(ctx, in)
}

func newTestUsecase(t *testing.T, repo *stubRepoDB) *Usecase {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("modules:\n  user:\n    enabled: true\n"))
	require.NoError(t, err)

	v10, err := validator.NewV10Validator()
	require.NoError(t, err)

	return New(Dependency{
		RepoDB:     repo,
		Validator:  v10,
		Config:     cfg,
		Clock:      clock.New(),
		Instrument: instrument.NewNoop(),
	})
}

func asGoError(t *testing.T, err error) *goerror.Error {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	return gerr
}

func strPtr(s string) *string { return &s }
