package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bolbol-az/bolbol/internal/pkg/goerror"
	"github.com/bolbol-az/bolbol/internal/user/entity"
)

func TestUserDetail(t *testing.T) {
	uc := newTestUsecase(t, &stubRepoDB{
		getByID: func(_ context.Context, id int64) (*entity.User, error) {
			return &entity.User{ID: id, Phone: "994501234567", FullName: "Aysel", IsActive: true}, nil
		},
	})

	out, err := uc.UserDetail(context.Background(), UserDetailInput{ID: 42})
	require.NoError(t, err)
	require.Equal(t, int64(42), out.User.ID)
	require.Equal(t, "994501234567", out.User.Phone)
	require.Equal(t, "Aysel", out.User.FullName)
}

func TestUserDetailInvalidID(t *testing.T) {
	uc := newTestUsecase(t, &stubRepoDB{})

	for _, id := range []int64{0, -1} {
		_, err := uc.UserDetail(context.Background(), UserDetailInput{ID: id})
		gerr := asGoError(t, err)
		require.Equal(t, http.StatusBadRequest, gerr.StatusCode())
	}
}

func TestUserDetailNotFound(t *testing.T) {
	uc := newTestUsecase(t, &stubRepoDB{
		getByID: func(context.Context, int64) (*entity.User, error) {
			return nil, goerror.ErrNotFound
		},
	})

	_, err := uc.UserDetail(context.Background(), UserDetailInput{ID: 42})

	gerr := asGoError(t, err)
	require.Equal(t, "User with the specified ID was not found.", gerr.Msg())
	require.Equal(t, http.StatusNotFound, gerr.StatusCode())
}

func TestUserDetailRepoFailure(t *testing.T) {
	uc := newTestUsecase(t, &stubRepoDB{
		getByID: func(context.Context, int64) (*entity.User, error) {
			return nil, errors.New("connection refused")
		},
	})

	_, err := uc.UserDetail(context.Background(), UserDetailInput{ID: 42})

	gerr := asGoError(t, err)
	require.Equal(t, http.StatusInternalServerError, gerr.StatusCode())
}
