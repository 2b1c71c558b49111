package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bolbol-az/bolbol/internal/pkg/goerror"
	"github.com/bolbol-az/bolbol/internal/pkg/jwt"
	"github.com/bolbol-az/bolbol/internal/user/entity"
)

func authCtx(userID int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: userID, UserPhone: "994501234567"})
}

func TestProfileUpdate(t *testing.T) {
	var gotPatch entity.PatchUser
	uc := newTestUsecase(t, &stubRepoDB{
		patch: func(_ context.Context, in entity.PatchUser) (*entity.User, error) {
			gotPatch = in
			return &entity.User{
				ID:       in.ID,
				Phone:    *in.Phone,
				FullName: *in.FullName,
				IsActive: true,
			}, nil
		},
	})

	out, err := uc.ProfileUpdate(authCtx(42), ProfileUpdateInput{
		Phone:    strPtr("+994 50-765-43-21"),
		FullName: strPtr("Aysel M"),
	})
	require.NoError(t, err)

	require.Equal(t, int64(42), gotPatch.ID)
	require.Equal(t, "994507654321", *gotPatch.Phone) // normalized before persisting
	require.Equal(t, "Aysel M", *gotPatch.FullName)
	require.Nil(t, gotPatch.Email)
	require.Equal(t, "994507654321", out.User.Phone)
}

func TestProfileUpdateUnauthenticated(t *testing.T) {
	uc := newTestUsecase(t, &stubRepoDB{})

	_, err := uc.ProfileUpdate(context.Background(), ProfileUpdateInput{FullName: strPtr("Aysel")})

	gerr := asGoError(t, err)
	require.Equal(t, "Authentication required", gerr.Msg())
	require.Equal(t, http.StatusUnauthorized, gerr.StatusCode())
}

func TestProfileUpdateInvalidInput(t *testing.T) {
	uc := newTestUsecase(t, &stubRepoDB{})

	tests := []ProfileUpdateInput{
		{Phone: strPtr("12345")},
		{Email: strPtr("not-an-email")},
		{FullName: strPtr("")},
	}

	for _, in := range tests {
		_, err := uc.ProfileUpdate(authCtx(42), in)
		gerr := asGoError(t, err)
		require.Equal(t, http.StatusBadRequest, gerr.StatusCode(), "input=%+v", in)
	}
}

func TestProfileUpdateConflict(t *testing.T) {
	uc := newTestUsecase(t, &stubRepoDB{
		patch: func(context.Context, entity.PatchUser) (*entity.User, error) {
			return nil, goerror.ErrConflict
		},
	})

	_, err := uc.ProfileUpdate(authCtx(42), ProfileUpdateInput{Phone: strPtr("994507654321")})

	gerr := asGoError(t, err)
	require.Equal(t, "Phone number or email already in use", gerr.Msg())
	require.Equal(t, http.StatusConflict, gerr.StatusCode())
}

func TestProfileUpdateNotFound(t *testing.T) {
	uc := newTestUsecase(t, &stubRepoDB{
		patch: func(context.Context, entity.PatchUser) (*entity.User, error) {
			return nil, goerror.ErrNotFound
		},
	})

	_, err := uc.ProfileUpdate(authCtx(42), ProfileUpdateInput{FullName: strPtr("Aysel")})

	gerr := asGoError(t, err)
	require.Equal(t, http.StatusNotFound, gerr.StatusCode())
}
