package inbound

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolbol-az/bolbol/internal/auth/usecase"
	"github.com/bolbol-az/bolbol/internal/pkg/router"
)

type stubUsecase struct {
	sendOTP      func(ctx context.Context, in usecase.SendOTPInput) error
	verifyOTP    func(ctx context.Context, in usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error)
	refreshToken func(ctx context.Context, in usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error)
}

func (s *stubUsecase) SendOTP(ctx context.Context, in usecase.SendOTPInput) error {
	return s.sendOTP(ctx, in)
}

func (s *stubUsecase) VerifyOTP(ctx context.Context, in usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error) {
	return s.verifyOTP(ctx, in)
}

func (s *stubUsecase) RefreshToken(ctx context.Context, in usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	return s.refreshToken(ctx, in)
}

func callEndpoint(t *testing.T, h router.Handler, body string) (any, error) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return h(&router.Request{Request: req})
}

func TestSendOTPEndpoint(t *testing.T) {
	var gotPhone string
	end := &HTTPEndpoint{uc: &stubUsecase{
		sendOTP: func(_ context.Context, in usecase.SendOTPInput) error {
			gotPhone = in.Phone
			return nil
		},
	}}

	resp, err := callEndpoint(t, end.SendOTP, `{"phone_number":"994501234567"}`)
	require.NoError(t, err)

	assert.Equal(t, "994501234567", gotPhone)
	assert.Equal(t, SendOTPResponse{Message: "OTP sent successfully!"}, resp)
}

func TestSendOTPEndpointMalformedBody(t *testing.T) {
	end := &HTTPEndpoint{uc: &stubUsecase{}}

	_, err := callEndpoint(t, end.SendOTP, `{"phone_number":`)
	require.Error(t, err)
}

func TestSendOTPEndpointMissingField(t *testing.T) {
	// An absent phone_number reaches the usecase as an empty string so the
	// usecase owns the error message.
	var gotPhone string
	end := &HTTPEndpoint{uc: &stubUsecase{
		sendOTP: func(_ context.Context, in usecase.SendOTPInput) error {
			gotPhone = in.Phone
			return nil
		},
	}}

	_, err := callEndpoint(t, end.SendOTP, `{}`)
	require.NoError(t, err)
	assert.Empty(t, gotPhone)
}

func TestVerifyOTPEndpoint(t *testing.T) {
	end := &HTTPEndpoint{uc: &stubUsecase{
		verifyOTP: func(_ context.Context, in usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error) {
			assert.Equal(t, "994501234567", in.Phone)
			assert.Equal(t, "123456", in.Code)
			return &usecase.VerifyOTPOutput{
				UserID:       42,
				Created:      true,
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
			}, nil
		},
	}}

	resp, err := callEndpoint(t, end.VerifyOTP, `{"phone_number":"994501234567","otp_code":"123456"}`)
	require.NoError(t, err)

	assert.Equal(t, VerifyOTPResponse{
		Detail:  "OTP verified successfully!",
		UserID:  42,
		Access:  "access-token",
		Refresh: "refresh-token",
	}, resp)
}

func TestRefreshTokenEndpoint(t *testing.T) {
	end := &HTTPEndpoint{uc: &stubUsecase{
		refreshToken: func(_ context.Context, in usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
			assert.Equal(t, "old-refresh", in.RefreshToken)
			return &usecase.RefreshTokenOutput{
				AccessToken:  "new-access",
				RefreshToken: "new-refresh",
			}, nil
		},
	}}

	resp, err := callEndpoint(t, end.RefreshToken, `{"refresh":"old-refresh"}`)
	require.NoError(t, err)

	assert.Equal(t, RefreshTokenResponse{
		Access:  "new-access",
		Refresh: "new-refresh",
	}, resp)
}
