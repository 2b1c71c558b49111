package inbound

import (
	"github.com/bolbol-az/bolbol/internal/auth/usecase"
	"github.com/bolbol-az/bolbol/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the phone OTP login workflow.
type HTTPEndpoint struct {
	uc uc
}

// SendOTP requests a one-time code for the given phone number.
func (h *HTTPEndpoint) SendOTP(r *router.Request) (any, error) {
	var req SendOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.SendOTP(r.Context(), usecase.SendOTPInput{Phone: req.PhoneNumber}); err != nil {
		return nil, err
	}

	return SendOTPResponse{Message: "OTP sent successfully!"}, nil
}

// VerifyOTP checks a submitted code and signs the caller in.
func (h *HTTPEndpoint) VerifyOTP(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.VerifyOTP(r.Context(), usecase.VerifyOTPInput{
		Phone: req.PhoneNumber,
		Code:  req.OTPCode,
	})
	if err != nil {
		return nil, err
	}

	return VerifyOTPResponse{
		Detail:  "OTP verified successfully!",
		UserID:  resp.UserID,
		Access:  resp.AccessToken,
		Refresh: resp.RefreshToken,
	}, nil
}

// RefreshToken exchanges a refresh token for a new token pair.
func (h *HTTPEndpoint) RefreshToken(r *router.Request) (any, error) {
	var req RefreshTokenRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.RefreshToken(r.Context(), usecase.RefreshTokenInput{RefreshToken: req.Refresh})
	if err != nil {
		return nil, err
	}

	return RefreshTokenResponse{
		Access:  resp.AccessToken,
		Refresh: resp.RefreshToken,
	}, nil
}
