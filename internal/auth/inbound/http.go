package inbound

import (
	"context"

	"github.com/bolbol-az/bolbol/internal/auth/usecase"
	"github.com/bolbol-az/bolbol/internal/pkg/router"
)

type uc interface {
	SendOTP(ctx context.Context, in usecase.SendOTPInput) error
	VerifyOTP(ctx context.Context, in usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error)
	RefreshToken(ctx context.Context, in usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/auth/login/send-otp", end.SendOTP)
	r.POST("/api/v1/auth/login/verify-otp", end.VerifyOTP)
	r.POST("/api/v1/token/refresh", end.RefreshToken)
}
