package inbound

import (
	"context"

	"github.com/bolbol-az/bolbol/internal/pkg/router"
	"github.com/bolbol-az/bolbol/internal/user/usecase"
)

type uc interface {
	UserDetail(ctx context.Context, in usecase.UserDetailInput) (*usecase.UserDetailOutput, error)
	ProfileUpdate(ctx context.Context, in usecase.ProfileUpdateInput) (*usecase.ProfileUpdateOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/users/:id", end.UserDetail)
	r.PATCH("/api/v1/users/me", end.ProfileUpdate) // need authenticated
}
