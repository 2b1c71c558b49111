package inbound

import (
	"github.com/bolbol-az/bolbol/internal/pkg/router"
	"github.com/bolbol-az/bolbol/internal/user/usecase"
)

// HTTPEndpoint exposes HTTP handlers for user profiles.
type HTTPEndpoint struct {
	uc uc
}

// UserDetail returns the public profile of a user by ID.
func (h *HTTPEndpoint) UserDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.UserDetail(r.Context(), usecase.UserDetailInput{ID: id})
	if err != nil {
		return nil, err
	}

	return UserResponse{
		PhoneNumber: resp.User.Phone,
		FullName:    resp.User.FullName,
		Email:       resp.User.Email,
		IsActive:    resp.User.IsActive,
	}, nil
}

// ProfileUpdate partially updates the authenticated user's profile.
func (h *HTTPEndpoint) ProfileUpdate(r *router.Request) (any, error) {
	var req ProfileUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.ProfileUpdate(r.Context(), usecase.ProfileUpdateInput{
		Phone:    req.PhoneNumber,
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return nil, err
	}

	return UserResponse{
		PhoneNumber: resp.User.Phone,
		FullName:    resp.User.FullName,
		Email:       resp.User.Email,
		IsActive:    resp.User.IsActive,
	}, nil
}
