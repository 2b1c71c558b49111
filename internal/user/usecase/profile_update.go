package usecase

import (
	"context"
	"errors"
	"log/slog"

	authentity "github.com/bolbol-az/bolbol/internal/auth/entity"
	"github.com/bolbol-az/bolbol/internal/pkg/goerror"
	"github.com/bolbol-az/bolbol/internal/user/entity"
)

type ProfileUpdateInput struct {
	Phone    *string `validate:"omitempty,azphone"`
	FullName *string `validate:"omitempty,min=1,max=255"`
	Email    *string `validate:"omitempty,email"`
}

type ProfileUpdateOutput struct {
	User entity.User
}

// ProfileUpdate applies a partial update to the authenticated user's profile.
func (s *Usecase) ProfileUpdate(ctx context.Context, in ProfileUpdateInput) (*ProfileUpdateOutput, error) {
	ctx, span := s.startSpan(ctx, "ProfileUpdate")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if in.Phone != nil {
		normalized := authentity.NormalizePhone(*in.Phone)
		in.Phone = &normalized
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.PatchUser(ctx, entity.PatchUser{
		ID:       clm.UserID,
		Phone:    in.Phone,
		FullName: in.FullName,
		Email:    in.Email,
	})
	if errors.Is(err, goerror.ErrConflict) {
		return nil, goerror.NewBusiness("Phone number or email already in use", goerror.CodeConflict)
	}
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("User with the specified ID was not found.", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo patch user", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProfileUpdateOutput{User: *user}, nil
}
