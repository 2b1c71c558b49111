package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bolbol-az/bolbol/internal/pkg/goerror"
	"github.com/bolbol-az/bolbol/internal/user/entity"
)

type UserDetailInput struct {
	ID int64 `validate:"required,gt=0"`
}

type UserDetailOutput struct {
	User entity.User
}

// UserDetail returns the public profile for a user ID.
func (s *Usecase) UserDetail(ctx context.Context, in UserDetailInput) (*UserDetailOutput, error) {
	ctx, span := s.startSpan(ctx, "UserDetail")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("User with the specified ID was not found.", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &UserDetailOutput{User: *user}, nil
}
