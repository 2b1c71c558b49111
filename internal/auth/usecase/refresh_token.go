package usecase

import (
	"context"
	"log/slog"

	"github.com/bolbol-az/bolbol/internal/pkg/goerror"
)

type RefreshTokenInput struct {
	RefreshToken string `validate:"required"`
}

type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// RefreshToken exchanges a valid refresh token for a fresh token pair.
func (s *Usecase) RefreshToken(ctx context.Context, in RefreshTokenInput) (*RefreshTokenOutput, error) {
	ctx, span := s.startSpan(ctx, "RefreshToken")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	claims, err := s.jwt.VerifyRefresh(in.RefreshToken)
	if err != nil {
		slog.WarnContext(ctx, "refresh token rejected", "error", err)
		return nil, goerror.NewBusiness("Invalid or expired refresh token", goerror.CodeUnauthorized)
	}

	pair, err := s.jwt.GeneratePair(claims.UserID, claims.UserPhone)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate token pair", "user_id", claims.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RefreshTokenOutput{
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
	}, nil
}
