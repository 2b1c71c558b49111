package db

import (
	"context"
	"errors"

	"github.com/bolbol-az/bolbol/internal/auth/entity"
	"github.com/bolbol-az/bolbol/internal/pkg/goerror"
)

const queryInsertUser = `
INSERT INTO users (id, phone_number, is_active, created_at, updated_at)
VALUES ($1, $2, TRUE, now(), now())
ON CONFLICT (phone_number) DO NOTHING
RETURNING id, phone_number, COALESCE(full_name, ''), COALESCE(email, ''), is_active
`

const queryGetUserByPhone = `
SELECT id, phone_number, COALESCE(full_name, ''), COALESCE(email, ''), is_active
FROM users
WHERE phone_number = $1
`

// FindOrCreateUserByPhone returns the account owning phone, creating it when
// none exists. The second result reports whether a new row was inserted.
func (s *DB) FindOrCreateUserByPhone(ctx context.Context, in entity.NewUser) (_ *entity.User, created bool, err error) {
	ctx, span := s.startSpan(ctx, "FindOrCreateUserByPhone")
	defer func() { s.endSpan(span, err) }()

	var user entity.User
	err = s.conn.QueryRow(ctx, queryInsertUser, in.ID, in.Phone).
		Scan(&user.ID, &user.Phone, &user.FullName, &user.Email, &user.IsActive)
	if err == nil {
		return &user, true, nil
	}

	// DO NOTHING yields no row on conflict, so an existing account lands
	// here and is read back.
	if mapped := s.mapError(err); !errors.Is(mapped, goerror.ErrNotFound) {
		return nil, false, mapped
	}

	err = s.conn.QueryRow(ctx, queryGetUserByPhone, in.Phone).
		Scan(&user.ID, &user.Phone, &user.FullName, &user.Email, &user.IsActive)
	if err != nil {
		return nil, false, s.mapError(err)
	}

	return &user, false, nil
}
