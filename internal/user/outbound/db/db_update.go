package db

import (
	"context"

	"github.com/bolbol-az/bolbol/internal/user/entity"
)

const queryPatchUser = `
UPDATE users
SET phone_number = COALESCE($2, phone_number),
    full_name    = COALESCE($3, full_name),
    email        = COALESCE($4, email),
    updated_at   = now()
WHERE id = $1
RETURNING id, phone_number, COALESCE(full_name, ''), COALESCE(email, ''), is_active, updated_at
`

func (s *DB) PatchUser(ctx context.Context, in entity.PatchUser) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "PatchUser")
	defer func() { s.endSpan(span, err) }()

	var user entity.User
	err = s.conn.QueryRow(ctx, queryPatchUser, in.ID, in.Phone, in.FullName, in.Email).
		Scan(&user.ID, &user.Phone, &user.FullName, &user.Email, &user.IsActive, &user.UpdatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &user, nil
}
