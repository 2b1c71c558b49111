package db

import (
	"context"

	"github.com/bolbol-az/bolbol/internal/user/entity"
)

const queryGetUserByID = `
SELECT id, phone_number, COALESCE(full_name, ''), COALESCE(email, ''), is_active, updated_at
FROM users
WHERE id = $1
`

func (s *DB) GetUserByID(ctx context.Context, id int64) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	var user entity.User
	err = s.conn.QueryRow(ctx, queryGetUserByID, id).
		Scan(&user.ID, &user.Phone, &user.FullName, &user.Email, &user.IsActive, &user.UpdatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &user, nil
}
