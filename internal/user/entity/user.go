package entity

import "time"

// User is a public account profile.
type User struct {
	ID        int64
	Phone     string
	FullName  string
	Email     string
	IsActive  bool
	UpdatedAt time.Time
}

// PatchUser carries the optional fields of a partial profile update.
// Nil pointers leave the column untouched.
type PatchUser struct {
	ID       int64
	Phone    *string
	FullName *string
	Email    *string
}
