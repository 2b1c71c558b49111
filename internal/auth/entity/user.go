package entity

// User is the account attached to a verified phone number.
type User struct {
	ID       int64
	Phone    string
	FullName string
	Email    string
	IsActive bool
}

// NewUser carries the fields needed to create an account on first login.
type NewUser struct {
	ID    int64
	Phone string
}
