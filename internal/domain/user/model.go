package user

// User represents an application account.
// Maps to the users table.
type User struct {
	ID             int64  `json:"id" db:"id"`
	Email          string `json:"email" db:"email"`
	HashedPassword string `json:"-" db:"hashed_password"`
	IsActive       bool   `json:"is_active" db:"is_active"`
}
