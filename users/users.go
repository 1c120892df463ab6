// users is a single-responsibility example: a registration workflow where
// validation, persistence, notification and audit logging each live behind
// their own interface, so the service owns orchestration and nothing else.
package users

import "time"

// User is the domain entity. It carries data only.
type User struct {
	Username string
	Email    string
	Created  time.Time
}

// New returns a User stamped with the current time.
func New(username, email string) *User {
	return &User{
		Username: username,
		Email:    email,
		Created:  time.Now(),
	}
}
