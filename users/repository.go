package users

import "errors"

var (
	// ErrNotFound is returned when no user exists under the given username.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate is returned when saving a username that already exists.
	ErrDuplicate = errors.New("user already exists")
)

// Repository is the persistence seam. The example keeps everything in
// memory; a database-backed implementation would slot in without touching
// the service.
type Repository interface {
	Save(user *User) error
	Update(user *User) error
	Find(username string) (*User, error)
}

// MemoryRepository stores users in a map keyed by username.
// Not safe for concurrent use.
type MemoryRepository struct {
	users map[string]*User
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*User)}
}

func (r *MemoryRepository) Save(user *User) error {
	if _, ok := r.users[user.Username]; ok {
		return ErrDuplicate
	}
	r.users[user.Username] = user
	return nil
}

func (r *MemoryRepository) Update(user *User) error {
	if _, ok := r.users[user.Username]; !ok {
		return ErrNotFound
	}
	r.users[user.Username] = user
	return nil
}

func (r *MemoryRepository) Find(username string) (*User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, ErrNotFound
	}
	return user, nil
}
