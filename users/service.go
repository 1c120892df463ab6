package users

import "fmt"

// Service coordinates registration and profile changes. Its only
// responsibility is the order of operations; rules, storage, delivery and
// auditing are all delegated.
type Service struct {
	validator Validator
	repo      Repository
	notifier  Notifier
	audit     AuditLog
}

// NewService wires a Service from its collaborators.
func NewService(v Validator, r Repository, n Notifier, a AuditLog) *Service {
	return &Service{validator: v, repo: r, notifier: n, audit: a}
}

// Register validates, stores and welcomes a new user.
func (s *Service) Register(username, email string) (*User, error) {
	if err := s.validator.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if err := s.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	user := New(username, email)
	if err := s.repo.Save(user); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if err := s.notifier.Welcome(user); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	s.audit.Record(username, "registered")
	return user, nil
}

// ChangeEmail validates and persists a new address, then notifies the
// user at both addresses' owner.
func (s *Service) ChangeEmail(username, email string) error {
	if err := s.validator.ValidateEmail(email); err != nil {
		return fmt.Errorf("change email: %w", err)
	}
	user, err := s.repo.Find(username)
	if err != nil {
		return fmt.Errorf("change email: %w", err)
	}
	previous := user.Email
	user.Email = email
	if err := s.repo.Update(user); err != nil {
		return fmt.Errorf("change email: %w", err)
	}
	if err := s.notifier.EmailChanged(user, previous); err != nil {
		return fmt.Errorf("change email: %w", err)
	}
	s.audit.Record(username, "changed email")
	return nil
}

// Lookup returns the stored user.
func (s *Service) Lookup(username string) (*User, error) {
	return s.repo.Find(username)
}
