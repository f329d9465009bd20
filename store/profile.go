package store

import (
	"context"
	"fmt"

	"salonbook/models"
)

// User returns a copy of the loaded profile.
func (s *Store) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// UpdateProfile replaces the stored profile wholesale and persists it.
func (s *Store) UpdateProfile(ctx context.Context, user models.User) error {
	if err := s.validate.Struct(&user); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return ErrNotSignedIn
	}

	if err := s.persist(ctx, profileKey(s.identity.ID), &user); err != nil {
		return err
	}
	s.user = &user
	return nil
}
