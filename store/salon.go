package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"salonbook/models"
)

// SalonConfig returns a copy of the current salon configuration.
func (s *Store) SalonConfig() (models.SalonConfig, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.salon == nil {
		return models.SalonConfig{}, false
	}
	return copyConfig(s.salon), true
}

// SaveSalonConfig replaces the whole configuration and persists it.
func (s *Store) SaveSalonConfig(ctx context.Context, cfg models.SalonConfig) error {
	if err := s.validate.Struct(&cfg); err != nil {
		return fmt.Errorf("invalid salon config: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return ErrNotSignedIn
	}

	if err := s.persist(ctx, salonKey(s.identity.ID), &cfg); err != nil {
		return err
	}
	s.salon = &cfg
	return nil
}

// AddService appends a service, creating a default configuration first
// when none exists yet. The service id must not already exist.
func (s *Store) AddService(ctx context.Context, svc models.Service) error {
	if err := s.validate.Struct(&svc); err != nil {
		return fmt.Errorf("invalid service: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return ErrNotSignedIn
	}

	var cfg models.SalonConfig
	if s.salon != nil {
		cfg = copyConfig(s.salon)
	} else {
		cfg = models.SalonConfig{
			ID:           uuid.NewString(),
			WorkingHours: []models.WorkingHours{},
			Services:     []models.Service{},
		}
	}
	for _, existing := range cfg.Services {
		if existing.ID == svc.ID {
			return fmt.Errorf("service %q: %w", svc.ID, ErrDuplicateID)
		}
	}
	cfg.Services = append(cfg.Services, svc)

	if err := s.persist(ctx, salonKey(s.identity.ID), &cfg); err != nil {
		return err
	}
	s.salon = &cfg
	return nil
}

// UpdateService merges the partial update into the matching service.
// A missing configuration or id changes nothing.
func (s *Store) UpdateService(ctx context.Context, id string, update models.ServiceUpdate) error {
	if err := s.validate.Struct(&update); err != nil {
		return fmt.Errorf("invalid service update: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return ErrNotSignedIn
	}
	if s.salon == nil {
		return nil
	}

	cfg := copyConfig(s.salon)
	found := false
	for i := range cfg.Services {
		if cfg.Services[i].ID == id {
			cfg.Services[i].Apply(update)
			// the merged record must survive the strict read-side
			// validation, or the whole blob gets rejected on reload
			if err := s.validate.Struct(&cfg.Services[i]); err != nil {
				return fmt.Errorf("invalid service after update: %w", err)
			}
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	if err := s.persist(ctx, salonKey(s.identity.ID), &cfg); err != nil {
		return err
	}
	s.salon = &cfg
	return nil
}

// DeleteService removes the matching service. A missing configuration
// changes nothing.
func (s *Store) DeleteService(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return ErrNotSignedIn
	}
	if s.salon == nil {
		return nil
	}

	cfg := copyConfig(s.salon)
	next := make([]models.Service, 0, len(cfg.Services))
	for _, svc := range cfg.Services {
		if svc.ID != id {
			next = append(next, svc)
		}
	}
	cfg.Services = next

	if err := s.persist(ctx, salonKey(s.identity.ID), &cfg); err != nil {
		return err
	}
	s.salon = &cfg
	return nil
}

// SaveWorkingHours replaces the weekly hours. A missing configuration
// changes nothing.
func (s *Store) SaveWorkingHours(ctx context.Context, hours []models.WorkingHours) error {
	for i := range hours {
		if err := s.validate.Struct(&hours[i]); err != nil {
			return fmt.Errorf("invalid working hours: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return ErrNotSignedIn
	}
	if s.salon == nil {
		return nil
	}

	cfg := copyConfig(s.salon)
	cfg.WorkingHours = make([]models.WorkingHours, len(hours))
	copy(cfg.WorkingHours, hours)

	if err := s.persist(ctx, salonKey(s.identity.ID), &cfg); err != nil {
		return err
	}
	s.salon = &cfg
	return nil
}

// copyConfig deep-copies a configuration so snapshots and pending
// mutations never alias the authoritative slices.
func copyConfig(cfg *models.SalonConfig) models.SalonConfig {
	out := *cfg
	out.WorkingHours = make([]models.WorkingHours, len(cfg.WorkingHours))
	copy(out.WorkingHours, cfg.WorkingHours)
	out.Services = make([]models.Service, len(cfg.Services))
	copy(out.Services, cfg.Services)
	return out
}
