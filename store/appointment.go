package store

import (
	"context"
	"fmt"

	"salonbook/models"
)

// Appointments returns a copy of the current appointment list.
func (s *Store) Appointments() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// Appointment looks up one appointment by id.
func (s *Store) Appointment(id string) (models.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.appointments {
		if a.ID == id {
			return a, true
		}
	}
	return models.Appointment{}, false
}

// AddAppointment appends a new appointment and persists the full list.
// The id must not already exist in the collection.
func (s *Store) AddAppointment(ctx context.Context, appt models.Appointment) error {
	if err := s.validate.Struct(&appt); err != nil {
		return fmt.Errorf("invalid appointment: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return ErrNotSignedIn
	}
	for _, a := range s.appointments {
		if a.ID == appt.ID {
			return fmt.Errorf("appointment %q: %w", appt.ID, ErrDuplicateID)
		}
	}

	next := make([]models.Appointment, 0, len(s.appointments)+1)
	next = append(next, s.appointments...)
	next = append(next, appt)

	if err := s.persist(ctx, appointmentsKey(s.identity.ID), next); err != nil {
		return err
	}
	s.appointments = next
	return nil
}

// UpdateAppointment merges the partial update into the matching record
// and persists the full list. Updating a nonexistent id changes
// nothing.
func (s *Store) UpdateAppointment(ctx context.Context, id string, update models.AppointmentUpdate) error {
	if err := s.validate.Struct(&update); err != nil {
		return fmt.Errorf("invalid appointment update: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return ErrNotSignedIn
	}

	next := make([]models.Appointment, len(s.appointments))
	copy(next, s.appointments)
	found := false
	for i := range next {
		if next[i].ID == id {
			next[i].Apply(update)
			// the merged record must survive the strict read-side
			// validation, or the whole blob gets rejected on reload
			if err := s.validate.Struct(&next[i]); err != nil {
				return fmt.Errorf("invalid appointment after update: %w", err)
			}
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	if err := s.persist(ctx, appointmentsKey(s.identity.ID), next); err != nil {
		return err
	}
	s.appointments = next
	return nil
}

// DeleteAppointment removes the matching record, if present, and
// persists the full list.
func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return ErrNotSignedIn
	}

	next := make([]models.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		if a.ID != id {
			next = append(next, a)
		}
	}

	if err := s.persist(ctx, appointmentsKey(s.identity.ID), next); err != nil {
		return err
	}
	s.appointments = next
	return nil
}
