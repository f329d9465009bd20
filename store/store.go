package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"salonbook/auth"
	"salonbook/models"
	"salonbook/storage"
)

var (
	// ErrNotSignedIn is returned by mutations invoked with no identity
	// loaded.
	ErrNotSignedIn = errors.New("store: not signed in")
	// ErrDuplicateID is returned when an insert reuses an existing id.
	ErrDuplicateID = errors.New("store: id already exists")
)

// Store owns the in-memory copies of the three persisted aggregates
// (profile, appointment list, salon configuration) and is the only
// writer to the underlying key-value store. All mutations follow
// read-modify-write over the whole aggregate blob, serialized behind a
// single mutex; in-memory state is replaced only after the write is
// confirmed durable, so a failed write leaves memory and storage
// consistent.
type Store struct {
	mu       sync.Mutex
	kv       storage.KV
	log      zerolog.Logger
	validate *validator.Validate

	identity     *auth.Identity
	user         *models.User
	appointments []models.Appointment
	salon        *models.SalonConfig
}

func New(kv storage.KV, log zerolog.Logger) *Store {
	return &Store{
		kv:       kv,
		log:      log.With().Str("component", "store").Logger(),
		validate: validator.New(),
	}
}

// Bind subscribes the store to the manager's identity stream. Sign-in
// loads (or seeds) the persisted aggregates; sign-out clears the
// in-memory state without touching the persisted blobs.
func (s *Store) Bind(m *auth.Manager) {
	m.OnChange(func(id *auth.Identity) {
		if id == nil {
			s.clear()
			return
		}
		if err := s.Load(context.Background(), *id); err != nil {
			s.log.Error().Err(err).Str("user_id", id.ID).Msg("loading aggregates failed")
		}
	})
}

// Load reads the three aggregate blobs for id and makes the store ready.
// The three keys are independent and read concurrently. A missing blob
// is an empty collection or nil config, not an error; a missing profile
// is synthesized from the identity and persisted immediately.
func (s *Store) Load(ctx context.Context, id auth.Identity) error {
	var (
		user         *models.User
		appointments []models.Appointment
		salon        *models.SalonConfig
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var u models.User
		ok, err := s.read(gctx, profileKey(id.ID), &u)
		if err != nil {
			return err
		}
		if ok {
			user = &u
		}
		return nil
	})
	g.Go(func() error {
		_, err := s.read(gctx, appointmentsKey(id.ID), &appointments)
		return err
	})
	g.Go(func() error {
		var cfg models.SalonConfig
		ok, err := s.read(gctx, salonKey(id.ID), &cfg)
		if err != nil {
			return err
		}
		if ok {
			salon = &cfg
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	s.identity = &id
	s.user = user
	s.appointments = appointments
	s.salon = salon
	s.mu.Unlock()

	if user == nil {
		seeded := models.User{
			ID:    id.ID,
			Name:  id.Name,
			Email: id.Email,
			Phone: id.Phone,
		}
		if err := s.UpdateProfile(ctx, seeded); err != nil {
			return fmt.Errorf("seeding profile: %w", err)
		}
		s.log.Info().Str("user_id", id.ID).Msg("seeded profile from identity")
	}
	return nil
}

// clear drops all in-memory state. Persisted blobs are left in place so
// a later sign-in by the same identity reloads them unchanged.
func (s *Store) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.user = nil
	s.appointments = nil
	s.salon = nil
}

// SignedIn reports whether an identity is loaded.
func (s *Store) SignedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != nil
}

// read unmarshals the blob under key into out, validating the decoded
// value. Returns false with no error when the key is absent.
func (s *Store) read(ctx context.Context, key string, out any) (bool, error) {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decoding %q: %w", key, err)
	}
	if err := s.validateBlob(out); err != nil {
		return false, fmt.Errorf("rejecting %q: %w", key, err)
	}
	return true, nil
}

// validateBlob applies struct validation to a decoded aggregate,
// element-wise for the appointment list.
func (s *Store) validateBlob(v any) error {
	if list, ok := v.(*[]models.Appointment); ok {
		for i := range *list {
			if err := s.validate.Struct(&(*list)[i]); err != nil {
				return err
			}
		}
		return nil
	}
	return s.validate.Struct(v)
}

// persist writes v as the whole blob under key. Callers update the
// in-memory aggregate only after persist returns nil.
func (s *Store) persist(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(raw)); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("persist failed")
		return err
	}
	return nil
}

func profileKey(uid string) string      { return "salon:" + uid + ":profile" }
func appointmentsKey(uid string) string { return "salon:" + uid + ":appointments" }
func salonKey(uid string) string        { return "salon:" + uid + ":config" }
