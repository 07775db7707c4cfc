// Package services contains the application services of the passkeeper client.
// This file defines the credential store: the ordered, durable collection of
// credential records kept under a single key/value slot.
package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/client/models"
	"github.com/dmitrijs2005/passkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/logging"
	"github.com/google/uuid"
)

// CorruptPolicy decides what Load does with an unreadable stored value.
type CorruptPolicy string

const (
	// CorruptReset quarantines the unreadable value under
	// "<key>.corrupt.<UTC timestamp>"
	// and starts with an empty collection.
	CorruptReset CorruptPolicy = "reset"

	// CorruptFail makes Load return common.ErrCorruptData.
	CorruptFail CorruptPolicy = "fail"
)

// ParseCorruptPolicy validates a policy name coming from configuration.
func ParseCorruptPolicy(s string) (CorruptPolicy, error) {
	switch p := CorruptPolicy(s); p {
	case CorruptReset, CorruptFail:
		return p, nil
	}
	return "", fmt.Errorf("unknown corrupt-data policy %q", s)
}

// DefaultStorageKey is the slot credentials are kept under by default.
const DefaultStorageKey = "passwords"

// StoreOptions configures a CredentialStore. Zero values select defaults.
type StoreOptions struct {
	Key       string
	OnCorrupt CorruptPolicy
	Logger    logging.Logger

	// Now and NewID are test seams.
	Now   func() time.Time
	NewID func() string
}

// CredentialStore owns the credential collection. Every mutation rewrites the
// whole collection to the repository before returning; a failed write leaves
// the in-memory collection unchanged.
//
// A CredentialStore is driven from a single goroutine (the REPL loop or the
// bubbletea update loop) and is not safe for concurrent mutation.
type CredentialStore struct {
	repo      kv.Repository
	key       string
	onCorrupt CorruptPolicy
	log       logging.Logger
	now       func() time.Time
	newID     func() string

	records    []models.Credential
	quarantine string
	// Recovered is set when the last Load quarantined corrupt data.
	Recovered bool
}

// NewCredentialStore builds a store bound to repo. Call Load before use.
func NewCredentialStore(repo kv.Repository, opts StoreOptions) *CredentialStore {
	s := &CredentialStore{
		repo:      repo,
		key:       opts.Key,
		onCorrupt: opts.OnCorrupt,
		log:       opts.Logger,
		now:       opts.Now,
		newID:     opts.NewID,
		records:   []models.Credential{},
	}
	if s.key == "" {
		s.key = DefaultStorageKey
	}
	if s.onCorrupt == "" {
		s.onCorrupt = CorruptReset
	}
	if s.log == nil {
		s.log = logging.Nop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	s.log = s.log.With("component", "credential_store", "key", s.key)
	return s
}

// Key returns the storage key the collection is persisted under.
func (s *CredentialStore) Key() string { return s.key }

// QuarantineKey is where the last Load moved unreadable data, or "" if it
// did not.
func (s *CredentialStore) QuarantineKey() string { return s.quarantine }

// freeQuarantineKey picks a key under which no earlier corrupt value is kept.
func (s *CredentialStore) freeQuarantineKey(ctx context.Context) (string, error) {
	base := s.key + ".corrupt." + s.now().UTC().Format("20060102T150405.000000000")
	key := base
	for n := 1; ; n++ {
		v, err := s.repo.Get(ctx, key)
		if err != nil {
			return "", err
		}
		if v == nil {
			return key, nil
		}
		key = fmt.Sprintf("%s-%d", base, n)
	}
}

// Load reads the collection from the repository, replacing the in-memory one.
//
// An absent key yields an empty collection. A legacy unversioned value is
// decoded and immediately rewritten in the current format. Unreadable data is
// handled per the configured CorruptPolicy; data written by a newer version
// is never touched and always fails with common.ErrUnsupportedVersion.
func (s *CredentialStore) Load(ctx context.Context) error {
	s.Recovered = false
	s.quarantine = ""

	raw, err := s.repo.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("error reading storage: %w", err)
	}
	if raw == nil {
		s.records = []models.Credential{}
		s.log.Debug(ctx, "no stored collection, starting empty")
		return nil
	}

	doc, err := models.Decode(raw)
	switch {
	case err == nil:
	case errors.Is(err, common.ErrCorruptData) && s.onCorrupt == CorruptReset:
		qKey, qErr := s.freeQuarantineKey(ctx)
		if qErr == nil {
			qErr = s.repo.Rename(ctx, s.key, qKey)
		}
		if qErr != nil {
			return fmt.Errorf("error quarantining corrupt data: %w", qErr)
		}
		s.quarantine = qKey
		s.log.Warn(ctx, "stored collection is corrupt, starting empty",
			"error", err, "quarantine_key", qKey)
		s.records = []models.Credential{}
		s.Recovered = true
		return nil
	default:
		return fmt.Errorf("error decoding storage: %w", err)
	}

	s.records = doc.Records
	if doc.Version < models.FormatVersion {
		if err := s.persist(ctx, s.records); err != nil {
			// the legacy value is still readable next time
			s.log.Warn(ctx, "could not upgrade legacy storage format", "error", err)
		} else {
			s.log.Info(ctx, "upgraded storage format", "from", doc.Version, "to", models.FormatVersion)
		}
	}

	s.log.Debug(ctx, "collection loaded", "count", len(s.records))
	return nil
}

func (s *CredentialStore) persist(ctx context.Context, records []models.Credential) error {
	b, err := models.Encode(records)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", common.ErrPersist, err)
	}
	if err := s.repo.Set(ctx, s.key, b); err != nil {
		return fmt.Errorf("%w: %w", common.ErrPersist, err)
	}
	return nil
}

func (s *CredentialStore) indexOf(id string) int {
	return slices.IndexFunc(s.records, func(c models.Credential) bool { return c.Id == id })
}

func (s *CredentialStore) freshID() string {
	for {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id
		}
	}
}

// Add appends a new record and persists the collection. Any strings are
// accepted, including empty ones.
func (s *CredentialStore) Add(ctx context.Context, service, login, password string) (models.Credential, error) {
	rec := models.Credential{
		Id:        s.freshID(),
		Service:   service,
		Login:     login,
		Password:  password,
		CreatedAt: s.now().UTC(),
	}

	next := make([]models.Credential, len(s.records), len(s.records)+1)
	copy(next, s.records)
	next = append(next, rec)

	if err := s.persist(ctx, next); err != nil {
		s.log.Error(ctx, "add failed", "error", err)
		return models.Credential{}, fmt.Errorf("error saving credential: %w", err)
	}

	s.records = next
	s.log.Info(ctx, "credential added", "id", rec.Id, "count", len(s.records))
	return rec, nil
}

// Delete removes the record with id. It reports false (and writes nothing)
// when no such record exists.
func (s *CredentialStore) Delete(ctx context.Context, id string) (bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		s.log.Debug(ctx, "delete of unknown id ignored", "id", id)
		return false, nil
	}

	next := slices.Delete(slices.Clone(s.records), i, i+1)

	if err := s.persist(ctx, next); err != nil {
		s.log.Error(ctx, "delete failed", "id", id, "error", err)
		return false, fmt.Errorf("error deleting credential: %w", err)
	}

	s.records = next
	s.log.Info(ctx, "credential deleted", "id", id, "count", len(s.records))
	return true, nil
}

// List returns a copy of the collection in insertion order.
func (s *CredentialStore) List() []models.Credential {
	return slices.Clone(s.records)
}

// Get returns the record with id.
func (s *CredentialStore) Get(id string) (models.Credential, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Credential{}, false
	}
	return s.records[i], true
}

// Len returns the number of records.
func (s *CredentialStore) Len() int { return len(s.records) }
