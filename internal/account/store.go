package account

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/skillmatch/skillmatch/internal/logger"
	"github.com/skillmatch/skillmatch/internal/store"
)

// Store manages the users collection and the session record.
//
// Signup is a read-modify-write of the whole collection with no version
// check. Two processes sharing one profile can both register the same email
// and the last write wins. The in-process mutex only serializes callers
// sharing this Store.
type Store struct {
	kv       store.KV
	hasher   Hasher
	log      *logger.Logger
	newID    func() string
	validate *validator.Validate

	mu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithHasher sets the password hasher. Defaults to PlaintextHasher.
func WithHasher(h Hasher) Option {
	return func(s *Store) { s.hasher = h }
}

// WithLogger sets the logger used for recoverable storage problems.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithIDGenerator overrides user ID generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// NewStore returns a Store over kv.
func NewStore(kv store.KV, opts ...Option) *Store {
	s := &Store{
		kv:       kv,
		hasher:   PlaintextHasher{},
		log:      logger.Nop(),
		newID:    uuid.NewString,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Signup registers a new user and makes it the active session.
// Inputs are not format-checked; an exact email match returns
// ErrDuplicateEmail and leaves the collection unchanged.
func (s *Store) Signup(ctx context.Context, name, email, password string, role Role) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	stored, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	u := User{
		ID:       s.newID(),
		Name:     name,
		Email:    email,
		Password: stored,
		Role:     role,
	}
	users = append(users, u)

	if err := s.saveUsers(ctx, users); err != nil {
		return nil, err
	}
	if err := s.writeSession(ctx, u); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", u.ID).Str("role", string(u.Role)).Msg("account created")
	return &u, nil
}

// Login makes the user matching email and password the active session.
// Any mismatch, including an unknown email, returns ErrInvalidCredentials.
func (s *Store) Login(ctx context.Context, email, password string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email && s.hasher.Matches(u.Password, password) {
			if err := s.writeSession(ctx, u); err != nil {
				return nil, err
			}
			s.log.Info().Str("user_id", u.ID).Msg("logged in")
			return &u, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Logout removes the session record. Calling it with no session is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// CurrentSession returns the active user, or nil when there is none.
//
// A session record that is not a JSON object or lacks any of id, email,
// role or name is deleted and reported as no session.
func (s *Store) CurrentSession(ctx context.Context) (*User, error) {
	raw, ok, err := s.kv.Get(ctx, SessionKey)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, s.discardSession(ctx, err)
	}
	if err := s.validate.Struct(u); err != nil {
		return nil, s.discardSession(ctx, err)
	}
	return &u, nil
}

// Users returns every registered account.
func (s *Store) Users(ctx context.Context) ([]User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadUsers(ctx)
}

// Reset removes the users collection and the session record.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range []string{SessionKey, UsersKey} {
		if err := s.kv.Delete(ctx, k); err != nil {
			return fmt.Errorf("reset %s: %w", k, err)
		}
	}
	return nil
}

func (s *Store) discardSession(ctx context.Context, cause error) error {
	s.log.Warn().Err(cause).Str("key", SessionKey).Msg("discarding corrupt session record")
	if err := s.kv.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("clear corrupt session: %w", err)
	}
	return nil
}

func (s *Store) loadUsers(ctx context.Context) ([]User, error) {
	raw, ok, err := s.kv.Get(ctx, UsersKey)
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var users []User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptAccounts, err)
	}
	return users, nil
}

func (s *Store) saveUsers(ctx context.Context, users []User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := s.kv.Set(ctx, UsersKey, string(data)); err != nil {
		return fmt.Errorf("write users: %w", err)
	}
	return nil
}

func (s *Store) writeSession(ctx context.Context, u User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.kv.Set(ctx, SessionKey, string(data)); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}
