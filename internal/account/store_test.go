package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillmatch/skillmatch/internal/store"
)

func newTestStore(t *testing.T, opts ...Option) (*Store, *store.MemoryKV) {
	t.Helper()
	kv := store.NewMemoryKV()
	n := 0
	opts = append([]Option{WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("user-%d", n)
	})}, opts...)
	return NewStore(kv, opts...), kv
}

func storedUsers(t *testing.T, kv *store.MemoryKV) []User {
	t.Helper()
	raw, ok := kv.Raw(UsersKey)
	if !ok {
		return nil
	}
	var users []User
	require.NoError(t, json.Unmarshal([]byte(raw), &users))
	return users
}

func TestSignupPersistsUserAndSession(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	u, err := s.Signup(ctx, "Alex", "a@x.io", "pw", RoleSeeker)
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)
	assert.Equal(t, RoleSeeker, u.Role)

	users := storedUsers(t, kv)
	require.Len(t, users, 1)
	assert.Equal(t, *u, users[0])

	cur, err := s.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, *u, *cur)
}

func TestSignupDuplicateEmail(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	_, err := s.Signup(ctx, "Alex", "a@x.io", "pw", RoleSeeker)
	require.NoError(t, err)
	before, _ := kv.Raw(UsersKey)

	_, err = s.Signup(ctx, "Other", "a@x.io", "different", RoleEmployer)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	after, _ := kv.Raw(UsersKey)
	assert.Equal(t, before, after, "collection must be unchanged")
}

func TestSignupEmailMatchIsCaseSensitive(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	_, err := s.Signup(ctx, "Alex", "a@x.io", "pw", RoleSeeker)
	require.NoError(t, err)
	_, err = s.Signup(ctx, "Alex", "A@X.io", "pw", RoleSeeker)
	require.NoError(t, err)

	assert.Len(t, storedUsers(t, kv), 2)
}

func TestSignupAcceptsEmptyFields(t *testing.T) {
	s, _ := newTestStore(t)
	u, err := s.Signup(context.Background(), "", "", "", RoleEmployer)
	require.NoError(t, err)
	assert.Equal(t, "", u.Email)
}

func TestSignupDefaultIDsAreUnique(t *testing.T) {
	s := NewStore(store.NewMemoryKV())
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		u, err := s.Signup(ctx, "n", fmt.Sprintf("u%d@x.io", i), "pw", RoleSeeker)
		require.NoError(t, err)
		assert.False(t, seen[u.ID], "duplicate id %s", u.ID)
		seen[u.ID] = true
	}
}

func TestLogin(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	created, err := s.Signup(ctx, "Alex", "a@x.io", "pw", RoleSeeker)
	require.NoError(t, err)
	require.NoError(t, s.Logout(ctx))

	u, err := s.Login(ctx, "a@x.io", "pw")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)

	cur, err := s.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, created.ID, cur.ID)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	_, err := s.Signup(ctx, "Alex", "a@x.io", "pw", RoleSeeker)
	require.NoError(t, err)
	require.NoError(t, s.Logout(ctx))

	_, wrongPassword := s.Login(ctx, "a@x.io", "nope")
	_, unknownEmail := s.Login(ctx, "b@x.io", "pw")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())

	_, ok := kv.Raw(SessionKey)
	assert.False(t, ok, "failed login must not create a session")
}

func TestLogoutIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Logout(ctx))
	_, err := s.Signup(ctx, "Alex", "a@x.io", "pw", RoleSeeker)
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx))
	require.NoError(t, s.Logout(ctx))

	cur, err := s.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)
}

func TestCurrentSessionSelfHeals(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{not json"},
		{"json array", `[1,2,3]`},
		{"json string", `"hello"`},
		{"json null", `null`},
		{"missing id", `{"name":"A","email":"a@x.io","role":"seeker"}`},
		{"missing email", `{"id":"1","name":"A","role":"seeker"}`},
		{"missing role", `{"id":"1","name":"A","email":"a@x.io"}`},
		{"missing name", `{"id":"1","email":"a@x.io","role":"seeker"}`},
		{"empty id", `{"id":"","name":"A","email":"a@x.io","role":"seeker"}`},
		{"numeric id", `{"id":7,"name":"A","email":"a@x.io","role":"seeker"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, kv := newTestStore(t)
			ctx := context.Background()
			require.NoError(t, kv.Set(ctx, SessionKey, tt.raw))

			u, err := s.CurrentSession(ctx)
			require.NoError(t, err)
			assert.Nil(t, u)

			_, ok := kv.Raw(SessionKey)
			assert.False(t, ok, "corrupt session must be removed")

			// Second call sees an absent key.
			u, err = s.CurrentSession(ctx)
			require.NoError(t, err)
			assert.Nil(t, u)
		})
	}
}

func TestCurrentSessionKeepsUnknownRole(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, SessionKey, `{"id":"1","name":"A","email":"a@x.io","role":"admin"}`))

	u, err := s.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, Role("admin"), u.Role)
	assert.False(t, u.Role.Valid())
}

func TestCurrentSessionStorageError(t *testing.T) {
	s, kv := newTestStore(t)
	kv.Err = errors.New("locked")

	_, err := s.CurrentSession(context.Background())
	assert.Error(t, err)
}

func TestCorruptUsersCollectionIsNotWiped(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, UsersKey, "garbage"))

	_, err := s.Signup(ctx, "Alex", "a@x.io", "pw", RoleSeeker)
	assert.ErrorIs(t, err, ErrCorruptAccounts)

	_, err = s.Login(ctx, "a@x.io", "pw")
	assert.ErrorIs(t, err, ErrCorruptAccounts)

	raw, _ := kv.Raw(UsersKey)
	assert.Equal(t, "garbage", raw)
}

func TestBcryptHasherStoresHash(t *testing.T) {
	s, kv := newTestStore(t, WithHasher(BcryptHasher{Cost: 4}))
	ctx := context.Background()

	_, err := s.Signup(ctx, "Alex", "a@x.io", "s3cret", RoleEmployer)
	require.NoError(t, err)

	users := storedUsers(t, kv)
	require.Len(t, users, 1)
	assert.NotEqual(t, "s3cret", users[0].Password)

	require.NoError(t, s.Logout(ctx))
	_, err = s.Login(ctx, "a@x.io", "s3cret")
	require.NoError(t, err)
	_, err = s.Login(ctx, "a@x.io", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestHasherFor(t *testing.T) {
	h, err := HasherFor("")
	require.NoError(t, err)
	assert.IsType(t, PlaintextHasher{}, h)

	h, err = HasherFor("bcrypt")
	require.NoError(t, err)
	assert.IsType(t, BcryptHasher{}, h)

	_, err = HasherFor("md5")
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()
	_, err := s.Signup(ctx, "Alex", "a@x.io", "pw", RoleSeeker)
	require.NoError(t, err)

	require.NoError(t, s.Reset(ctx))
	_, ok := kv.Raw(UsersKey)
	assert.False(t, ok)
	_, ok = kv.Raw(SessionKey)
	assert.False(t, ok)
}

func TestSessionRestore(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	sess, err := Restore(ctx, s)
	require.NoError(t, err)
	_, ok := sess.Current()
	assert.False(t, ok)

	u, err := s.Signup(ctx, "Alex", "a@x.io", "pw", RoleEmployer)
	require.NoError(t, err)

	sess, err = Restore(ctx, s)
	require.NoError(t, err)
	cur, ok := sess.Current()
	require.True(t, ok)
	assert.Equal(t, u.ID, cur.ID)

	sess.Clear()
	_, ok = sess.Current()
	assert.False(t, ok)
}
