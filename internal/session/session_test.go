package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/courier-org/courier-cli/internal/api"
	"github.com/courier-org/courier-cli/internal/credstore"
)

func newStores(t *testing.T) (*credstore.Stack, *credstore.KeyringStore, *credstore.FileStore) {
	t.Helper()
	keyring.MockInit()
	primary := credstore.NewKeyring()
	legacy := credstore.NewFile(filepath.Join(t.TempDir(), "credentials.json"))
	t.Cleanup(func() {
		_ = primary.Delete(credstore.KeyToken)
		_ = primary.Delete(credstore.KeyUser)
	})
	return credstore.NewStack(primary, legacy), primary, legacy
}

// courierBackend is a minimal fake of the auth endpoints. It accepts exactly
// one bearer token and counts requests.
type courierBackend struct {
	validToken string
	user       api.User
	loginBody  map[string]string
	loginFails bool
	requests   atomic.Int64
}

func (b *courierBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		switch r.URL.Path {
		case "/auth/login":
			if b.loginFails {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"message": "bad credentials"}) //nolint:errcheck
				return
			}
			json.NewEncoder(w).Encode(b.loginBody) //nolint:errcheck
		case "/auth/me":
			if r.Header.Get("Authorization") != "Bearer "+b.validToken {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"message": "invalid token"}) //nolint:errcheck
				return
			}
			json.NewEncoder(w).Encode(b.user) //nolint:errcheck
		default:
			http.NotFound(w, r)
		}
	})
}

func newStore(t *testing.T, backend *courierBackend) (*Store, *credstore.Stack, *credstore.KeyringStore, *credstore.FileStore) {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	stack, primary, legacy := newStores(t)
	client := api.New(srv.URL, stack, zerolog.Nop())
	return New(stack, client.Auth), stack, primary, legacy
}

func TestBootstrap_NoCredential(t *testing.T) {
	backend := &courierBackend{}
	store, _, _, _ := newStore(t, backend)

	store.Bootstrap(context.Background())

	got := store.Current()
	assert.False(t, got.Loading)
	assert.Nil(t, got.User)
	assert.False(t, got.IsAuthenticated())
	assert.EqualValues(t, 0, backend.requests.Load(), "no network call expected without a credential")
}

func TestBootstrap_ValidCredential(t *testing.T) {
	backend := &courierBackend{
		validToken: "tok-1",
		user:       api.User{ID: "u1", Name: "Asha", Role: api.RoleCustomer},
	}
	store, _, primary, _ := newStore(t, backend)
	require.NoError(t, primary.Set(credstore.KeyToken, "tok-1"))

	store.Bootstrap(context.Background())

	got := store.Current()
	assert.False(t, got.Loading)
	require.NotNil(t, got.User)
	assert.Equal(t, "Asha", got.User.Name)
	assert.True(t, got.IsAuthenticated())

	// Fresh profile re-cached in the primary store.
	raw, err := primary.Get(credstore.KeyUser)
	require.NoError(t, err)
	var cached api.User
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, "Asha", cached.Name)
}

func TestBootstrap_RejectedCredential(t *testing.T) {
	backend := &courierBackend{validToken: "other"}
	store, _, primary, legacy := newStore(t, backend)
	require.NoError(t, primary.Set(credstore.KeyToken, "expired"))
	require.NoError(t, primary.Set(credstore.KeyUser, `{"name":"Stale"}`))

	store.Bootstrap(context.Background())

	got := store.Current()
	assert.False(t, got.Loading)
	assert.Nil(t, got.User, "rejected hydration demotes the session to anonymous")

	_, err := primary.Get(credstore.KeyToken)
	assert.ErrorIs(t, err, credstore.ErrNotFound)
	_, err = primary.Get(credstore.KeyUser)
	assert.ErrorIs(t, err, credstore.ErrNotFound)
	_, err = legacy.Get(credstore.KeyToken)
	assert.ErrorIs(t, err, credstore.ErrNotFound)
}

func TestBootstrap_MigratesLegacyCredential(t *testing.T) {
	backend := &courierBackend{
		validToken: "legacy-tok",
		user:       api.User{Name: "Asha"},
	}
	store, _, primary, legacy := newStore(t, backend)
	require.NoError(t, legacy.Set(credstore.KeyToken, "legacy-tok"))

	store.Bootstrap(context.Background())

	value, err := primary.Get(credstore.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "legacy-tok", value)
	_, err = legacy.Get(credstore.KeyToken)
	assert.ErrorIs(t, err, credstore.ErrNotFound)
	assert.True(t, store.Current().IsAuthenticated())

	// Idempotent: a second bootstrap produces the same end state.
	store.Bootstrap(context.Background())
	value, err = primary.Get(credstore.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "legacy-tok", value)
	_, err = legacy.Get(credstore.KeyToken)
	assert.ErrorIs(t, err, credstore.ErrNotFound)
}

func TestBootstrap_CorruptCachedProfile(t *testing.T) {
	backend := &courierBackend{
		validToken: "tok-1",
		user:       api.User{Name: "Fresh"},
	}
	store, _, primary, _ := newStore(t, backend)
	require.NoError(t, primary.Set(credstore.KeyToken, "tok-1"))
	require.NoError(t, primary.Set(credstore.KeyUser, "{not json"))

	store.Bootstrap(context.Background())

	// Corruption never blocks the credential: hydration still runs.
	got := store.Current()
	require.NotNil(t, got.User)
	assert.Equal(t, "Fresh", got.User.Name)

	raw, err := primary.Get(credstore.KeyUser)
	require.NoError(t, err)
	var cached api.User
	assert.NoError(t, json.Unmarshal([]byte(raw), &cached))
}

func TestBootstrap_CorruptCacheWithoutCredential(t *testing.T) {
	backend := &courierBackend{}
	store, _, primary, _ := newStore(t, backend)
	require.NoError(t, primary.Set(credstore.KeyUser, "{not json"))

	store.Bootstrap(context.Background())

	assert.Nil(t, store.Current().User)
	_, err := primary.Get(credstore.KeyUser)
	assert.ErrorIs(t, err, credstore.ErrNotFound, "unparsable cache entry is discarded")
	assert.EqualValues(t, 0, backend.requests.Load())
}

func TestLogin_HappyPath(t *testing.T) {
	backend := &courierBackend{
		validToken: "T",
		user:       api.User{Name: "A"},
		loginBody:  map[string]string{"token": "T"},
	}
	store, _, primary, _ := newStore(t, backend)

	resp, err := store.Login(context.Background(), "a@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "T", resp.BearerToken())

	value, err := primary.Get(credstore.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "T", value)

	raw, err := primary.Get(credstore.KeyUser)
	require.NoError(t, err)
	var cached api.User
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, "A", cached.Name)

	assert.True(t, store.Current().IsAuthenticated())
}

func TestLogin_LegacyAccessTokenField(t *testing.T) {
	backend := &courierBackend{
		validToken: "T2",
		user:       api.User{Name: "A"},
		loginBody:  map[string]string{"accessToken": "T2"},
	}
	store, _, primary, _ := newStore(t, backend)

	_, err := store.Login(context.Background(), "a@example.com", "secret")
	require.NoError(t, err)

	value, err := primary.Get(credstore.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "T2", value)
}

func TestLogin_MissingToken(t *testing.T) {
	backend := &courierBackend{loginBody: map[string]string{"name": "A"}}
	store, _, _, _ := newStore(t, backend)

	_, err := store.Login(context.Background(), "a@example.com", "secret")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestLogin_FailurePropagatesAndPreservesState(t *testing.T) {
	backend := &courierBackend{
		validToken: "tok-old",
		user:       api.User{Name: "Prior"},
		loginFails: true,
	}
	store, _, primary, _ := newStore(t, backend)
	require.NoError(t, primary.Set(credstore.KeyToken, "tok-old"))
	store.Bootstrap(context.Background())
	require.True(t, store.Current().IsAuthenticated())

	_, err := store.Login(context.Background(), "a@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, api.IsStatus(err, http.StatusUnauthorized))

	// Prior session untouched.
	got := store.Current()
	require.NotNil(t, got.User)
	assert.Equal(t, "Prior", got.User.Name)
	value, err := primary.Get(credstore.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-old", value)
}

func TestLogout(t *testing.T) {
	backend := &courierBackend{validToken: "tok", user: api.User{Name: "A"}}
	store, _, primary, legacy := newStore(t, backend)
	require.NoError(t, primary.Set(credstore.KeyToken, "tok"))
	require.NoError(t, legacy.Set(credstore.KeyToken, "old-copy"))
	store.Bootstrap(context.Background())
	require.True(t, store.Current().IsAuthenticated())

	store.Logout()

	got := store.Current()
	assert.Nil(t, got.User)
	assert.False(t, got.IsAuthenticated())
	_, err := primary.Get(credstore.KeyToken)
	assert.ErrorIs(t, err, credstore.ErrNotFound)
	_, err = legacy.Get(credstore.KeyToken)
	assert.ErrorIs(t, err, credstore.ErrNotFound)
	_, err = primary.Get(credstore.KeyUser)
	assert.ErrorIs(t, err, credstore.ErrNotFound)
}

func TestSubscribe_NotifiedOnTransitions(t *testing.T) {
	backend := &courierBackend{
		validToken: "T",
		user:       api.User{Name: "A"},
		loginBody:  map[string]string{"token": "T"},
	}
	store, _, _, _ := newStore(t, backend)

	var snapshots []Session
	store.Subscribe(func(s Session) {
		snapshots = append(snapshots, s)
	})

	store.Bootstrap(context.Background())
	require.Len(t, snapshots, 1)
	assert.False(t, snapshots[0].Loading)
	assert.False(t, snapshots[0].IsAuthenticated())

	_, err := store.Login(context.Background(), "a@example.com", "secret")
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.True(t, snapshots[1].IsAuthenticated())

	store.Logout()
	require.Len(t, snapshots, 3)
	assert.False(t, snapshots[2].IsAuthenticated())
}
