package roles_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailgate/storefront-api/models"
	"github.com/retailgate/storefront-api/roles"
	"github.com/retailgate/storefront-api/store"
)

type stubDocs struct {
	profiles map[string]models.UserProfile
	err      error
	block    chan struct{}
}

func (s *stubDocs) Create(ctx context.Context, collection string, doc store.Document) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubDocs) Get(ctx context.Context, collection, id string, out store.Document) error {
	if s.block != nil {
		<-s.block
	}
	if s.err != nil {
		return s.err
	}
	p, ok := s.profiles[id]
	if !ok {
		return store.ErrNotFound
	}
	*out.(*models.UserProfile) = p
	return nil
}

func TestParseIsExactAndCaseSensitive(t *testing.T) {
	assert.Equal(t, roles.RoleCompany, roles.Parse("company"))
	assert.Equal(t, roles.RoleStaff, roles.Parse("staff"))
	assert.Equal(t, roles.RoleSuperadmin, roles.Parse("superadmin"))

	assert.Equal(t, roles.RoleUnknown, roles.Parse("Company"))
	assert.Equal(t, roles.RoleUnknown, roles.Parse("SUPERADMIN"))
	assert.Equal(t, roles.RoleUnknown, roles.Parse("guest"))
	assert.Equal(t, roles.RoleUnknown, roles.Parse(""))
}

func TestResolveMissingProfileIsLowestPrivilege(t *testing.T) {
	r := roles.NewResolver(&stubDocs{profiles: map[string]models.UserProfile{}})

	res, err := r.Resolve(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, roles.StateResolved, res.State)
	assert.Equal(t, roles.RoleUnknown, res.Role)
	assert.Nil(t, res.Profile)
}

func TestResolveEmptyUID(t *testing.T) {
	r := roles.NewResolver(&stubDocs{})

	res, err := r.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, roles.StateResolved, res.State)
	assert.Equal(t, roles.RoleUnknown, res.Role)
}

func TestResolveFoundProfile(t *testing.T) {
	docs := &stubDocs{profiles: map[string]models.UserProfile{
		"u1": {ID: "u1", Role: "superadmin", CompanyName: "Acme"},
		"u2": {ID: "u2", Role: "Staff"}, // wrong case is not a match
	}}
	r := roles.NewResolver(docs)

	res, err := r.Resolve(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, roles.RoleSuperadmin, res.Role)
	require.NotNil(t, res.Profile)
	assert.Equal(t, "Acme", res.Profile.CompanyName)

	res, err = r.Resolve(context.Background(), "u2")
	require.NoError(t, err)
	assert.Equal(t, roles.RoleUnknown, res.Role)
}

func TestCheckDegradesOnLookupError(t *testing.T) {
	r := roles.NewResolver(&stubDocs{err: errors.New("connection refused")})

	res := r.Check(context.Background(), "u1")
	assert.Equal(t, roles.StateResolved, res.State)
	assert.Equal(t, roles.RoleUnknown, res.Role)
}

func TestWatcherExposesLoadingThenResolves(t *testing.T) {
	block := make(chan struct{})
	docs := &stubDocs{
		profiles: map[string]models.UserProfile{"u1": {ID: "u1", Role: "superadmin"}},
		block:    block,
	}
	w := roles.NewWatcher(roles.NewResolver(docs))

	w.SetUser(context.Background(), "u1")
	res := w.Current()
	assert.Equal(t, roles.StateLoading, res.State, "in-flight lookup must be visible as loading")

	close(block)
	require.Eventually(t, func() bool {
		return w.Current().State == roles.StateResolved
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, roles.RoleSuperadmin, w.Current().Role)
}

func TestWatcherLogoutForcesLowestPrivilege(t *testing.T) {
	docs := &stubDocs{profiles: map[string]models.UserProfile{"u1": {ID: "u1", Role: "staff"}}}
	w := roles.NewWatcher(roles.NewResolver(docs))

	w.SetUser(context.Background(), "u1")
	require.Eventually(t, func() bool {
		return w.Current().Role == roles.RoleStaff
	}, time.Second, 5*time.Millisecond)

	w.SetUser(context.Background(), "")
	res := w.Current()
	assert.Equal(t, roles.StateResolved, res.State)
	assert.Equal(t, roles.RoleUnknown, res.Role)
}

func TestWatcherDiscardsStaleResult(t *testing.T) {
	block := make(chan struct{})
	docs := &stubDocs{
		profiles: map[string]models.UserProfile{"u1": {ID: "u1", Role: "superadmin"}},
		block:    block,
	}
	w := roles.NewWatcher(roles.NewResolver(docs))

	w.SetUser(context.Background(), "u1")
	w.SetUser(context.Background(), "") // identity changes while the lookup is pending
	close(block)

	time.Sleep(50 * time.Millisecond)
	res := w.Current()
	assert.Equal(t, roles.RoleUnknown, res.Role, "a stale lookup result must be discarded silently")
}
