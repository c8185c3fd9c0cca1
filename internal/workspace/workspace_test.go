package workspace

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/api"
	"github.com/ledgerline/ledgerline/internal/errors"
	"github.com/ledgerline/ledgerline/internal/session"
)

func testStore(t *testing.T) *session.Store {
	t.Helper()
	store := session.NewStore(t.TempDir())
	require.NoError(t, store.Save(session.Session{
		Token: "tok",
		User:  session.User{ID: "u1", FullName: "Ada Lovelace", Email: "ada@example.com"},
	}))
	return store
}

func TestLoadWithoutSessionFetchesNothing(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	store := session.NewStore(t.TempDir())
	_, err := Load(api.NewClient(srv.URL), store)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeAuthNotLoggedIn))
	assert.Equal(t, 0, hits, "the guard must refuse before any data fetch")
}

func TestLoadSelectsFirstOrganization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok", r.Header.Get(api.AuthHeader))
		w.Write([]byte(`[{"id":"org-1","name":"Acme"},{"id":"org-2","name":"Globex"}]`))
	}))
	defer srv.Close()

	w, err := Load(api.NewClient(srv.URL), testStore(t))
	require.NoError(t, err)

	org, ok := w.Selected()
	require.True(t, ok)
	assert.Equal(t, "org-1", org.ID)
	assert.Len(t, w.Organizations(), 2)
	assert.Equal(t, "Ada Lovelace", w.User().FullName)
}

func TestLoadUnauthorizedClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Token is not valid"}`))
	}))
	defer srv.Close()

	store := testStore(t)
	_, err := Load(api.NewClient(srv.URL), store)
	require.Error(t, err)
	assert.True(t, errors.IsUnauthorized(err))
	assert.False(t, store.Active(), "unauthorized org fetch is an implicit logout")
}

func TestLoadServerFailureLeavesEmptyWorkspace(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := testStore(t)
	w, err := Load(api.NewClient(srv.URL), store)
	require.NoError(t, err, "non-auth failures do not abort the workspace")

	_, ok := w.Selected()
	assert.False(t, ok)
	assert.Empty(t, w.Organizations())
	assert.True(t, store.Active(), "session survives non-auth failures")
}

func TestSelectNotifiesObserversAndBumpsGeneration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"org-1","name":"Acme"},{"id":"org-2","name":"Globex"}]`))
	}))
	defer srv.Close()

	w, err := Load(api.NewClient(srv.URL), testStore(t))
	require.NoError(t, err)

	var notified []string
	w.Observe(func(org api.Organization) { notified = append(notified, org.ID) })
	w.Observe(func(org api.Organization) { notified = append(notified, org.ID) })

	genBefore := w.Generation()
	require.NoError(t, w.Select("org-2"))

	assert.Equal(t, []string{"org-2", "org-2"}, notified, "every observer re-fetches")
	assert.Greater(t, w.Generation(), genBefore)

	org, _ := w.Selected()
	assert.Equal(t, "Globex", org.Name)

	err = w.Select("org-404")
	assert.True(t, errors.HasCode(err, errors.ErrCodeOrgNotFound))
}

func TestRoleRederivedPerOrganization(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /orgs", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"org-1","name":"Acme"},{"id":"org-2","name":"Globex"}]`))
	})
	mux.HandleFunc("GET /orgs/org-1/members", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"m1","user":{"id":"u1","fullName":"Ada Lovelace","email":"ada@example.com"},"role":"Admin"}]`))
	})
	mux.HandleFunc("GET /orgs/org-2/members", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"m2","user":{"id":"u1","fullName":"Ada Lovelace","email":"ada@example.com"},"role":"Employee"}]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	w, err := Load(api.NewClient(srv.URL), testStore(t))
	require.NoError(t, err)

	role, err := w.Role()
	require.NoError(t, err)
	assert.Equal(t, api.RoleAdmin, role)

	allowed, err := w.Allowed(ActionAddMember)
	require.NoError(t, err)
	assert.True(t, allowed)

	require.NoError(t, w.Select("org-2"))

	role, err = w.Role()
	require.NoError(t, err)
	assert.Equal(t, api.RoleEmployee, role, "switching organizations re-derives the role")

	allowed, err = w.Allowed(ActionAddMember)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestLoginScenario(t *testing.T) {
	var statsOrgID string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok-77","user":{"id":"u1","fullName":"Ada Lovelace","email":"ada@example.com"}}`))
	})
	mux.HandleFunc("GET /orgs", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"org-9","name":"Acme"}]`))
	})
	mux.HandleFunc("GET /reports/stats", func(w http.ResponseWriter, r *http.Request) {
		statsOrgID = r.URL.Query().Get("orgId")
		w.Write([]byte(`{"totalIncome":1000,"totalExpenses":400,"netBalance":600,"pendingApprovals":2}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := api.NewClient(srv.URL)
	store := session.NewStore(t.TempDir())

	// Login with valid credentials, then persist the session.
	resp, err := client.Login("ada@example.com", "pw")
	require.NoError(t, err)
	require.NoError(t, store.Save(session.Session{
		Token: resp.Token,
		User:  session.User{ID: resp.User.ID, FullName: resp.User.FullName, Email: resp.User.Email},
	}))

	// Entering the workspace fetches orgs and auto-selects the first.
	w, err := Load(client, store)
	require.NoError(t, err)
	org, ok := w.Selected()
	require.True(t, ok)
	assert.Equal(t, "org-9", org.ID)

	// Dashboard stats are scoped to the selected organization's id.
	stats, err := client.Stats(org.ID)
	require.NoError(t, err)
	assert.Equal(t, "org-9", statsOrgID)
	assert.Equal(t, 600.0, stats.NetBalance)
	assert.Equal(t, 2, stats.PendingApprovals)
}

func TestPreferredOrganizationWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"org-1","name":"Acme"},{"id":"org-2","name":"Globex"}]`))
	}))
	defer srv.Close()

	SetPreferredOrgID(func() string { return "org-2" })
	defer SetPreferredOrgID(nil)

	w, err := Load(api.NewClient(srv.URL), testStore(t))
	require.NoError(t, err)
	org, ok := w.Selected()
	require.True(t, ok)
	assert.Equal(t, "org-2", org.ID)
}

func TestDeriveRoleUnknownUser(t *testing.T) {
	members := []api.Membership{
		{ID: "m1", User: api.User{ID: "u9"}, Role: api.RoleAdmin},
	}
	assert.Equal(t, api.RoleEmployee, DeriveRole(members, "u1"))
}
