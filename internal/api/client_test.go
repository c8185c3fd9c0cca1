package api

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/errors"
)

func TestAuthHeaderAndRequestID(t *testing.T) {
	var gotToken, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get(AuthHeader)
		gotReqID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	client.SetToken("tok-abc")

	_, err := client.ListOrganizations()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", gotToken)
	assert.NotEmpty(t, gotReqID, "every request carries a correlation id")
}

func TestBusyHeldForFullRoundTrip(t *testing.T) {
	var client *Client
	release := make(chan struct{})
	busyDuringRequest := make(chan bool, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		busyDuringRequest <- client.Busy().Visible()
		<-release
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client = NewClient(srv.URL)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = client.ListOrganizations()
	}()

	assert.True(t, <-busyDuringRequest, "indicator visible while the call is outstanding")
	close(release)
	<-done
	assert.False(t, client.Busy().Visible(), "indicator hidden after completion")
}

func TestBusyAcrossConcurrentCalls(t *testing.T) {
	const n = 5

	var client *Client
	started := make(chan struct{}, n)
	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started <- struct{}{}
		<-release
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client = NewClient(srv.URL)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = client.ListOrganizations()
		}()
	}

	for i := 0; i < n; i++ {
		<-started
	}
	assert.Equal(t, n, client.Busy().Count(), "all calls share one counter")

	close(release)
	wg.Wait()
	assert.Equal(t, 0, client.Busy().Count())
	assert.False(t, client.Busy().Visible())
}

func TestBusyReleasedOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.ListOrganizations()
	require.Error(t, err)
	assert.False(t, client.Busy().Visible())
}

func TestServerMessageSurfacedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Budget exceeded for this project"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.ListProjects("org-1")
	require.Error(t, err, "the failure is re-raised to the caller")

	got := client.Notifier().Current()
	assert.True(t, got.Visible)
	assert.Equal(t, "Budget exceeded for this project", got.Message)
}

func TestFallbackMessageForOpaqueFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream exploded</html>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Stats("org-1")
	require.Error(t, err)
	assert.Equal(t, FallbackMessage, client.Notifier().Current().Message)
}

func TestNetworkFailureUsesFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(srv.URL)
	_, err := client.ListOrganizations()
	require.Error(t, err)
	assert.Equal(t, FallbackMessage, client.Notifier().Current().Message)
	assert.False(t, client.Busy().Visible())
}

func TestUnauthorizedIsDistinguishable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Token is not valid"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.ListOrganizations()
	require.Error(t, err)
	assert.True(t, errors.IsUnauthorized(err), "401 must map to the unauthorized code")
}

func TestLoginSetsTokenForSubsequentCalls(t *testing.T) {
	var orgCallToken string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok-new","user":{"id":"u1","fullName":"Ada Lovelace","email":"ada@example.com"}}`))
	})
	mux.HandleFunc("GET /orgs", func(w http.ResponseWriter, r *http.Request) {
		orgCallToken = r.Header.Get(AuthHeader)
		w.Write([]byte(`[]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Login("ada@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-new", resp.Token)
	assert.Equal(t, "Ada Lovelace", resp.User.FullName)

	_, err = client.ListOrganizations()
	require.NoError(t, err)
	assert.Equal(t, "tok-new", orgCallToken)
}

func TestWithTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithTimeout(20*time.Millisecond))
	_, err := client.ListOrganizations()
	require.Error(t, err)
	assert.Equal(t, FallbackMessage, client.Notifier().Current().Message)
}

func TestDeleteCategoryRejectionLeavesListIntact(t *testing.T) {
	categories := `[{"id":"c1","name":"Travel","type":"Expense"},{"id":"c2","name":"Salaries","type":"Expense"}]`
	mux := http.NewServeMux()
	mux.HandleFunc("GET /categories", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(categories))
	})
	mux.HandleFunc("DELETE /categories/c1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Category is referenced by existing transactions"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(srv.URL)

	before, err := client.ListCategories("org-1")
	require.NoError(t, err)

	err = client.DeleteCategory("c1")
	require.Error(t, err)
	assert.Equal(t, "Category is referenced by existing transactions",
		client.Notifier().Current().Message)

	after, err := client.ListCategories("org-1")
	require.NoError(t, err)
	assert.Equal(t, before, after, "the full re-fetch shows the unchanged list")
}
