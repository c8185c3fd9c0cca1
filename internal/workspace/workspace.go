// Package workspace holds the organization-scoped state shared by every
// screen after login: the user, the organization list, and the current
// selection. Screens observe the selection so a switch re-triggers their
// scoped fetches.
package workspace

import (
	"sync"

	"github.com/ledgerline/ledgerline/internal/api"
	"github.com/ledgerline/ledgerline/internal/errors"
	"github.com/ledgerline/ledgerline/internal/session"
)

// Workspace is the organization-scoped context exposed to all screens
type Workspace struct {
	client *api.Client
	store  *session.Store

	mu        sync.Mutex
	user      api.User
	orgs      []api.Organization
	selected  int // index into orgs, -1 when none
	gen       uint64
	role      api.Role
	roleKnown bool
	observers []func(api.Organization)
}

// Load builds the workspace after the session is confirmed: it fetches the
// organization list and selects the first entry. An unauthorized response
// clears the session (implicit logout); any other failure leaves the
// workspace with no organizations, without retrying.
func Load(client *api.Client, store *session.Store) (*Workspace, error) {
	sess, err := store.Require()
	if err != nil {
		return nil, err
	}
	client.SetToken(sess.Token)

	w := &Workspace{
		client:   client,
		store:    store,
		user:     api.User{ID: sess.User.ID, FullName: sess.User.FullName, Email: sess.User.Email},
		selected: -1,
	}

	orgs, err := client.ListOrganizations()
	if err != nil {
		if errors.IsUnauthorized(err) {
			_ = store.Clear()
			return nil, err
		}
		return w, nil
	}

	w.orgs = orgs
	if len(orgs) > 0 {
		w.selected = 0
		if id := preferredOrgID(); id != "" {
			for i, org := range orgs {
				if org.ID == id {
					w.selected = i
					break
				}
			}
		}
	}
	return w, nil
}

// preferredOrgID is overridable so 'org switch' can persist a default
// without the workspace importing the config package.
var preferredOrgID = func() string { return "" }

// SetPreferredOrgID installs the lookup used to pick the initial selection
func SetPreferredOrgID(fn func() string) {
	if fn == nil {
		fn = func() string { return "" }
	}
	preferredOrgID = fn
}

// Logout clears the persisted session. Used when any call reports the token
// invalid after the workspace was built.
func (w *Workspace) Logout() error {
	return w.store.Clear()
}

// User returns the authenticated user
func (w *Workspace) User() api.User {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.user
}

// Organizations returns the fetched organization list
func (w *Workspace) Organizations() []api.Organization {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.orgs
}

// Selected returns the current organization; ok is false when the user
// belongs to none.
func (w *Workspace) Selected() (api.Organization, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.selected < 0 || w.selected >= len(w.orgs) {
		return api.Organization{}, false
	}
	return w.orgs[w.selected], true
}

// Generation identifies the current selection epoch. Fetch results tagged
// with an older generation must be dropped, never applied.
func (w *Workspace) Generation() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gen
}

// Observe registers a callback invoked from Select with the new organization
func (w *Workspace) Observe(fn func(api.Organization)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.observers = append(w.observers, fn)
}

// Select switches the current organization, invalidates the cached role, and
// synchronously notifies every observer so mounted screens re-fetch.
func (w *Workspace) Select(orgID string) error {
	w.mu.Lock()
	idx := -1
	for i, org := range w.orgs {
		if org.ID == orgID {
			idx = i
			break
		}
	}
	if idx < 0 {
		w.mu.Unlock()
		return errors.New(errors.ErrCodeOrgNotFound, "organization not found: "+orgID)
	}

	w.selected = idx
	w.gen++
	w.roleKnown = false
	org := w.orgs[idx]
	observers := make([]func(api.Organization), len(w.observers))
	copy(observers, w.observers)
	w.mu.Unlock()

	for _, fn := range observers {
		fn(org)
	}
	return nil
}

// Role derives the current user's role from the selected organization's
// membership list. The result is cached only until the next Select; a role is
// never carried across organizations.
func (w *Workspace) Role() (api.Role, error) {
	w.mu.Lock()
	if w.roleKnown {
		defer w.mu.Unlock()
		return w.role, nil
	}
	if w.selected < 0 {
		w.mu.Unlock()
		return "", errors.New(errors.ErrCodeOrgNotSelected, "no organization selected")
	}
	org := w.orgs[w.selected]
	userID := w.user.ID
	w.mu.Unlock()

	members, err := w.client.ListMembers(org.ID)
	if err != nil {
		return "", err
	}
	role := DeriveRole(members, userID)

	w.mu.Lock()
	w.role = role
	w.roleKnown = true
	w.mu.Unlock()
	return role, nil
}

// Allowed reports whether the current user may perform action in the
// selected organization.
func (w *Workspace) Allowed(action Action) (bool, error) {
	role, err := w.Role()
	if err != nil {
		return false, err
	}
	return Can(role, action), nil
}

// DeriveRole finds userID's role in a membership list; users absent from the
// list get the weakest role.
func DeriveRole(members []api.Membership, userID string) api.Role {
	for _, m := range members {
		if m.User.ID == userID {
			return m.Role
		}
	}
	return api.RoleEmployee
}
