package web

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"usra/internal/adapters/http/middleware"
	"usra/internal/domain/registration"
)

const wizardCookieName = "usra_wizard"

// draftStore keeps in-flight registration wizards server-side, keyed by a
// browser cookie. Drafts are transient: they expire after the TTL and are
// discarded on successful submission.
type draftStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*draftEntry
}

type draftEntry struct {
	wizard  *registration.Wizard
	touched time.Time
}

func newDraftStore(ttl time.Duration) *draftStore {
	return &draftStore{
		ttl:     ttl,
		entries: make(map[string]*draftEntry),
	}
}

// get returns the wizard for a key, or nil when absent or expired.
func (ds *draftStore) get(key string) *registration.Wizard {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	e, ok := ds.entries[key]
	if !ok {
		return nil
	}
	if time.Since(e.touched) > ds.ttl {
		delete(ds.entries, key)
		return nil
	}
	e.touched = time.Now()
	return e.wizard
}

// put stores the wizard under a key and prunes expired entries.
func (ds *draftStore) put(key string, w *registration.Wizard) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	for k, e := range ds.entries {
		if time.Since(e.touched) > ds.ttl {
			delete(ds.entries, k)
		}
	}
	ds.entries[key] = &draftEntry{wizard: w, touched: time.Now()}
}

// drop removes a wizard.
func (ds *draftStore) drop(key string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.entries, key)
}

// wizardForRequest resolves the wizard for the browser's cookie, creating a
// fresh wizard (and setting the cookie) when none exists yet.
func wizardForRequest(w http.ResponseWriter, r *http.Request) (*registration.Wizard, error) {
	if cookie, err := r.Cookie(wizardCookieName); err == nil && cookie.Value != "" {
		if wiz := wizards.get(cookie.Value); wiz != nil {
			return wiz, nil
		}
	}

	key, err := newWizardKey()
	if err != nil {
		return nil, err
	}
	wiz := registration.NewWizard()
	wizards.put(key, wiz)
	http.SetCookie(w, &http.Cookie{
		Name:     wizardCookieName,
		Value:    key,
		HttpOnly: true,
		Secure:   middleware.SecureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/registration",
		MaxAge:   int((2 * time.Hour).Seconds()),
	})
	return wiz, nil
}

// clearWizard drops the draft and expires the cookie after submission.
func clearWizard(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(wizardCookieName); err == nil && cookie.Value != "" {
		wizards.drop(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     wizardCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   middleware.SecureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/registration",
		MaxAge:   -1,
	})
}

func newWizardKey() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
