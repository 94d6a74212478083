package auth

import (
	"sync"

	"github.com/AniketJas/volunteer-signup/logging"
	"github.com/AniketJas/volunteer-signup/storage"
)

type Credentials struct {
	Email    string
	Password string
}

// Gate holds the single admin session. It compares a plaintext password
// against one fixed credential pair; it is a demonstration gate, not a
// security boundary. One gate per process means one session, matching the
// single-tab model of the app.
type Gate struct {
	credentials Credentials
	logins      storage.AdminLoginStorage

	mu       sync.Mutex
	loggedIn bool
	identity string
}

func NewGate(credentials Credentials, logins storage.AdminLoginStorage) *Gate {
	return &Gate{
		credentials: credentials,
		logins:      logins,
	}
}

// Login succeeds only for the exact configured pair. On success it flips the
// session to logged-in and appends to the admin login log; on failure the
// session state is untouched.
func (g *Gate) Login(email string, password string) bool {
	if email != g.credentials.Email || password != g.credentials.Password {
		logging.Log.Warnf("AUTH: failed login attempt for %s", email)
		return false
	}

	g.mu.Lock()
	g.loggedIn = true
	g.identity = email
	g.mu.Unlock()

	if !g.logins.RecordLogin(email) {
		logging.Log.Errorf("AUTH: could not record login for %s", email)
	}
	logging.Log.Infof("AUTH: admin %s logged in", email)
	return true
}

// Logout unconditionally resets to logged-out. It leaves no trace in the
// login log.
func (g *Gate) Logout() {
	g.mu.Lock()
	g.loggedIn = false
	g.identity = ""
	g.mu.Unlock()
	logging.Log.Info("AUTH: admin logged out")
}

func (g *Gate) IsLoggedIn() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loggedIn
}

// Identity returns the logged-in admin email, or false when logged out.
func (g *Gate) Identity() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.loggedIn {
		return "", false
	}
	return g.identity, true
}
