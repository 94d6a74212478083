package storage

import (
	"sync"
	"time"

	"github.com/AniketJas/volunteer-signup/logging"
)

// AdminLoginStorage is the append-only record of successful admin logins.
type AdminLoginStorage interface {
	RecordLogin(email string) bool
	List() []*AdminLogin
}

type TableAdminLoginStorage struct {
	Store Store
	Table string

	mu sync.Mutex
}

func (s *TableAdminLoginStorage) RecordLogin(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	logins := s.load()
	logins = append(logins, &AdminLogin{
		Email:     email,
		LoginDate: time.Now().UTC().Format(time.RFC3339),
	})
	if !s.Store.Save(s.Table, logins) {
		logging.Log.Errorf("LOGIN: failed to record login for %s", email)
		return false
	}
	logging.Log.Infof("LOGIN: recorded login for %s", email)
	return true
}

func (s *TableAdminLoginStorage) List() []*AdminLogin {
	return s.load()
}

func (s *TableAdminLoginStorage) load() []*AdminLogin {
	var logins []*AdminLogin
	if !s.Store.Load(s.Table, &logins) {
		return []*AdminLogin{}
	}
	if logins == nil {
		return []*AdminLogin{}
	}
	return logins
}
