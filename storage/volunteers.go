package storage

import (
	"sync"

	"github.com/AniketJas/volunteer-signup/logging"
)

type VolunteerStorage interface {
	Append(volunteer *Volunteer) bool
	List() []*Volunteer
	UpdateStatus(id string, status string) bool
}

type TableVolunteerStorage struct {
	Store Store
	Table string

	// serializes read-modify-write cycles within this process; there is no
	// cross-process coordination, a single writer is assumed
	mu sync.Mutex
}

func (s *TableVolunteerStorage) Append(volunteer *Volunteer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	volunteers := s.load()
	volunteers = append(volunteers, volunteer)
	if !s.Store.Save(s.Table, volunteers) {
		logging.Log.Errorf("VOLUNTEER: failed to save volunteer %s", volunteer.ID)
		return false
	}
	return true
}

func (s *TableVolunteerStorage) List() []*Volunteer {
	return s.load()
}

// UpdateStatus rewrites the collection with the matching record's status
// replaced. An unknown id is a silent no-op: the save still happens and
// succeeds with the collection unchanged.
func (s *TableVolunteerStorage) UpdateStatus(id string, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	volunteers := s.load()
	for _, v := range volunteers {
		if v.ID == id {
			v.Status = status
		}
	}
	if !s.Store.Save(s.Table, volunteers) {
		logging.Log.Errorf("VOLUNTEER: failed to update status for %s", id)
		return false
	}
	return true
}

func (s *TableVolunteerStorage) load() []*Volunteer {
	var volunteers []*Volunteer
	if !s.Store.Load(s.Table, &volunteers) {
		return []*Volunteer{}
	}
	if volunteers == nil {
		return []*Volunteer{}
	}
	return volunteers
}
