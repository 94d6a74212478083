package wizard

import (
	"strconv"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/AniketJas/volunteer-signup/logging"
	"github.com/AniketJas/volunteer-signup/storage"
)

type Step int

const (
	StepProfile Step = iota + 1
	StepSchedule
)

func (s Step) String() string {
	switch s {
	case StepProfile:
		return "profile"
	case StepSchedule:
		return "schedule"
	default:
		return "unknown"
	}
}

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
const idLength = 10

// FormData holds everything the two steps collect.
type FormData struct {
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Availability     string
	Skills           []string
	Experience       string
	Transportation   string
	EmergencyContact string
	SelectedSlots    []string
}

// Wizard is the two-step sign-up state machine. Step one collects the
// volunteer profile, step two the shift-slot selection; Submit appends one
// volunteer record and resets back to an empty step one whether or not the
// append succeeded. One process-wide instance, matching the single-tab model.
type Wizard struct {
	volunteers storage.VolunteerStorage

	mu   sync.Mutex
	step Step
	form FormData
}

func New(volunteers storage.VolunteerStorage) *Wizard {
	return &Wizard{
		volunteers: volunteers,
		step:       StepProfile,
	}
}

// SetField sets a single profile field by name. Returns false for an unknown
// field name. No format validation is applied to any value.
func (w *Wizard) SetField(field string, value string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch field {
	case "firstName":
		w.form.FirstName = value
	case "lastName":
		w.form.LastName = value
	case "email":
		w.form.Email = value
	case "phone":
		w.form.Phone = value
	case "availability":
		w.form.Availability = value
	case "experience":
		w.form.Experience = value
	case "transportation":
		w.form.Transportation = value
	case "emergencyContact":
		w.form.EmergencyContact = value
	default:
		return false
	}
	return true
}

// ToggleSkill flips skill membership: present is removed, absent is added.
func (w *Wizard) ToggleSkill(skill string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form.Skills = toggle(w.form.Skills, skill)
}

// ToggleSlot flips slot-id membership the same way.
func (w *Wizard) ToggleSlot(slotID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form.SelectedSlots = toggle(w.form.SelectedSlots, slotID)
}

// Continue moves from the profile step to the schedule step. Guarded: first
// name, last name and email must all be non-empty.
func (w *Wizard) Continue() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepProfile {
		return ErrWrongStep
	}
	if w.form.FirstName == "" || w.form.LastName == "" || w.form.Email == "" {
		return ErrProfileIncomplete
	}
	w.step = StepSchedule
	return nil
}

// Back returns to the profile step without clearing anything.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step == StepSchedule {
		w.step = StepProfile
	}
}

// Submit appends the collected volunteer record. Guarded: at least one slot
// must be selected. Once past the guard the wizard always resets to the
// initial empty profile step; a failed append only changes the returned error.
func (w *Wizard) Submit() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepSchedule {
		return ErrWrongStep
	}
	if len(w.form.SelectedSlots) == 0 {
		return ErrNoSlotsSelected
	}

	volunteer := &storage.Volunteer{
		ID:               newVolunteerID(),
		FirstName:        w.form.FirstName,
		LastName:         w.form.LastName,
		Email:            w.form.Email,
		Phone:            w.form.Phone,
		Availability:     w.form.Availability,
		Skills:           w.form.Skills,
		Experience:       w.form.Experience,
		Transportation:   w.form.Transportation,
		EmergencyContact: w.form.EmergencyContact,
		SelectedSlots:    w.form.SelectedSlots,
		RegistrationDate: time.Now().UTC().Format(time.RFC3339),
		Status:           storage.StatusPending,
		AssignedShifts:   0,
	}

	saved := w.volunteers.Append(volunteer)

	w.step = StepProfile
	w.form = FormData{}

	if !saved {
		logging.Log.Errorf("WIZARD: registration for %s was not saved", volunteer.Email)
		return ErrNotSaved
	}
	logging.Log.Infof("WIZARD: registered volunteer %s %s (%s)",
		volunteer.FirstName, volunteer.LastName, volunteer.ID)
	return nil
}

// Snapshot returns the current step and a copy of the form data.
func (w *Wizard) Snapshot() (Step, FormData) {
	w.mu.Lock()
	defer w.mu.Unlock()

	form := w.form
	form.Skills = append([]string(nil), w.form.Skills...)
	form.SelectedSlots = append([]string(nil), w.form.SelectedSlots...)
	return w.step, form
}

func toggle(set []string, value string) []string {
	for i, v := range set {
		if v == value {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, value)
}

func newVolunteerID() string {
	id, err := gonanoid.Generate(idAlphabet, idLength)
	if err != nil {
		logging.Log.Errorf("WIZARD: failed to generate id: %v", err)
		return strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	return id
}
