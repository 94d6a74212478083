package wizard

import (
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AniketJas/volunteer-signup/logging"
	"github.com/AniketJas/volunteer-signup/storage"
)

func newTestWizard(t *testing.T) (*Wizard, storage.VolunteerStorage) {
	t.Helper()
	logging.Log = logrus.New()

	store, err := storage.NewInMemoryStore()
	if err != nil {
		t.Fatalf("failed to open in-memory store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	volunteers := &storage.TableVolunteerStorage{Store: store, Table: "volunteers"}
	return New(volunteers), volunteers
}

// failingVolunteerStorage rejects every write.
type failingVolunteerStorage struct{}

func (f *failingVolunteerStorage) Append(_ *storage.Volunteer) bool { return false }

func (f *failingVolunteerStorage) List() []*storage.Volunteer { return []*storage.Volunteer{} }

func (f *failingVolunteerStorage) UpdateStatus(_ string, _ string) bool { return false }

func fillProfile(w *Wizard) {
	w.SetField("firstName", "Mike")
	w.SetField("lastName", "Chen")
	w.SetField("email", "mike@x.com")
}

func assertInitialState(t *testing.T, w *Wizard) {
	t.Helper()
	step, form := w.Snapshot()
	if step != StepProfile {
		t.Fatalf("expected profile step, got %s", step)
	}
	if form.FirstName != "" || form.LastName != "" || form.Email != "" ||
		form.Phone != "" || form.Availability != "" || form.Experience != "" ||
		form.Transportation != "" || form.EmergencyContact != "" {
		t.Fatalf("expected empty form, got %+v", form)
	}
	if len(form.Skills) != 0 || len(form.SelectedSlots) != 0 {
		t.Fatalf("expected empty selections, got %+v", form)
	}
}

func TestWizardContinueGuard(t *testing.T) {
	t.Run("Unhappy path - blocked while any required field is empty", func(t *testing.T) {
		w, _ := newTestWizard(t)

		if err := w.Continue(); !errors.Is(err, ErrProfileIncomplete) {
			t.Fatalf("expected ErrProfileIncomplete, got %v", err)
		}

		w.SetField("firstName", "Mike")
		if err := w.Continue(); !errors.Is(err, ErrProfileIncomplete) {
			t.Fatalf("expected ErrProfileIncomplete with last name missing, got %v", err)
		}

		w.SetField("lastName", "Chen")
		if err := w.Continue(); !errors.Is(err, ErrProfileIncomplete) {
			t.Fatalf("expected ErrProfileIncomplete with email missing, got %v", err)
		}
	})

	t.Run("Happy path - allowed once the three required fields are set", func(t *testing.T) {
		w, _ := newTestWizard(t)
		fillProfile(w)

		if err := w.Continue(); err != nil {
			t.Fatalf("expected continue to succeed, got %v", err)
		}
		step, _ := w.Snapshot()
		if step != StepSchedule {
			t.Fatalf("expected schedule step, got %s", step)
		}
	})
}

func TestWizardBackKeepsData(t *testing.T) {
	w, _ := newTestWizard(t)
	fillProfile(w)
	w.ToggleSkill("Driving")

	if err := w.Continue(); err != nil {
		t.Fatalf("continue failed: %v", err)
	}
	w.ToggleSlot("1")
	w.Back()

	step, form := w.Snapshot()
	if step != StepProfile {
		t.Fatalf("expected profile step after back, got %s", step)
	}
	if form.FirstName != "Mike" || len(form.Skills) != 1 || len(form.SelectedSlots) != 1 {
		t.Fatalf("expected entered data to survive back, got %+v", form)
	}
}

func TestWizardToggleSymmetry(t *testing.T) {
	w, _ := newTestWizard(t)

	w.ToggleSkill("Driving")
	w.ToggleSkill("Food Safety")
	w.ToggleSkill("Driving")

	_, form := w.Snapshot()
	if len(form.Skills) != 1 || form.Skills[0] != "Food Safety" {
		t.Fatalf("expected only Food Safety selected, got %+v", form.Skills)
	}

	w.ToggleSlot("2")
	w.ToggleSlot("2")
	_, form = w.Snapshot()
	if len(form.SelectedSlots) != 0 {
		t.Fatalf("expected slot toggled back off, got %+v", form.SelectedSlots)
	}
}

func TestWizardSetFieldUnknown(t *testing.T) {
	w, _ := newTestWizard(t)
	if w.SetField("favoriteColor", "green") {
		t.Fatal("expected unknown field to be rejected")
	}
}

func TestWizardSubmitGuard(t *testing.T) {
	t.Run("Unhappy path - submit is not available on the profile step", func(t *testing.T) {
		w, volunteers := newTestWizard(t)

		if err := w.Submit(); !errors.Is(err, ErrWrongStep) {
			t.Fatalf("expected ErrWrongStep, got %v", err)
		}
		if len(volunteers.List()) != 0 {
			t.Fatal("expected no record appended")
		}
	})

	t.Run("Unhappy path - blocked with no slots selected", func(t *testing.T) {
		w, volunteers := newTestWizard(t)
		fillProfile(w)
		if err := w.Continue(); err != nil {
			t.Fatalf("continue failed: %v", err)
		}

		if err := w.Submit(); !errors.Is(err, ErrNoSlotsSelected) {
			t.Fatalf("expected ErrNoSlotsSelected, got %v", err)
		}
		if len(volunteers.List()) != 0 {
			t.Fatal("expected no record appended")
		}

		// a blocked submit does not reset the entered data
		_, form := w.Snapshot()
		if form.FirstName != "Mike" {
			t.Fatalf("expected form data retained, got %+v", form)
		}
	})
}

func TestWizardSubmitAndReset(t *testing.T) {
	w, volunteers := newTestWizard(t)
	fillProfile(w)
	w.SetField("phone", "(555) 123-4567")
	w.SetField("availability", "weekends")
	w.ToggleSkill("Driving")

	if err := w.Continue(); err != nil {
		t.Fatalf("continue failed: %v", err)
	}
	w.ToggleSlot("1")
	w.ToggleSlot("3")

	before := time.Now().UTC().Add(-time.Second)
	if err := w.Submit(); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	after := time.Now().UTC().Add(time.Second)

	listed := volunteers.List()
	if len(listed) != 1 {
		t.Fatalf("expected exactly 1 volunteer, got %d", len(listed))
	}

	v := listed[0]
	if v.ID == "" {
		t.Fatal("expected a generated id")
	}
	if v.FirstName != "Mike" || v.LastName != "Chen" || v.Email != "mike@x.com" {
		t.Fatalf("unexpected profile data: %+v", v)
	}
	if v.Status != storage.StatusPending {
		t.Fatalf("expected pending status, got %s", v.Status)
	}
	if v.AssignedShifts != 0 {
		t.Fatalf("expected 0 assigned shifts, got %d", v.AssignedShifts)
	}
	if len(v.SelectedSlots) != 2 {
		t.Fatalf("expected 2 selected slots, got %+v", v.SelectedSlots)
	}

	registered, err := time.Parse(time.RFC3339, v.RegistrationDate)
	if err != nil {
		t.Fatalf("registrationDate is not RFC3339: %v", err)
	}
	if registered.Before(before) || registered.After(after) {
		t.Fatalf("registrationDate %s outside test window", v.RegistrationDate)
	}

	assertInitialState(t, w)
}

func TestWizardSubmitFailureStillResets(t *testing.T) {
	logging.Log = logrus.New()
	w := New(&failingVolunteerStorage{})
	fillProfile(w)

	if err := w.Continue(); err != nil {
		t.Fatalf("continue failed: %v", err)
	}
	w.ToggleSlot("1")

	if err := w.Submit(); !errors.Is(err, ErrNotSaved) {
		t.Fatalf("expected ErrNotSaved, got %v", err)
	}

	// the wizard does not retain input for retry
	assertInitialState(t, w)
}

func TestWizardUniqueIDs(t *testing.T) {
	w, volunteers := newTestWizard(t)

	for i := 0; i < 3; i++ {
		fillProfile(w)
		if err := w.Continue(); err != nil {
			t.Fatalf("continue failed: %v", err)
		}
		w.ToggleSlot("1")
		if err := w.Submit(); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	seen := map[string]bool{}
	for _, v := range volunteers.List() {
		if seen[v.ID] {
			t.Fatalf("duplicate id generated: %s", v.ID)
		}
		seen[v.ID] = true
	}
}
