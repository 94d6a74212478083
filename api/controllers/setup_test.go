package controllers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/AniketJas/volunteer-signup/auth"
	"github.com/AniketJas/volunteer-signup/logging"
	"github.com/AniketJas/volunteer-signup/storage"
	"github.com/AniketJas/volunteer-signup/wizard"
)

type testEnv struct {
	router     *gin.Engine
	volunteers *storage.TableVolunteerStorage
	logins     *storage.TableAdminLoginStorage
	gate       *auth.Gate
}

func setupTestEnv(t *testing.T) *testEnv {
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
	logins := &storage.TableAdminLoginStorage{Store: store, Table: "adminLogins"}
	gate := auth.NewGate(auth.Credentials{Email: "admin@ngo.org", Password: "admin123"}, logins)
	signupWizard := wizard.New(volunteers)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewSignupController(signupWizard).RegisterRoutes(r)
	NewAuthController(gate).RegisterRoutes(r)
	NewAdminController(volunteers, logins).RegisterRoutes(r, gate)

	return &testEnv{
		router:     r,
		volunteers: volunteers,
		logins:     logins,
		gate:       gate,
	}
}

func seedVolunteer(env *testEnv, id string, status string) *storage.Volunteer {
	v := &storage.Volunteer{
		ID:               id,
		FirstName:        "Mike",
		LastName:         "Chen",
		Email:            "mike@x.com",
		Phone:            "(555) 123-4567",
		Availability:     "weekends",
		Skills:           []string{"Driving"},
		SelectedSlots:    []string{"1"},
		RegistrationDate: "2024-06-20T10:00:00Z",
		Status:           status,
		AssignedShifts:   0,
	}
	env.volunteers.Append(v)
	return v
}
