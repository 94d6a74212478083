package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/AniketJas/volunteer-signup/api/controllers"
	"github.com/AniketJas/volunteer-signup/api/transport"
	"github.com/AniketJas/volunteer-signup/auth"
	"github.com/AniketJas/volunteer-signup/logging"
	"github.com/AniketJas/volunteer-signup/storage"
	"github.com/AniketJas/volunteer-signup/wizard"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	// Create storage
	store, err := storage.NewBadgerStore(s.config.DataDir)
	if err != nil {
		logging.Log.Errorf("failed to open data store: %v", err)
		panic("failed to open data store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Log.Errorf("failed to close data store: %v", err)
		}
	}()

	volunteerStorage := &storage.TableVolunteerStorage{
		Store: store,
		Table: s.config.TableVolunteers,
	}
	loginStorage := &storage.TableAdminLoginStorage{
		Store: store,
		Table: s.config.TableAdminLogins,
	}

	gate := auth.NewGate(auth.Credentials{
		Email:    s.config.AdminEmail,
		Password: s.config.AdminPassword,
	}, loginStorage)
	signupWizard := wizard.New(volunteerStorage)

	//Register controllers
	signupController := controllers.NewSignupController(signupWizard)
	signupController.RegisterRoutes(r)
	authController := controllers.NewAuthController(gate)
	authController.RegisterRoutes(r)
	adminController := controllers.NewAdminController(volunteerStorage, loginStorage)
	adminController.RegisterRoutes(r, gate)

	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", s.config.Port))

	if err := r.Run(fmt.Sprintf(":%d", s.config.Port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
