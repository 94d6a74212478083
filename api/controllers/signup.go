package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AniketJas/volunteer-signup/api/models"
	"github.com/AniketJas/volunteer-signup/logging"
	"github.com/AniketJas/volunteer-signup/wizard"
)

type SignupController struct {
	wizard *wizard.Wizard
}

func NewSignupController(w *wizard.Wizard) *SignupController {
	return &SignupController{wizard: w}
}

func (c *SignupController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.GET("/slots", c.listSlots)
	group.GET("/options", c.listOptions)
	group.GET("/signup", c.getState)
	group.POST("/signup/field", c.setField)
	group.POST("/signup/skills", c.toggleSkill)
	group.POST("/signup/slots", c.toggleSlot)
	group.POST("/signup/continue", c.continueToSchedule)
	group.POST("/signup/back", c.backToProfile)
	group.POST("/signup/submit", c.submit)
}

// listSlots godoc
// @Summary List available volunteer time slots
// @Tags signup
// @Produce json
// @Success 200 {array} models.TimeSlot
// @Router /api/slots [get]
func (c *SignupController) listSlots(g *gin.Context) {
	g.JSON(http.StatusOK, models.TimeSlotCatalog)
}

// listOptions godoc
// @Summary List the fixed option sets for the sign-up form
// @Tags signup
// @Produce json
// @Success 200 {object} models.SignupOptionsResponse
// @Router /api/options [get]
func (c *SignupController) listOptions(g *gin.Context) {
	availabilities := make([]models.OptionEntry, 0, len(models.ValidAvailabilities))
	for k, label := range models.ValidAvailabilities {
		availabilities = append(availabilities, models.OptionEntry{Key: string(k), Label: label})
	}
	transportation := make([]models.OptionEntry, 0, len(models.TransportationOptions))
	for k, label := range models.TransportationOptions {
		transportation = append(transportation, models.OptionEntry{Key: k, Label: label})
	}

	g.JSON(http.StatusOK, models.SignupOptionsResponse{
		Availabilities: availabilities,
		Skills:         models.SkillOptions,
		Transportation: transportation,
	})
}

// getState godoc
// @Summary Get the current sign-up wizard state
// @Tags signup
// @Produce json
// @Success 200 {object} models.SignupStateResponse
// @Router /api/signup [get]
func (c *SignupController) getState(g *gin.Context) {
	step, form := c.wizard.Snapshot()
	g.JSON(http.StatusOK, models.TransformWizardSnapshot(step, form))
}

// setField godoc
// @Summary Set a single sign-up form field
// @Tags signup
// @Accept json
// @Produce json
// @Param request body models.SetFieldRequest true "Field name and value"
// @Success 200 {object} models.SignupStateResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/signup/field [post]
func (c *SignupController) setField(g *gin.Context) {
	var req models.SetFieldRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Field == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request, missing field name"})
		return
	}

	if !c.wizard.SetField(req.Field, req.Value) {
		logging.Log.Warnf("SIGNUP: attempted to set unknown field: %s", req.Field)
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "unknown field: " + req.Field})
		return
	}

	step, form := c.wizard.Snapshot()
	g.JSON(http.StatusOK, models.TransformWizardSnapshot(step, form))
}

// toggleSkill godoc
// @Summary Toggle a skill selection
// @Tags signup
// @Accept json
// @Produce json
// @Param request body models.ToggleSkillRequest true "Skill to toggle"
// @Success 200 {object} models.SignupStateResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/signup/skills [post]
func (c *SignupController) toggleSkill(g *gin.Context) {
	var req models.ToggleSkillRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Skill == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request, missing skill"})
		return
	}

	c.wizard.ToggleSkill(req.Skill)
	step, form := c.wizard.Snapshot()
	g.JSON(http.StatusOK, models.TransformWizardSnapshot(step, form))
}

// toggleSlot godoc
// @Summary Toggle a time-slot selection
// @Tags signup
// @Accept json
// @Produce json
// @Param request body models.ToggleSlotRequest true "Slot id to toggle"
// @Success 200 {object} models.SignupStateResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/signup/slots [post]
func (c *SignupController) toggleSlot(g *gin.Context) {
	var req models.ToggleSlotRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.SlotID == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request, missing slotId"})
		return
	}

	c.wizard.ToggleSlot(req.SlotID)
	step, form := c.wizard.Snapshot()
	g.JSON(http.StatusOK, models.TransformWizardSnapshot(step, form))
}

// continueToSchedule godoc
// @Summary Advance the wizard to the schedule step
// @Tags signup
// @Produce json
// @Success 200 {object} models.SignupStateResponse
// @Failure 409 {object} models.ErrorResponse "Required profile fields missing"
// @Router /api/signup/continue [post]
func (c *SignupController) continueToSchedule(g *gin.Context) {
	if err := c.wizard.Continue(); err != nil {
		g.JSON(http.StatusConflict, &models.ErrorResponse{Error: err.Error()})
		return
	}

	step, form := c.wizard.Snapshot()
	g.JSON(http.StatusOK, models.TransformWizardSnapshot(step, form))
}

// backToProfile godoc
// @Summary Return the wizard to the profile step
// @Tags signup
// @Produce json
// @Success 200 {object} models.SignupStateResponse
// @Router /api/signup/back [post]
func (c *SignupController) backToProfile(g *gin.Context) {
	c.wizard.Back()
	step, form := c.wizard.Snapshot()
	g.JSON(http.StatusOK, models.TransformWizardSnapshot(step, form))
}

// submit godoc
// @Summary Complete the registration
// @Description Appends the volunteer record and resets the wizard to an empty profile step.
// @Tags signup
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Failure 409 {object} models.ErrorResponse "No slots selected or wrong step"
// @Failure 500 {object} models.ErrorResponse "Registration could not be saved"
// @Router /api/signup/submit [post]
func (c *SignupController) submit(g *gin.Context) {
	err := c.wizard.Submit()
	switch {
	case err == nil:
		g.JSON(http.StatusOK, &models.MessageResponse{
			Message: "Thank you for signing up. We'll contact you within 24 hours with next steps.",
		})
	case errors.Is(err, wizard.ErrNotSaved):
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{
			Error: "There was an issue saving your registration. Please try again.",
		})
	default:
		g.JSON(http.StatusConflict, &models.ErrorResponse{Error: err.Error()})
	}
}
