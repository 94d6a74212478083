package models

import (
	"github.com/AniketJas/volunteer-signup/wizard"
)

type SetFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type ToggleSkillRequest struct {
	Skill string `json:"skill"`
}

type ToggleSlotRequest struct {
	SlotID string `json:"slotId"`
}

type SignupFormResponse struct {
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Availability     string   `json:"availability"`
	Skills           []string `json:"skills"`
	Experience       string   `json:"experience"`
	Transportation   string   `json:"transportation"`
	EmergencyContact string   `json:"emergencyContact"`
	SelectedSlots    []string `json:"selectedSlots"`
}

type SignupStateResponse struct {
	Step string             `json:"step"`
	Form SignupFormResponse `json:"form"`
}

func TransformWizardSnapshot(step wizard.Step, form wizard.FormData) SignupStateResponse {
	skills := form.Skills
	if skills == nil {
		skills = []string{}
	}
	slots := form.SelectedSlots
	if slots == nil {
		slots = []string{}
	}

	return SignupStateResponse{
		Step: step.String(),
		Form: SignupFormResponse{
			FirstName:        form.FirstName,
			LastName:         form.LastName,
			Email:            form.Email,
			Phone:            form.Phone,
			Availability:     form.Availability,
			Skills:           skills,
			Experience:       form.Experience,
			Transportation:   form.Transportation,
			EmergencyContact: form.EmergencyContact,
			SelectedSlots:    slots,
		},
	}
}

// SignupOptionsResponse carries the fixed option sets the sign-up form renders.
type SignupOptionsResponse struct {
	Availabilities []OptionEntry `json:"availabilities"`
	Skills         []string      `json:"skills"`
	Transportation []OptionEntry `json:"transportation"`
}

type OptionEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}
