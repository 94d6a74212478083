package storage

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusActive   = "active"
)

type Volunteer struct {
	ID               string   `json:"id"`
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
	RegistrationDate string   `json:"registrationDate"`
	Status           string   `json:"status"`
	AssignedShifts   int      `json:"assignedShifts"`
}

type AdminLogin struct {
	Email     string `json:"email"`
	LoginDate string `json:"loginDate"`
}
