package models

// TimeSlot is a fixed-capacity volunteer time window a sign-up can claim.
// The catalog below is fixture data; capacity numbers are not derived from
// actual registrations.
type TimeSlot struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Type           string `json:"type"`
	Location       string `json:"location"`
	SlotsAvailable int    `json:"slotsAvailable"`
	TotalSlots     int    `json:"totalSlots"`
}

var TimeSlotCatalog = []TimeSlot{
	{
		ID:             "1",
		Date:           "2024-07-01",
		Time:           "09:00-12:00",
		Type:           "Food Pickup",
		Location:       "Downtown Market District",
		SlotsAvailable: 2,
		TotalSlots:     4,
	},
	{
		ID:             "2",
		Date:           "2024-07-01",
		Time:           "14:00-17:00",
		Type:           "Food Sorting",
		Location:       "FoodBridge Distribution Center",
		SlotsAvailable: 3,
		TotalSlots:     6,
	},
	{
		ID:             "3",
		Date:           "2024-07-02",
		Time:           "10:00-13:00",
		Type:           "Delivery",
		Location:       "East Side Community",
		SlotsAvailable: 1,
		TotalSlots:     3,
	},
	{
		ID:             "4",
		Date:           "2024-07-02",
		Time:           "15:00-18:00",
		Type:           "Food Pickup",
		Location:       "Restaurant Row",
		SlotsAvailable: 4,
		TotalSlots:     4,
	},
	{
		ID:             "5",
		Date:           "2024-07-03",
		Time:           "08:00-11:00",
		Type:           "Food Sorting",
		Location:       "FoodBridge Distribution Center",
		SlotsAvailable: 2,
		TotalSlots:     5,
	},
}

// Shift is the admin-side view of a scheduled shift with its current roster.
type Shift struct {
	ID            string   `json:"id"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Type          string   `json:"type"`
	Location      string   `json:"location"`
	Volunteers    []string `json:"volunteers"`
	MaxVolunteers int      `json:"maxVolunteers"`
}

var ShiftCatalog = []Shift{
	{
		ID:            "1",
		Date:          "2024-07-01",
		Time:          "09:00-12:00",
		Type:          "Food Pickup",
		Location:      "Downtown Market District",
		Volunteers:    []string{"Mike Chen", "Emma Rodriguez"},
		MaxVolunteers: 4,
	},
	{
		ID:            "2",
		Date:          "2024-07-01",
		Time:          "14:00-17:00",
		Type:          "Food Sorting",
		Location:      "FoodBridge Distribution Center",
		Volunteers:    []string{"Emma Rodriguez"},
		MaxVolunteers: 6,
	},
	{
		ID:            "3",
		Date:          "2024-07-02",
		Time:          "10:00-13:00",
		Type:          "Delivery",
		Location:      "East Side Community",
		Volunteers:    []string{"Mike Chen", "Emma Rodriguez"},
		MaxVolunteers: 3,
	},
}
