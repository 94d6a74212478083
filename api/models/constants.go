package models

type Availability string

const (
	AvailabilityWeekdayMornings   Availability = "weekday-mornings"
	AvailabilityWeekdayAfternoons Availability = "weekday-afternoons"
	AvailabilityWeekdayEvenings   Availability = "weekday-evenings"
	AvailabilityWeekends          Availability = "weekends"
	AvailabilityFlexible          Availability = "flexible"
)

var ValidAvailabilities = map[Availability]string{
	AvailabilityWeekdayMornings:   "Weekday Mornings",
	AvailabilityWeekdayAfternoons: "Weekday Afternoons",
	AvailabilityWeekdayEvenings:   "Weekday Evenings",
	AvailabilityWeekends:          "Weekends",
	AvailabilityFlexible:          "Flexible",
}

var SkillOptions = []string{
	"Driving",
	"Heavy Lifting",
	"Customer Service",
	"Organization",
	"Language Skills",
	"Food Safety",
}

var TransportationOptions = map[string]string{
	"car":    "Personal Car",
	"truck":  "Truck/Van",
	"public": "Public Transportation",
	"none":   "No Transportation",
}
