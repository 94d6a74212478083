// Package export produces download snapshots of the volunteer and admin-login
// collections. Every function serializes the records it is handed at call
// time; nothing here subscribes to later changes.
package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AniketJas/volunteer-signup/logging"
	"github.com/AniketJas/volunteer-signup/storage"
)

var csvHeader = []string{
	"Name", "Email", "Phone", "Skills", "Availability",
	"Registration Date", "Status", "Assigned Shifts",
}

// VolunteersCSV renders one quoted row per volunteer under a quoted header
// row. Skills are joined with "; ". Every field is double-quote wrapped.
func VolunteersCSV(volunteers []*storage.Volunteer) string {
	rows := make([]string, 0, len(volunteers)+1)
	rows = append(rows, csvRow(csvHeader))

	for _, v := range volunteers {
		rows = append(rows, csvRow([]string{
			v.FirstName + " " + v.LastName,
			v.Email,
			v.Phone,
			strings.Join(v.Skills, "; "),
			v.Availability,
			v.RegistrationDate,
			v.Status,
			strconv.Itoa(v.AssignedShifts),
		}))
	}
	return strings.Join(rows, "\n")
}

// VolunteersJSON is the pretty-printed (2-space indent) array of the full
// record set.
func VolunteersJSON(volunteers []*storage.Volunteer) string {
	if volunteers == nil {
		volunteers = []*storage.Volunteer{}
	}
	return marshalIndent(volunteers)
}

func AdminLoginsJSON(logins []*storage.AdminLogin) string {
	if logins == nil {
		logins = []*storage.AdminLogin{}
	}
	return marshalIndent(logins)
}

func VolunteersCSVFilename() string {
	return fmt.Sprintf("volunteers_%s.csv", datestamp())
}

func VolunteersJSONFilename() string {
	return fmt.Sprintf("volunteers_%s.json", datestamp())
}

func AdminLoginsJSONFilename() string {
	return fmt.Sprintf("admin_logins_%s.json", datestamp())
}

func csvRow(fields []string) string {
	quoted := make([]string, 0, len(fields))
	for _, f := range fields {
		quoted = append(quoted, `"`+f+`"`)
	}
	return strings.Join(quoted, ",")
}

func marshalIndent(records any) string {
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		logging.Log.Errorf("EXPORT: failed to marshal records: %v", err)
		return "[]"
	}
	return string(raw)
}

func datestamp() string {
	return time.Now().UTC().Format("2006-01-02")
}
