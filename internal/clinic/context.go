// Package clinic models the read-only business context that the host attaches
// to every booking request: organization identity, locations with their weekly
// open-hours tables, offered services, and accepted insurers.
package clinic

import (
	"errors"
	"strings"
)

// ErrLocationNotFound is returned when a location name does not match any
// location in the business context.
var ErrLocationNotFound = errors.New("clinic: location not found")

// OpeningHours carries the weekly hours table in the same shape the host
// forwards from its places lookup: one line per weekday, e.g.
// "Monday: 8:00 AM - 5:00 PM" or "Sunday: Closed".
type OpeningHours struct {
	WeekdayText []string `json:"weekday_text"`
}

// Location is a single clinic site.
type Location struct {
	Name         string        `json:"name"`
	Address1     string        `json:"address1"`
	Address2     string        `json:"address2,omitempty"`
	City         string        `json:"city"`
	State        string        `json:"state"`
	Zip          string        `json:"zip"`
	OpeningHours *OpeningHours `json:"opening_hours,omitempty"`
}

// BusinessContext is supplied fresh on every request and never mutated.
type BusinessContext struct {
	CompanyName        string
	AgentName          string
	Industry           string
	Category           string
	Locations          []Location
	InsuranceProviders []string
	Services           []string
}

// FindLocation matches a location by name, case-insensitively. The needle may
// be the display name or its slugged form (spaces collapsed to underscores).
func (b BusinessContext) FindLocation(name string) (Location, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return Location{}, ErrLocationNotFound
	}
	for _, loc := range b.Locations {
		lower := strings.ToLower(loc.Name)
		if lower == needle || strings.ReplaceAll(lower, " ", "_") == needle {
			return loc, nil
		}
	}
	return Location{}, ErrLocationNotFound
}

// LocationNames returns the display names of all locations, in payload order.
func (b BusinessContext) LocationNames() []string {
	names := make([]string, 0, len(b.Locations))
	for _, loc := range b.Locations {
		if loc.Name != "" {
			names = append(names, loc.Name)
		}
	}
	return names
}
