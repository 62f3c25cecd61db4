package tz

import "time"

// Default is the location used when no timezone is configured (CET/CEST with
// automatic DST, the platform's historical home market).
var Default *time.Location

func init() {
	var err error
	Default, err = time.LoadLocation("Europe/Paris")
	if err != nil {
		panic("tz: load Europe/Paris: " + err.Error())
	}
}

// Load resolves an IANA timezone name, falling back to Default when the name
// is empty or unknown.
func Load(name string) *time.Location {
	if name == "" {
		return Default
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Default
	}
	return loc
}
