package domain

import "time"

type TimeStats struct {
	Month   time.Month
	Weekday int // monday-first
	Hour    int
}

type StationStats struct {
	Start    string
	End      string
	Trip     string
	HasStart bool
	HasEnd   bool
	HasTrip  bool
}

type DurationStats struct {
	Total time.Duration
	Mean  time.Duration
}

type BirthYearStats struct {
	Earliest int
	Latest   int
	Common   int
}

type UserStats struct {
	UserTypes          []Count[string]
	GenderAvailable    bool
	Genders            []Count[string]
	BirthYearAvailable bool
	BirthYears         BirthYearStats
}

// TripSeparator joins start and end station names into a trip label.
const TripSeparator = " to "
