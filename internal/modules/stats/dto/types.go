package dto

import (
	"time"

	tripsdomain "bikeshare/internal/modules/trips/domain"
)

type Input struct {
	Dataset tripsdomain.Dataset
}

type TimeOutput struct {
	Month   string
	Weekday string
	Hour    int
	Elapsed time.Duration
}

type StationOutput struct {
	Start   string
	End     string
	Trip    string
	Elapsed time.Duration
}

type DurationOutput struct {
	Total   time.Duration
	Mean    time.Duration
	Elapsed time.Duration
}

type CountOutput struct {
	Value string
	Count int
}

type UserOutput struct {
	UserTypes          []CountOutput
	GenderAvailable    bool
	Genders            []CountOutput
	BirthYearAvailable bool
	EarliestBirthYear  int
	LatestBirthYear    int
	CommonBirthYear    int
	Elapsed            time.Duration
}
