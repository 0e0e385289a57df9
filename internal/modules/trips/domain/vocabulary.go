package domain

import (
	"fmt"
	"time"
)

type City string

const (
	CityChicago     City = "chicago"
	CityNewYorkCity City = "new york city"
	CityWashington  City = "washington"
)

// All disables the month or day filter.
const All = "all"

var (
	Cities = []City{CityChicago, CityNewYorkCity, CityWashington}

	defaultFiles = map[City]string{
		CityChicago:     "chicago.csv",
		CityNewYorkCity: "new_york_city.csv",
		CityWashington:  "washington.csv",
	}

	Months = []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}

	// Weekdays is ordered monday-first; index 0 is monday.
	Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

func (c City) Validate() error {
	if _, ok := defaultFiles[c]; !ok {
		return fmt.Errorf("unsupported city %q", string(c))
	}
	return nil
}

// DefaultFile is the data file name a city is read from unless configured otherwise.
func (c City) DefaultFile() string {
	return defaultFiles[c]
}

func CityNames() []string {
	out := make([]string, 0, len(Cities))
	for _, c := range Cities {
		out = append(out, string(c))
	}
	return out
}

// MonthNumber maps a month name to its 1-based calendar month.
func MonthNumber(name string) (time.Month, bool) {
	for i, m := range Months {
		if m == name {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

// WeekdayIndex maps a day name to its 0-based monday-first position.
func WeekdayIndex(name string) (int, bool) {
	for i, d := range Weekdays {
		if d == name {
			return i, true
		}
	}
	return 0, false
}

// MondayIndex converts a time.Weekday (sunday-first) to the monday-first index.
func MondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return Months[m-1]
}

func WeekdayName(idx int) string {
	if idx < 0 || idx >= len(Weekdays) {
		return ""
	}
	return Weekdays[idx]
}
