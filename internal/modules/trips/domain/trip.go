package domain

import (
	"fmt"
	"time"
)

const (
	ColumnStartTime    = "Start Time"
	ColumnEndTime      = "End Time"
	ColumnTripDuration = "Trip Duration"
	ColumnStartStation = "Start Station"
	ColumnEndStation   = "End Station"
	ColumnUserType     = "User Type"
	ColumnGender       = "Gender"
	ColumnBirthYear    = "Birth Year"
)

// RequiredColumns must appear in every city header.
var RequiredColumns = []string{
	ColumnStartTime,
	ColumnEndTime,
	ColumnTripDuration,
	ColumnStartStation,
	ColumnEndStation,
	ColumnUserType,
}

type Trip struct {
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	StartStation string
	EndStation   string
	UserType     string
	Gender       string
	BirthYear    int
	HasBirthYear bool
}

// RawTable is a header row plus string cells, as read from a city file.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// Index returns the position of column in the header, or -1.
func (t RawTable) Index(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

type Filter struct {
	City  City
	Month string
	Day   string
}

func (f Filter) Validate() error {
	if err := f.City.Validate(); err != nil {
		return err
	}
	if f.Month != All {
		if _, ok := MonthNumber(f.Month); !ok {
			return fmt.Errorf("unsupported month %q", f.Month)
		}
	}
	if f.Day != All {
		if _, ok := WeekdayIndex(f.Day); !ok {
			return fmt.Errorf("unsupported day %q", f.Day)
		}
	}
	return nil
}

// Dataset is an ordered, read-only set of trips for one city.
type Dataset struct {
	City         City
	HasGender    bool
	HasBirthYear bool
	Trips        []Trip
}

func (d Dataset) Len() int {
	return len(d.Trips)
}

// Filter returns the trips whose start time matches month and day. The
// receiver is left untouched.
func (d Dataset) Filter(month, day string) Dataset {
	out := Dataset{City: d.City, HasGender: d.HasGender, HasBirthYear: d.HasBirthYear}
	wantMonth, byMonth := MonthNumber(month)
	wantDay, byDay := WeekdayIndex(day)
	if !byMonth && !byDay {
		out.Trips = append([]Trip(nil), d.Trips...)
		return out
	}
	out.Trips = make([]Trip, 0, len(d.Trips))
	for _, trip := range d.Trips {
		if byMonth && trip.StartTime.Month() != wantMonth {
			continue
		}
		if byDay && MondayIndex(trip.StartTime.Weekday()) != wantDay {
			continue
		}
		out.Trips = append(out.Trips, trip)
	}
	return out
}

// Page returns trips in [from, to) clipped to the dataset bounds.
func (d Dataset) Page(from, to int) []Trip {
	if from < 0 {
		from = 0
	}
	if to > len(d.Trips) {
		to = len(d.Trips)
	}
	if from >= to {
		return nil
	}
	return d.Trips[from:to]
}

// Columns lists the header of the dataset in display order.
func (d Dataset) Columns() []string {
	cols := append([]string(nil), RequiredColumns...)
	if d.HasGender {
		cols = append(cols, ColumnGender)
	}
	if d.HasBirthYear {
		cols = append(cols, ColumnBirthYear)
	}
	return cols
}
