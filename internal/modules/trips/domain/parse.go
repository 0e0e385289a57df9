package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	apperrors "bikeshare/internal/platform/errors"
)

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"2006-01-02",
}

// ParseTimestamp reads a naive timestamp as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}

// ParseSeconds converts a (possibly fractional) seconds cell to a duration.
func ParseSeconds(value string) (time.Duration, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid duration %q", value)
	}
	return time.Duration(math.Round(f * float64(time.Second))), nil
}

// ParseDataset coerces a raw city table into typed trips. Gender and birth
// year are optional columns; blank optional cells become missing values.
func ParseDataset(city City, raw RawTable) (Dataset, error) {
	idx := make(map[string]int, len(RequiredColumns))
	for _, col := range RequiredColumns {
		i := raw.Index(col)
		if i < 0 {
			return Dataset{}, fmt.Errorf("%s: %q: %w", city, col, apperrors.ErrMissingColumn)
		}
		idx[col] = i
	}
	genderIdx := raw.Index(ColumnGender)
	birthIdx := raw.Index(ColumnBirthYear)

	ds := Dataset{
		City:         city,
		HasGender:    genderIdx >= 0,
		HasBirthYear: birthIdx >= 0,
		Trips:        make([]Trip, 0, len(raw.Rows)),
	}
	for n, row := range raw.Rows {
		line := n + 2 // header is line 1
		cell := func(i int) string {
			if i < 0 || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		start, err := ParseTimestamp(cell(idx[ColumnStartTime]))
		if err != nil {
			return Dataset{}, fmt.Errorf("%s line %d: start time: %w", city, line, err)
		}
		end, err := ParseTimestamp(cell(idx[ColumnEndTime]))
		if err != nil {
			return Dataset{}, fmt.Errorf("%s line %d: end time: %w", city, line, err)
		}
		dur, err := ParseSeconds(cell(idx[ColumnTripDuration]))
		if err != nil {
			return Dataset{}, fmt.Errorf("%s line %d: %w", city, line, err)
		}
		trip := Trip{
			StartTime:    start,
			EndTime:      end,
			Duration:     dur,
			StartStation: cell(idx[ColumnStartStation]),
			EndStation:   cell(idx[ColumnEndStation]),
			UserType:     cell(idx[ColumnUserType]),
			Gender:       cell(genderIdx),
		}
		if v := cell(birthIdx); v != "" {
			year, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return Dataset{}, fmt.Errorf("%s line %d: invalid birth year %q", city, line, v)
			}
			trip.BirthYear = int(year)
			trip.HasBirthYear = true
		}
		ds.Trips = append(ds.Trips, trip)
	}
	return ds, nil
}
