package service

import (
	"context"
	"fmt"
	"time"

	"bikeshare/internal/modules/stats/domain"
	tripsdomain "bikeshare/internal/modules/trips/domain"
	"bikeshare/internal/platform/clock"
	apperrors "bikeshare/internal/platform/errors"
)

type StatsService struct {
	clock clock.Clock
}

func NewStatsService(clk clock.Clock) *StatsService {
	return &StatsService{clock: clk}
}

func (s *StatsService) TimeStats(ctx context.Context, ds tripsdomain.Dataset) (domain.TimeStats, time.Duration, error) {
	if err := guard(ctx, ds); err != nil {
		return domain.TimeStats{}, 0, err
	}
	started := s.clock.Now()
	months := make([]time.Month, 0, ds.Len())
	days := make([]int, 0, ds.Len())
	hours := make([]int, 0, ds.Len())
	for _, trip := range ds.Trips {
		months = append(months, trip.StartTime.Month())
		days = append(days, tripsdomain.MondayIndex(trip.StartTime.Weekday()))
		hours = append(hours, trip.StartTime.Hour())
	}
	out := domain.TimeStats{}
	out.Month, _ = domain.Mode(months)
	out.Weekday, _ = domain.Mode(days)
	out.Hour, _ = domain.Mode(hours)
	return out, clock.Since(s.clock, started), nil
}

func (s *StatsService) StationStats(ctx context.Context, ds tripsdomain.Dataset) (domain.StationStats, time.Duration, error) {
	if err := guard(ctx, ds); err != nil {
		return domain.StationStats{}, 0, err
	}
	started := s.clock.Now()
	starts := make([]string, 0, ds.Len())
	ends := make([]string, 0, ds.Len())
	trips := make([]string, 0, ds.Len())
	for _, trip := range ds.Trips {
		if trip.StartStation != "" {
			starts = append(starts, trip.StartStation)
		}
		if trip.EndStation != "" {
			ends = append(ends, trip.EndStation)
		}
		if trip.StartStation != "" && trip.EndStation != "" {
			trips = append(trips, trip.StartStation+domain.TripSeparator+trip.EndStation)
		}
	}
	out := domain.StationStats{}
	out.Start, out.HasStart = domain.Mode(starts)
	out.End, out.HasEnd = domain.Mode(ends)
	out.Trip, out.HasTrip = domain.Mode(trips)
	return out, clock.Since(s.clock, started), nil
}

func (s *StatsService) DurationStats(ctx context.Context, ds tripsdomain.Dataset) (domain.DurationStats, time.Duration, error) {
	if err := guard(ctx, ds); err != nil {
		return domain.DurationStats{}, 0, err
	}
	started := s.clock.Now()
	var total time.Duration
	for _, trip := range ds.Trips {
		total += trip.Duration
	}
	out := domain.DurationStats{Total: total, Mean: total / time.Duration(ds.Len())}
	return out, clock.Since(s.clock, started), nil
}

func (s *StatsService) UserStats(ctx context.Context, ds tripsdomain.Dataset) (domain.UserStats, time.Duration, error) {
	if err := guard(ctx, ds); err != nil {
		return domain.UserStats{}, 0, err
	}
	started := s.clock.Now()
	userTypes := make([]string, 0, ds.Len())
	genders := make([]string, 0, ds.Len())
	years := make([]int, 0, ds.Len())
	for _, trip := range ds.Trips {
		if trip.UserType != "" {
			userTypes = append(userTypes, trip.UserType)
		}
		if ds.HasGender && trip.Gender != "" {
			genders = append(genders, trip.Gender)
		}
		if ds.HasBirthYear && trip.HasBirthYear {
			years = append(years, trip.BirthYear)
		}
	}
	out := domain.UserStats{
		UserTypes:       domain.ValueCounts(userTypes),
		GenderAvailable: ds.HasGender,
	}
	if ds.HasGender {
		out.Genders = domain.ValueCounts(genders)
	}
	if lo, hi, ok := domain.MinMax(years); ok {
		common, _ := domain.Mode(years)
		out.BirthYearAvailable = true
		out.BirthYears = domain.BirthYearStats{Earliest: lo, Latest: hi, Common: common}
	}
	return out, clock.Since(s.clock, started), nil
}

func guard(ctx context.Context, ds tripsdomain.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ds.Len() == 0 {
		return fmt.Errorf("%s: %w", ds.City, apperrors.ErrEmptyDataset)
	}
	return nil
}
