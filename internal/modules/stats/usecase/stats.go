package usecase

import (
	"context"

	"bikeshare/internal/modules/stats/domain"
	"bikeshare/internal/modules/stats/dto"
	statsin "bikeshare/internal/modules/stats/port/in"
	"bikeshare/internal/modules/stats/service"
	tripsdomain "bikeshare/internal/modules/trips/domain"
)

type Interactor struct {
	svc *service.StatsService
}

func NewInteractor(svc *service.StatsService) statsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) TimeStats(ctx context.Context, input dto.Input) (dto.TimeOutput, error) {
	stats, elapsed, err := i.svc.TimeStats(ctx, input.Dataset)
	if err != nil {
		return dto.TimeOutput{}, err
	}
	return dto.TimeOutput{
		Month:   tripsdomain.MonthName(stats.Month),
		Weekday: tripsdomain.WeekdayName(stats.Weekday),
		Hour:    stats.Hour,
		Elapsed: elapsed,
	}, nil
}

func (i *Interactor) StationStats(ctx context.Context, input dto.Input) (dto.StationOutput, error) {
	stats, elapsed, err := i.svc.StationStats(ctx, input.Dataset)
	if err != nil {
		return dto.StationOutput{}, err
	}
	return dto.StationOutput{Start: stats.Start, End: stats.End, Trip: stats.Trip, Elapsed: elapsed}, nil
}

func (i *Interactor) DurationStats(ctx context.Context, input dto.Input) (dto.DurationOutput, error) {
	stats, elapsed, err := i.svc.DurationStats(ctx, input.Dataset)
	if err != nil {
		return dto.DurationOutput{}, err
	}
	return dto.DurationOutput{Total: stats.Total, Mean: stats.Mean, Elapsed: elapsed}, nil
}

func (i *Interactor) UserStats(ctx context.Context, input dto.Input) (dto.UserOutput, error) {
	stats, elapsed, err := i.svc.UserStats(ctx, input.Dataset)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return dto.UserOutput{
		UserTypes:          toCountOutputs(stats.UserTypes),
		GenderAvailable:    stats.GenderAvailable,
		Genders:            toCountOutputs(stats.Genders),
		BirthYearAvailable: stats.BirthYearAvailable,
		EarliestBirthYear:  stats.BirthYears.Earliest,
		LatestBirthYear:    stats.BirthYears.Latest,
		CommonBirthYear:    stats.BirthYears.Common,
		Elapsed:            elapsed,
	}, nil
}

func toCountOutputs(counts []domain.Count[string]) []dto.CountOutput {
	out := make([]dto.CountOutput, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.CountOutput{Value: c.Value, Count: c.N})
	}
	return out
}
