package usecase

import (
	"context"
	"strings"

	"bikeshare/internal/modules/trips/domain"
	"bikeshare/internal/modules/trips/dto"
	tripsin "bikeshare/internal/modules/trips/port/in"
	"bikeshare/internal/modules/trips/service"
)

type Interactor struct {
	svc *service.TripService
}

func NewInteractor(svc *service.TripService) tripsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Vocabulary() dto.Vocabulary {
	return dto.Vocabulary{
		Cities:      domain.CityNames(),
		Months:      append([]string(nil), domain.Months...),
		Days:        append([]string(nil), domain.Weekdays...),
		All:         domain.All,
		DefaultCity: string(domain.CityChicago),
	}
}

func (i *Interactor) Load(ctx context.Context, input dto.LoadInput) (dto.LoadOutput, error) {
	filter := domain.Filter{
		City:  domain.City(normalize(input.City, string(domain.CityChicago))),
		Month: normalize(input.Month, domain.All),
		Day:   normalize(input.Day, domain.All),
	}
	total, ds, elapsed, err := i.svc.Load(ctx, filter)
	if err != nil {
		return dto.LoadOutput{}, err
	}
	return dto.LoadOutput{
		City:     string(filter.City),
		Month:    filter.Month,
		Day:      filter.Day,
		Total:    total,
		Dataset:  ds,
		Duration: elapsed,
	}, nil
}

func (i *Interactor) Reindex(ctx context.Context, input dto.ReindexInput) (dto.ReindexOutput, error) {
	cities := make([]domain.City, 0, len(input.Cities))
	for _, c := range input.Cities {
		cities = append(cities, domain.City(normalize(c, "")))
	}
	results, err := i.svc.Reindex(ctx, cities)
	if err != nil {
		return dto.ReindexOutput{}, err
	}
	out := dto.ReindexOutput{Cities: make([]dto.ReindexCityOutput, 0, len(results))}
	for _, r := range results {
		out.Cities = append(out.Cities, dto.ReindexCityOutput{City: string(r.City), Rows: r.Rows, Path: r.Path})
	}
	return out, nil
}

func normalize(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}
