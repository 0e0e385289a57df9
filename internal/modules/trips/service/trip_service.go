package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bikeshare/internal/modules/trips/domain"
	tripsout "bikeshare/internal/modules/trips/port/out"
	"bikeshare/internal/platform/clock"
	apperrors "bikeshare/internal/platform/errors"
)

type TripService struct {
	clock     clock.Clock
	source    tripsout.DatasetSource
	files     tripsout.LocatedSource
	projector tripsout.DatasetProjector
	logger    *slog.Logger
}

// NewTripService wires the loader. source serves Load; files and projector
// serve Reindex and may be nil when reindexing is not configured.
func NewTripService(
	clk clock.Clock,
	source tripsout.DatasetSource,
	files tripsout.LocatedSource,
	projector tripsout.DatasetProjector,
	logger *slog.Logger,
) *TripService {
	return &TripService{
		clock:     clk,
		source:    source,
		files:     files,
		projector: projector,
		logger:    logger,
	}
}

// Load reads the city dataset and narrows it to the filter. It returns the
// unfiltered row count alongside the filtered view.
func (s *TripService) Load(ctx context.Context, filter domain.Filter) (int, domain.Dataset, time.Duration, error) {
	if err := filter.Validate(); err != nil {
		return 0, domain.Dataset{}, 0, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	started := s.clock.Now()
	raw, err := s.source.Read(ctx, filter.City)
	if err != nil {
		return 0, domain.Dataset{}, 0, fmt.Errorf("read %s dataset: %w", filter.City, err)
	}
	full, err := domain.ParseDataset(filter.City, raw)
	if err != nil {
		return 0, domain.Dataset{}, 0, fmt.Errorf("parse %s dataset: %w", filter.City, err)
	}
	filtered := full.Filter(filter.Month, filter.Day)
	elapsed := clock.Since(s.clock, started)
	s.logger.DebugContext(ctx, "dataset loaded",
		slog.String("city", string(filter.City)),
		slog.String("month", filter.Month),
		slog.String("day", filter.Day),
		slog.Int("rows", full.Len()),
		slog.Int("kept", filtered.Len()),
		slog.Duration("elapsed", elapsed))
	return full.Len(), filtered, elapsed, nil
}

type ReindexResult struct {
	City domain.City
	Rows int
	Path string
}

// Reindex parses every requested city file and replaces its projection.
func (s *TripService) Reindex(ctx context.Context, cities []domain.City) ([]ReindexResult, error) {
	if s.files == nil || s.projector == nil {
		return nil, fmt.Errorf("reindex is not configured")
	}
	if len(cities) == 0 {
		cities = domain.Cities
	}
	results := make([]ReindexResult, 0, len(cities))
	for _, city := range cities {
		if err := city.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
		raw, err := s.files.Read(ctx, city)
		if err != nil {
			return nil, fmt.Errorf("read %s dataset: %w", city, err)
		}
		ds, err := domain.ParseDataset(city, raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s dataset: %w", city, err)
		}
		if err := s.projector.Replace(ctx, ds); err != nil {
			return nil, err
		}
		s.logger.InfoContext(ctx, "dataset projected", slog.String("city", string(city)), slog.Int("rows", ds.Len()))
		results = append(results, ReindexResult{City: city, Rows: ds.Len(), Path: s.files.Path(city)})
	}
	return results, nil
}
