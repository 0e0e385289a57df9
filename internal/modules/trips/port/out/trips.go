package out

import (
	"context"

	"bikeshare/internal/modules/trips/domain"
)

// DatasetSource returns the untyped rows of a city.
type DatasetSource interface {
	Read(ctx context.Context, city domain.City) (domain.RawTable, error)
}

// LocatedSource is a DatasetSource backed by one file per city.
type LocatedSource interface {
	DatasetSource
	Path(city domain.City) string
}

// DatasetProjector persists a parsed city dataset for later reads.
type DatasetProjector interface {
	Replace(ctx context.Context, dataset domain.Dataset) error
}
