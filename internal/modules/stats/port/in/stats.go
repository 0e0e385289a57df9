package in

import (
	"context"

	"bikeshare/internal/modules/stats/dto"
)

type Usecase interface {
	TimeStats(ctx context.Context, input dto.Input) (dto.TimeOutput, error)
	StationStats(ctx context.Context, input dto.Input) (dto.StationOutput, error)
	DurationStats(ctx context.Context, input dto.Input) (dto.DurationOutput, error)
	UserStats(ctx context.Context, input dto.Input) (dto.UserOutput, error)
}
