package in

import (
	"context"

	"bikeshare/internal/modules/trips/dto"
)

type Usecase interface {
	Vocabulary() dto.Vocabulary
	Load(ctx context.Context, input dto.LoadInput) (dto.LoadOutput, error)
	Reindex(ctx context.Context, input dto.ReindexInput) (dto.ReindexOutput, error)
}
