package in

import (
	"context"

	"bikeshare/internal/modules/trips/dto"
	tripsin "bikeshare/internal/modules/trips/port/in"
)

type CLIHandler struct {
	usecase tripsin.Usecase
}

func NewCLIHandler(usecase tripsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Vocabulary() dto.Vocabulary {
	return h.usecase.Vocabulary()
}

func (h CLIHandler) Load(ctx context.Context, city, month, day string) (dto.LoadOutput, error) {
	return h.usecase.Load(ctx, dto.LoadInput{City: city, Month: month, Day: day})
}

func (h CLIHandler) Reindex(ctx context.Context, cities []string) (dto.ReindexOutput, error) {
	return h.usecase.Reindex(ctx, dto.ReindexInput{Cities: cities})
}
