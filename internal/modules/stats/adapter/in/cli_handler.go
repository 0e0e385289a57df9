package in

import (
	"context"

	"bikeshare/internal/modules/stats/dto"
	statsin "bikeshare/internal/modules/stats/port/in"
	tripsdto "bikeshare/internal/modules/trips/dto"
)

type CLIHandler struct {
	usecase statsin.Usecase
}

func NewCLIHandler(usecase statsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) TimeStats(ctx context.Context, loaded tripsdto.LoadOutput) (dto.TimeOutput, error) {
	return h.usecase.TimeStats(ctx, dto.Input{Dataset: loaded.Dataset})
}

func (h CLIHandler) StationStats(ctx context.Context, loaded tripsdto.LoadOutput) (dto.StationOutput, error) {
	return h.usecase.StationStats(ctx, dto.Input{Dataset: loaded.Dataset})
}

func (h CLIHandler) DurationStats(ctx context.Context, loaded tripsdto.LoadOutput) (dto.DurationOutput, error) {
	return h.usecase.DurationStats(ctx, dto.Input{Dataset: loaded.Dataset})
}

func (h CLIHandler) UserStats(ctx context.Context, loaded tripsdto.LoadOutput) (dto.UserOutput, error) {
	return h.usecase.UserStats(ctx, dto.Input{Dataset: loaded.Dataset})
}
