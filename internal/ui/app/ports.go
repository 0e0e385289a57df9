package app

import (
	"context"

	statsdto "bikeshare/internal/modules/stats/dto"
	tripsdto "bikeshare/internal/modules/trips/dto"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface the console flow needs from a module
// handler or from the terminal.

type TripsPort interface {
	Vocabulary() tripsdto.Vocabulary
	Load(ctx context.Context, city, month, day string) (tripsdto.LoadOutput, error)
}

type StatsPort interface {
	TimeStats(ctx context.Context, loaded tripsdto.LoadOutput) (statsdto.TimeOutput, error)
	StationStats(ctx context.Context, loaded tripsdto.LoadOutput) (statsdto.StationOutput, error)
	DurationStats(ctx context.Context, loaded tripsdto.LoadOutput) (statsdto.DurationOutput, error)
	UserStats(ctx context.Context, loaded tripsdto.LoadOutput) (statsdto.UserOutput, error)
}

type Terminal interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
	Choose(ctx context.Context, label string, allowed []string, def string) string
	Printf(format string, args ...any)
	Println(args ...any)
}
