package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"bikeshare/internal/platform/id"
)

// Session drives the interactive filter, report and browse loop.
type Session struct {
	trips    TripsPort
	term     Terminal
	reporter Reporter
	pager    Pager
	ids      id.Generator
	logger   *slog.Logger
}

func NewSession(trips TripsPort, stats StatsPort, term Terminal, out io.Writer, ids id.Generator, logger *slog.Logger) *Session {
	return &Session{
		trips:    trips,
		term:     term,
		reporter: NewReporter(stats, out),
		pager:    NewPager(term),
		ids:      ids,
		logger:   logger,
	}
}

// Run loops until the user declines to restart or input ends. Only load and
// statistics failures are returned.
func (s *Session) Run(ctx context.Context) error {
	vocab := s.trips.Vocabulary()
	for {
		runID := s.ids.New()
		filter := CollectFilters(ctx, s.term, vocab)
		s.logger.DebugContext(ctx, "session run", "run_id", runID, "city", filter.City, "month", filter.Month, "day", filter.Day)

		if filter.Month != vocab.All {
			s.term.Printf("Filtering to events in %s\n", filter.Month)
		}
		if filter.Day != vocab.All {
			s.term.Printf("Filtering to events on %s\n", filter.Day)
		}

		loaded, err := s.trips.Load(ctx, filter.City, filter.Month, filter.Day)
		if err != nil {
			return fmt.Errorf("load %s: %w", filter.City, err)
		}
		s.logger.DebugContext(ctx, "filtered view ready", "run_id", runID, "rows", loaded.Len(), "total", loaded.Total)

		if loaded.Len() == 0 {
			s.term.Println("No data found with your search criteria")
		} else {
			if err := s.reporter.Write(ctx, loaded); err != nil {
				return err
			}
			s.pager.Run(ctx, loaded)
		}

		answer, err := s.term.ReadLine(ctx, "\nWould you like to restart? Enter yes or no.\n")
		if err != nil || strings.ToLower(strings.TrimSpace(answer)) != "yes" {
			s.logger.DebugContext(ctx, "session finished", "run_id", runID)
			return nil
		}
	}
}
