package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	statsdto "bikeshare/internal/modules/stats/dto"
	tripsdto "bikeshare/internal/modules/trips/dto"
	"bikeshare/internal/ui/theme"
)

// Reporter prints the four statistics sections for a loaded dataset.
type Reporter struct {
	stats StatsPort
	out   io.Writer
}

func NewReporter(stats StatsPort, out io.Writer) Reporter {
	return Reporter{stats: stats, out: out}
}

// Write runs every section in order and stops at the first error.
func (r Reporter) Write(ctx context.Context, loaded tripsdto.LoadOutput) error {
	for _, section := range []func(context.Context, tripsdto.LoadOutput) error{
		r.timeSection,
		r.stationSection,
		r.durationSection,
		r.userSection,
	} {
		if err := section(ctx, loaded); err != nil {
			return err
		}
	}
	return nil
}

func (r Reporter) timeSection(ctx context.Context, loaded tripsdto.LoadOutput) error {
	r.heading("Calculating The Most Frequent Times of Travel...")
	out, err := r.stats.TimeStats(ctx, loaded)
	if err != nil {
		return fmt.Errorf("time stats: %w", err)
	}
	r.line("Most common month", titled(out.Month))
	r.line("Most common day of the week", titled(out.Weekday))
	r.line("Most common start hour", fmt.Sprintf("%d:00", out.Hour))
	r.footer(out.Elapsed)
	return nil
}

func (r Reporter) stationSection(ctx context.Context, loaded tripsdto.LoadOutput) error {
	r.heading("Calculating The Most Popular Stations and Trip...")
	out, err := r.stats.StationStats(ctx, loaded)
	if err != nil {
		return fmt.Errorf("station stats: %w", err)
	}
	r.line("Most common starting station", orUnknown(out.Start))
	r.line("Most common end station", orUnknown(out.End))
	r.line("Most common trip", orUnknown(out.Trip))
	r.footer(out.Elapsed)
	return nil
}

func (r Reporter) durationSection(ctx context.Context, loaded tripsdto.LoadOutput) error {
	r.heading("Calculating Trip Duration...")
	out, err := r.stats.DurationStats(ctx, loaded)
	if err != nil {
		return fmt.Errorf("duration stats: %w", err)
	}
	r.line("Total travel time", FormatDuration(out.Total))
	r.line("Mean travel time", FormatDuration(out.Mean))
	r.footer(out.Elapsed)
	return nil
}

func (r Reporter) userSection(ctx context.Context, loaded tripsdto.LoadOutput) error {
	r.heading("Calculating User Stats...")
	out, err := r.stats.UserStats(ctx, loaded)
	if err != nil {
		return fmt.Errorf("user stats: %w", err)
	}
	r.printf("%s\n", theme.Label.Render("User Types:"))
	r.counts(out.UserTypes)
	if out.GenderAvailable {
		r.printf("%s\n", theme.Label.Render("Gender Counts:"))
		r.counts(out.Genders)
	} else {
		r.printf("%s\n", theme.Muted.Render("Gender information not available in this data set"))
	}
	if out.BirthYearAvailable {
		r.line("Earliest customer birth year", fmt.Sprint(out.EarliestBirthYear))
		r.line("Most recent customer birth year", fmt.Sprint(out.LatestBirthYear))
		r.line("Most common customer birth year", fmt.Sprint(out.CommonBirthYear))
	} else {
		r.printf("%s\n", theme.Muted.Render("Birth year information not available in this data set"))
	}
	r.footer(out.Elapsed)
	return nil
}

func (r Reporter) heading(text string) {
	r.printf("\n%s\n\n", theme.Title.Render(text))
}

func (r Reporter) line(label, value string) {
	r.printf("%s: %s\n", label, theme.Value.Render(value))
}

func (r Reporter) counts(counts []statsdto.CountOutput) {
	for _, c := range counts {
		r.printf("  %s: %s\n", c.Value, humanize.Comma(int64(c.Count)))
	}
}

func (r Reporter) footer(elapsed time.Duration) {
	r.printf("\n%s\n%s\n", theme.Muted.Render(fmt.Sprintf("This took %.6f seconds.", elapsed.Seconds())), separator)
}

func (r Reporter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// FormatDuration renders d as "[N days ]HH:MM:SS", rounded to the second.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	clock := fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	switch days {
	case 0:
		return clock
	case 1:
		return "1 day " + clock
	default:
		return fmt.Sprintf("%d days %s", days, clock)
	}
}

func titled(name string) string {
	return cases.Title(language.English).String(name)
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
