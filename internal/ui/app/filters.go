package app

import (
	"context"
	"strings"

	tripsdto "bikeshare/internal/modules/trips/dto"
)

var separator = strings.Repeat("-", 40)

type Filter struct {
	City  string
	Month string
	Day   string
}

// CollectFilters asks for city, month and day in that order. Every answer is
// validated against vocab; nothing checks whether the combination has data.
func CollectFilters(ctx context.Context, term Terminal, vocab tripsdto.Vocabulary) Filter {
	term.Println("Hello! Let's explore some US bikeshare data!")
	f := Filter{
		City:  term.Choose(ctx, "city", vocab.Cities, vocab.DefaultCity),
		Month: term.Choose(ctx, "month", append(append([]string(nil), vocab.Months...), vocab.All), vocab.All),
		Day:   term.Choose(ctx, "day", append(append([]string(nil), vocab.Days...), vocab.All), vocab.All),
	}
	term.Println(separator)
	return f
}
