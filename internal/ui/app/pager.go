package app

import (
	"context"
	"strings"

	tripsdto "bikeshare/internal/modules/trips/dto"
	"bikeshare/internal/ui/components"
)

const PageSize = 5

// Pager is the interactive row viewer. Follow-up pages start one row past the
// first page, so row 6 is never shown, and paging stops as soon as a full
// page no longer fits past the cursor.
type Pager struct {
	term Terminal
	size int
}

func NewPager(term Terminal) Pager {
	return Pager{term: term, size: PageSize}
}

func (p Pager) Run(ctx context.Context, loaded tripsdto.LoadOutput) {
	if !p.confirm(ctx, "Would you like to view the tabular data? (y/n): ") {
		return
	}
	p.render(loaded, 0, p.size)
	cursor := p.size + 1
	for {
		if !p.confirm(ctx, "Would you like to view additional rows? (y/n): ") {
			return
		}
		p.render(loaded, cursor, cursor+p.size)
		cursor += p.size
		if cursor+p.size > loaded.Len() {
			return
		}
	}
}

func (p Pager) confirm(ctx context.Context, prompt string) bool {
	answer, err := p.term.ReadLine(ctx, prompt)
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(answer)) == "y"
}

func (p Pager) render(loaded tripsdto.LoadOutput, from, to int) {
	p.term.Println(components.Table(loaded.Columns(), loaded.Rows(from, to)))
}
