package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"bikeshare/internal/modules/trips/domain"
	"bikeshare/internal/modules/trips/dto"
	tripsin "bikeshare/internal/modules/trips/port/in"
	"bikeshare/internal/modules/trips/service"
	"bikeshare/internal/modules/trips/usecase"
	apperrors "bikeshare/internal/platform/errors"
	"bikeshare/internal/platform/logging"
)

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }

type fakeSource struct {
	tables map[domain.City]domain.RawTable
	reads  int
}

func (f *fakeSource) Read(_ context.Context, city domain.City) (domain.RawTable, error) {
	f.reads++
	table, ok := f.tables[city]
	if !ok {
		return domain.RawTable{}, fmt.Errorf("open %s: file does not exist", city)
	}
	return table, nil
}

func (f *fakeSource) Path(city domain.City) string { return string(city) + ".csv" }

type fakeProjector struct {
	replaced []domain.Dataset
}

func (f *fakeProjector) Replace(_ context.Context, ds domain.Dataset) error {
	f.replaced = append(f.replaced, ds)
	return nil
}

func chicagoTable() domain.RawTable {
	return domain.RawTable{
		Columns: domain.RequiredColumns,
		Rows: [][]string{
			{"2017-01-02 08:00:00", "2017-01-02 08:10:00", "600", "A", "X", "Subscriber"},
			{"2017-03-06 09:00:00", "2017-03-06 09:10:00", "600", "A", "X", "Subscriber"},
			{"2017-03-07 10:00:00", "2017-03-07 10:10:00", "600", "B", "Y", "Customer"},
		},
	}
}

func newUsecase(src *fakeSource, projector *fakeProjector) tripsin.Usecase {
	return usecase.NewInteractor(service.NewTripService(fakeClock{}, src, src, projector, logging.Discard()))
}

func TestLoadFiltersByMonthAndDay(t *testing.T) {
	t.Parallel()
	src := &fakeSource{tables: map[domain.City]domain.RawTable{domain.CityChicago: chicagoTable()}}
	uc := newUsecase(src, &fakeProjector{})

	out, err := uc.Load(context.Background(), dto.LoadInput{City: "Chicago", Month: "MARCH", Day: "all"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.Total != 3 || out.Dataset.Len() != 2 {
		t.Fatalf("expected 2 of 3 rows, got %d of %d", out.Dataset.Len(), out.Total)
	}
	if out.City != "chicago" || out.Month != "march" || out.Day != "all" {
		t.Fatalf("filter not normalised: %+v", out)
	}

	out, err = uc.Load(context.Background(), dto.LoadInput{City: "chicago", Month: "all", Day: "monday"})
	if err != nil {
		t.Fatalf("load monday: %v", err)
	}
	if out.Dataset.Len() != 2 {
		t.Fatalf("expected two monday rows, got %d", out.Dataset.Len())
	}

	out, err = uc.Load(context.Background(), dto.LoadInput{})
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if out.City != "chicago" || out.Dataset.Len() != 3 {
		t.Fatalf("defaults should load all chicago rows, got %+v", out)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()
	src := &fakeSource{tables: map[domain.City]domain.RawTable{}}
	uc := newUsecase(src, &fakeProjector{})

	_, err := uc.Load(context.Background(), dto.LoadInput{City: "boston"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if src.reads != 0 {
		t.Fatalf("invalid filter must not touch the source")
	}
	if _, err := uc.Load(context.Background(), dto.LoadInput{City: "washington"}); err == nil {
		t.Fatalf("missing dataset should fail")
	}
}

func TestReindexProjectsEveryCity(t *testing.T) {
	t.Parallel()
	src := &fakeSource{tables: map[domain.City]domain.RawTable{
		domain.CityChicago:     chicagoTable(),
		domain.CityNewYorkCity: chicagoTable(),
		domain.CityWashington:  chicagoTable(),
	}}
	projector := &fakeProjector{}
	uc := newUsecase(src, projector)

	out, err := uc.Reindex(context.Background(), dto.ReindexInput{})
	if err != nil {
		t.Fatalf("reindex: %v", err)
	}
	if len(out.Cities) != 3 || len(projector.replaced) != 3 {
		t.Fatalf("expected three projected cities, got %+v", out)
	}
	if out.Cities[1].City != "new york city" || out.Cities[1].Rows != 3 || out.Cities[1].Path != "new york city.csv" {
		t.Fatalf("unexpected city output: %+v", out.Cities[1])
	}

	if _, err := uc.Reindex(context.Background(), dto.ReindexInput{Cities: []string{"paris"}}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown city should be rejected, got %v", err)
	}
}

func TestVocabulary(t *testing.T) {
	t.Parallel()
	uc := newUsecase(&fakeSource{}, &fakeProjector{})
	v := uc.Vocabulary()
	if len(v.Cities) != 3 || len(v.Months) != 12 || len(v.Days) != 7 {
		t.Fatalf("unexpected vocabulary sizes: %+v", v)
	}
	if v.Days[0] != "monday" || v.DefaultCity != "chicago" || v.All != "all" {
		t.Fatalf("unexpected vocabulary: %+v", v)
	}
}
