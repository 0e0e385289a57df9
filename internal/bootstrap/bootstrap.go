package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	statsinadapter "bikeshare/internal/modules/stats/adapter/in"
	statsservice "bikeshare/internal/modules/stats/service"
	statsusecase "bikeshare/internal/modules/stats/usecase"
	tripsinadapter "bikeshare/internal/modules/trips/adapter/in"
	tripsoutadapter "bikeshare/internal/modules/trips/adapter/out"
	tripsdomain "bikeshare/internal/modules/trips/domain"
	tripsout "bikeshare/internal/modules/trips/port/out"
	tripsservice "bikeshare/internal/modules/trips/service"
	tripsusecase "bikeshare/internal/modules/trips/usecase"
	"bikeshare/internal/platform/clock"
	"bikeshare/internal/platform/config"
	apperrors "bikeshare/internal/platform/errors"
	"bikeshare/internal/platform/id"
	uiapp "bikeshare/internal/ui/app"
	"bikeshare/internal/ui/console"
	browseview "bikeshare/internal/ui/views/browse"
)

type App struct {
	TripsCLI tripsinadapter.CLIHandler
	StatsCLI statsinadapter.CLIHandler
	Logger   *slog.Logger

	store *tripsoutadapter.SQLiteStore
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	clk := clock.SystemClock{}

	for name := range cfg.Cities {
		if err := tripsdomain.City(name).Validate(); err != nil {
			return nil, fmt.Errorf("config cities: %w: %v", apperrors.ErrInvalidInput, err)
		}
	}
	paths := make(map[tripsdomain.City]string, len(tripsdomain.Cities))
	for _, city := range tripsdomain.Cities {
		paths[city] = cfg.CityFile(string(city), city.DefaultFile())
	}
	files := tripsoutadapter.NewFileSource(paths)
	store := tripsoutadapter.NewSQLiteStore(cfg.DBPath, clk)

	var source tripsout.DatasetSource = files
	switch cfg.Source {
	case config.SourceFile:
	case config.SourceSQLite:
		source = store
	default:
		return nil, fmt.Errorf("unsupported source %q", cfg.Source)
	}

	tripsUC := tripsusecase.NewInteractor(tripsservice.NewTripService(clk, source, files, store, logger))
	statsUC := statsusecase.NewInteractor(statsservice.NewStatsService(clk))

	return &App{
		TripsCLI: tripsinadapter.NewCLIHandler(tripsUC),
		StatsCLI: statsinadapter.NewCLIHandler(statsUC),
		Logger:   logger,
		store:    store,
	}, nil
}

// Close releases the SQLite handle if it was ever opened.
func (a *App) Close() error {
	return a.store.Close()
}

func RunSession(ctx context.Context, app *App, in io.Reader, out io.Writer, interrupts <-chan os.Signal) error {
	term := console.New(in, out, interrupts)
	session := uiapp.NewSession(app.TripsCLI, app.StatsCLI, term, out, id.UUID{}, app.Logger)
	return session.Run(ctx)
}

func RunReport(ctx context.Context, app *App, out io.Writer, city, month, day string) error {
	loaded, err := app.TripsCLI.Load(ctx, city, month, day)
	if err != nil {
		return err
	}
	if loaded.Len() == 0 {
		_, _ = fmt.Fprintln(out, "No data found with your search criteria")
		return nil
	}
	return uiapp.NewReporter(app.StatsCLI, out).Write(ctx, loaded)
}

func RunBrowse(ctx context.Context, app *App, city, month, day string) error {
	loaded, err := app.TripsCLI.Load(ctx, city, month, day)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%s  month=%s  day=%s", loaded.City, loaded.Month, loaded.Day)
	model := browseview.New(title, loaded, uiapp.PageSize)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	return err
}
