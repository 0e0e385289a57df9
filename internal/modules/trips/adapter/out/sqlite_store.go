package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"bikeshare/internal/modules/trips/domain"
	"bikeshare/internal/platform/clock"
	apperrors "bikeshare/internal/platform/errors"

	_ "modernc.org/sqlite"
)

const timestampLayout = time.RFC3339Nano

// SQLiteStore keeps a projection of parsed city datasets. It serves as the
// reindex target and, when configured, as the dataset source.
type SQLiteStore struct {
	path  string
	clock clock.Clock

	once    sync.Once
	db      *sql.DB
	openErr error
}

func NewSQLiteStore(dbPath string, clk clock.Clock) *SQLiteStore {
	return &SQLiteStore{path: dbPath, clock: clk}
}

func (s *SQLiteStore) conn(ctx context.Context) (*sql.DB, error) {
	s.once.Do(func() {
		if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
			s.openErr = fmt.Errorf("create db dir: %w", err)
			return
		}
		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			s.openErr = fmt.Errorf("open sqlite: %w", err)
			return
		}
		if err := ensureSchema(ctx, db); err != nil {
			_ = db.Close()
			s.openErr = err
			return
		}
		s.db = db
	})
	return s.db, s.openErr
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	const datasets = `
CREATE TABLE IF NOT EXISTS datasets (
  city TEXT PRIMARY KEY,
  has_gender INTEGER NOT NULL,
  has_birth_year INTEGER NOT NULL,
  row_count INTEGER NOT NULL,
  updated_at TEXT NOT NULL
);
`
	const tripRows = `
CREATE TABLE IF NOT EXISTS trip_rows (
  city TEXT NOT NULL,
  row_num INTEGER NOT NULL,
  start_time TEXT NOT NULL,
  end_time TEXT NOT NULL,
  trip_duration REAL NOT NULL,
  start_station TEXT NOT NULL,
  end_station TEXT NOT NULL,
  user_type TEXT NOT NULL,
  gender TEXT,
  birth_year INTEGER,
  PRIMARY KEY (city, row_num)
);
`
	if _, err := db.ExecContext(ctx, datasets); err != nil {
		return fmt.Errorf("create datasets table: %w", err)
	}
	if _, err := db.ExecContext(ctx, tripRows); err != nil {
		return fmt.Errorf("create trip_rows table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Replace swaps the stored rows of the dataset's city in one transaction.
func (s *SQLiteStore) Replace(ctx context.Context, dataset domain.Dataset) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin projection: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	city := string(dataset.City)
	if _, err := tx.ExecContext(ctx, `DELETE FROM trip_rows WHERE city = ?`, city); err != nil {
		return fmt.Errorf("reset %s rows: %w", city, err)
	}
	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO trip_rows (city, row_num, start_time, end_time, trip_duration, start_station, end_station, user_type, gender, birth_year)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare row insert: %w", err)
	}
	defer stmt.Close()

	for n, trip := range dataset.Trips {
		var gender, birthYear any
		if dataset.HasGender && trip.Gender != "" {
			gender = trip.Gender
		}
		if dataset.HasBirthYear && trip.HasBirthYear {
			birthYear = trip.BirthYear
		}
		_, err := stmt.ExecContext(ctx,
			city,
			n,
			trip.StartTime.Format(timestampLayout),
			trip.EndTime.Format(timestampLayout),
			trip.Duration.Seconds(),
			trip.StartStation,
			trip.EndStation,
			trip.UserType,
			gender,
			birthYear,
		)
		if err != nil {
			return fmt.Errorf("insert %s row %d: %w", city, n, err)
		}
	}

	const upsert = `
INSERT INTO datasets (city, has_gender, has_birth_year, row_count, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(city) DO UPDATE SET
  has_gender=excluded.has_gender,
  has_birth_year=excluded.has_birth_year,
  row_count=excluded.row_count,
  updated_at=excluded.updated_at;
`
	if _, err := tx.ExecContext(ctx, upsert,
		city,
		boolToInt(dataset.HasGender),
		boolToInt(dataset.HasBirthYear),
		dataset.Len(),
		s.clock.Now().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("upsert %s dataset: %w", city, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit projection: %w", err)
	}
	return nil
}

// Read rebuilds the raw table of a projected city with the canonical header.
func (s *SQLiteStore) Read(ctx context.Context, city domain.City) (domain.RawTable, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return domain.RawTable{}, err
	}
	var hasGender, hasBirthYear int
	err = db.QueryRowContext(ctx, `SELECT has_gender, has_birth_year FROM datasets WHERE city = ?`, string(city)).
		Scan(&hasGender, &hasBirthYear)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.RawTable{}, fmt.Errorf("city %q has not been reindexed: %w", string(city), apperrors.ErrNotFound)
	}
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("read %s dataset: %w", city, err)
	}

	table := domain.RawTable{Columns: append([]string(nil), domain.RequiredColumns...)}
	if hasGender == 1 {
		table.Columns = append(table.Columns, domain.ColumnGender)
	}
	if hasBirthYear == 1 {
		table.Columns = append(table.Columns, domain.ColumnBirthYear)
	}

	rows, err := db.QueryContext(ctx, `
SELECT start_time, end_time, trip_duration, start_station, end_station, user_type, gender, birth_year
FROM trip_rows WHERE city = ? ORDER BY row_num`, string(city))
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("query %s rows: %w", city, err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			start, end, startStation, endStation, userType string
			duration                                       float64
			gender                                         sql.NullString
			birthYear                                      sql.NullInt64
		)
		if err := rows.Scan(&start, &end, &duration, &startStation, &endStation, &userType, &gender, &birthYear); err != nil {
			return domain.RawTable{}, fmt.Errorf("scan %s row: %w", city, err)
		}
		record := []string{start, end, strconv.FormatFloat(duration, 'f', -1, 64), startStation, endStation, userType}
		if hasGender == 1 {
			record = append(record, gender.String)
		}
		if hasBirthYear == 1 {
			year := ""
			if birthYear.Valid {
				year = strconv.FormatInt(birthYear.Int64, 10)
			}
			record = append(record, year)
		}
		table.Rows = append(table.Rows, record)
	}
	if err := rows.Err(); err != nil {
		return domain.RawTable{}, fmt.Errorf("iterate %s rows: %w", city, err)
	}
	return table, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
