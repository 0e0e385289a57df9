package out

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"bikeshare/internal/modules/trips/domain"
	tripsout "bikeshare/internal/modules/trips/port/out"
)

// FileSource reads one file per city. Files ending in .xlsx are read from
// their first sheet, everything else as CSV with a header row.
type FileSource struct {
	paths map[domain.City]string
}

func NewFileSource(paths map[domain.City]string) tripsout.LocatedSource {
	copied := make(map[domain.City]string, len(paths))
	for city, path := range paths {
		copied[city] = path
	}
	return &FileSource{paths: copied}
}

func (s *FileSource) Path(city domain.City) string {
	return s.paths[city]
}

func (s *FileSource) Read(ctx context.Context, city domain.City) (domain.RawTable, error) {
	path, ok := s.paths[city]
	if !ok || path == "" {
		return domain.RawTable{}, fmt.Errorf("no data file configured for %q", string(city))
	}
	if err := ctx.Err(); err != nil {
		return domain.RawTable{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readXLSX(path)
	default:
		return readCSV(path)
	}
}

func readCSV(path string) (domain.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return domain.RawTable{}, fmt.Errorf("csv %s is empty", path)
		}
		return domain.RawTable{}, fmt.Errorf("read csv header: %w", err)
	}
	table := domain.RawTable{Columns: trimHeader(header)}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.RawTable{}, fmt.Errorf("read csv: %w", err)
		}
		table.Rows = append(table.Rows, record)
	}
	return table, nil
}

func readXLSX(path string) (domain.RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.RawTable{}, fmt.Errorf("xlsx %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("read xlsx sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return domain.RawTable{}, fmt.Errorf("xlsx %s is empty", path)
	}
	return domain.RawTable{Columns: trimHeader(rows[0]), Rows: rows[1:]}, nil
}

func trimHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	return out
}
