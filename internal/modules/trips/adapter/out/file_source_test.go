package out_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	tripsadapter "bikeshare/internal/modules/trips/adapter/out"
	"bikeshare/internal/modules/trips/domain"
)

const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0
9031,2017-01-04 08:27:49,2017-01-04 08:34:45,416,May St & Taylor St,Wood St & Taylor St,Subscriber,,
`

func TestFileSourceReadsCSV(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "chicago.csv")
	require.NoError(t, os.WriteFile(path, []byte(chicagoCSV), 0o644))

	src := tripsadapter.NewFileSource(map[domain.City]string{domain.CityChicago: path})
	assert.Equal(t, path, src.Path(domain.CityChicago))

	raw, err := src.Read(context.Background(), domain.CityChicago)
	require.NoError(t, err)
	assert.Equal(t, "Start Time", raw.Columns[1])
	require.Len(t, raw.Rows, 3)

	ds, err := domain.ParseDataset(domain.CityChicago, raw)
	require.NoError(t, err)
	assert.True(t, ds.HasGender)
	assert.Equal(t, "Theater on the Lake", ds.Trips[1].StartStation)
	assert.False(t, ds.Trips[2].HasBirthYear)
}

func TestFileSourceReadsXLSX(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "washington.xlsx")

	book := excelize.NewFile()
	sheet := book.GetSheetName(0)
	require.NoError(t, book.SetSheetRow(sheet, "A1", &[]interface{}{"Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"}))
	require.NoError(t, book.SetSheetRow(sheet, "A2", &[]interface{}{"2017-03-31 22:51:28", "2017-03-31 23:10:24", "1136.1", "14th & Harvard St NW", "Georgia Ave & Dahlia St NW", "Registered"}))
	require.NoError(t, book.SaveAs(path))
	require.NoError(t, book.Close())

	src := tripsadapter.NewFileSource(map[domain.City]string{domain.CityWashington: path})
	raw, err := src.Read(context.Background(), domain.CityWashington)
	require.NoError(t, err)
	require.Len(t, raw.Rows, 1)

	ds, err := domain.ParseDataset(domain.CityWashington, raw)
	require.NoError(t, err)
	assert.False(t, ds.HasGender)
	assert.False(t, ds.HasBirthYear)
	assert.Equal(t, "Registered", ds.Trips[0].UserType)
}

func TestFileSourceMissingFile(t *testing.T) {
	t.Parallel()
	src := tripsadapter.NewFileSource(map[domain.City]string{domain.CityChicago: filepath.Join(t.TempDir(), "nope.csv")})
	_, err := src.Read(context.Background(), domain.CityChicago)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)

	_, err = src.Read(context.Background(), domain.CityWashington)
	require.Error(t, err)
}
