package dto

import "strconv"

const timestampLayout = "2006-01-02 15:04:05"

func (o LoadOutput) Len() int {
	return o.Dataset.Len()
}

func (o LoadOutput) Columns() []string {
	return o.Dataset.Columns()
}

// Rows formats trips in [from, to) as display cells aligned with Columns.
func (o LoadOutput) Rows(from, to int) [][]string {
	page := o.Dataset.Page(from, to)
	rows := make([][]string, 0, len(page))
	for _, trip := range page {
		row := []string{
			trip.StartTime.Format(timestampLayout),
			trip.EndTime.Format(timestampLayout),
			strconv.FormatFloat(trip.Duration.Seconds(), 'f', -1, 64),
			trip.StartStation,
			trip.EndStation,
			trip.UserType,
		}
		if o.Dataset.HasGender {
			row = append(row, trip.Gender)
		}
		if o.Dataset.HasBirthYear {
			year := ""
			if trip.HasBirthYear {
				year = strconv.Itoa(trip.BirthYear)
			}
			row = append(row, year)
		}
		rows = append(rows, row)
	}
	return rows
}
