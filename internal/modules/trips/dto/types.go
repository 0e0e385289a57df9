package dto

import (
	"time"

	"bikeshare/internal/modules/trips/domain"
)

type LoadInput struct {
	City  string
	Month string
	Day   string
}

type LoadOutput struct {
	City     string
	Month    string
	Day      string
	Total    int
	Dataset  domain.Dataset
	Duration time.Duration
}

type Vocabulary struct {
	Cities      []string
	Months      []string
	Days        []string
	All         string
	DefaultCity string
}

type ReindexInput struct {
	Cities []string
}

type ReindexCityOutput struct {
	City string
	Rows int
	Path string
}

type ReindexOutput struct {
	Cities []ReindexCityOutput
}
