package service

import (
	"time"

	"github.com/enviark/weather/models"
)

// SeasonFor maps a latitude and a calendar month to a season. The
// month is resolved against the Northern-hemisphere table first; a
// negative latitude substitutes the diametrically opposite season.
func SeasonFor(latitude float64, month time.Month) models.Season {
	var season models.Season
	switch month {
	case time.December, time.January, time.February:
		season = models.Winter
	case time.March, time.April, time.May:
		season = models.Spring
	case time.June, time.July, time.August:
		season = models.Summer
	default:
		season = models.Autumn
	}

	if latitude < 0 {
		return oppositeSeason(season)
	}
	return season
}

func oppositeSeason(s models.Season) models.Season {
	switch s {
	case models.Winter:
		return models.Summer
	case models.Summer:
		return models.Winter
	case models.Spring:
		return models.Autumn
	default:
		return models.Spring
	}
}
