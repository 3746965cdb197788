package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/enviark/weather/models"
)

func TestSeasonFor(t *testing.T) {
	northern := map[time.Month]models.Season{
		time.January:   models.Winter,
		time.February:  models.Winter,
		time.March:     models.Spring,
		time.April:     models.Spring,
		time.May:       models.Spring,
		time.June:      models.Summer,
		time.July:      models.Summer,
		time.August:    models.Summer,
		time.September: models.Autumn,
		time.October:   models.Autumn,
		time.November:  models.Autumn,
		time.December:  models.Winter,
	}
	southern := map[models.Season]models.Season{
		models.Winter: models.Summer,
		models.Summer: models.Winter,
		models.Spring: models.Autumn,
		models.Autumn: models.Spring,
	}

	for month, expected := range northern {
		t.Run(month.String(), func(t *testing.T) {
			assert.Equal(t, expected, SeasonFor(45.0, month), "northern hemisphere")
			assert.Equal(t, southern[expected], SeasonFor(-45.0, month), "southern hemisphere")
		})
	}
}

func TestSeasonFor_EquatorCountsAsNorthern(t *testing.T) {
	assert.Equal(t, models.Summer, SeasonFor(0, time.July))
	assert.Equal(t, models.Winter, SeasonFor(0, time.January))
}
