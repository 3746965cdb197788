// Package service holds the view-composition pipeline: units
// defaulting, season selection, icon mapping and the template context
// builder. Everything here is pure and deterministic.
package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/enviark/weather/errors"
	"github.com/enviark/weather/models"
)

// nextDayCount is the number of forecast cards rendered after today.
const nextDayCount = 3

// BuildTemplateContext composes a weather snapshot, a resolved
// location and the request's local time into the view model consumed
// by the renderer.
//
// The snapshot must satisfy the upstream data contract: at least
// nextDayCount+1 daily entries (index 0 is today), at least one
// minutely sample, and a non-empty weather list on every consumed
// entry. Violations surface as a DataContractError, never as an
// index panic.
func BuildTemplateContext(snapshot *models.WeatherSnapshot, location models.Location, local time.Time, units string) (*models.TemplateContext, error) {
	if err := checkSnapshot(snapshot); err != nil {
		return nil, err
	}

	nextDays := make([]models.NextDay, 0, nextDayCount)
	for i := 1; i <= nextDayCount; i++ {
		day := snapshot.Daily[i]
		nextDays = append(nextDays, models.NextDay{
			Day:  time.Unix(day.DT, 0).In(local.Location()).Format("Monday"),
			Temp: formatTemp(day.Temp.Day),
			Icon: IconForCode(day.Weather[0].Icon).String(),
		})
	}

	current := snapshot.Current.Weather[0]

	return &models.TemplateContext{
		Day:         local.Format("Monday"),
		DayShort:    local.Format("Mon"),
		Date:        local.Format("2 January 2006"),
		City:        location.City,
		Temp:        formatTemp(snapshot.Current.Temp),
		Rain:        formatValue(snapshot.Minutely[0].Precipitation),
		Wind:        formatValue(snapshot.Current.WindSpeed),
		Humidity:    formatValue(snapshot.Current.Humidity),
		Description: strings.ReplaceAll(current.Description, `"`, ""),
		Icon:        IconForCode(current.Icon).String(),
		NextDays:    nextDays,
		IsMetric:    units == MetricUnits,
	}, nil
}

func checkSnapshot(snapshot *models.WeatherSnapshot) error {
	if len(snapshot.Daily) < nextDayCount+1 {
		return apperrors.NewDataContractError(
			fmt.Sprintf("daily forecast has %d entries, need at least %d", len(snapshot.Daily), nextDayCount+1))
	}
	if len(snapshot.Minutely) == 0 {
		return apperrors.NewDataContractError("minutely precipitation data is empty")
	}
	if len(snapshot.Current.Weather) == 0 {
		return apperrors.NewDataContractError("current conditions carry no weather entry")
	}
	for i := 1; i <= nextDayCount; i++ {
		if len(snapshot.Daily[i].Weather) == 0 {
			return apperrors.NewDataContractError(
				fmt.Sprintf("daily forecast entry %d carries no weather entry", i))
		}
	}
	return nil
}

// formatTemp rounds a temperature to the nearest whole degree.
func formatTemp(v float64) string {
	return strconv.Itoa(int(math.Round(v)))
}

// formatValue renders a reading in its shortest decimal form.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
