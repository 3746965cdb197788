package service

import (
	"strings"

	"github.com/enviark/weather/models"
)

// IconForCode maps an upstream condition code (e.g. "01d", "10n") to
// a canonical icon. The code space is open: unrecognized codes fall
// back to the cloud icon, since a missing icon is a cosmetic
// degradation rather than a failure.
func IconForCode(code string) models.Icon {
	switch code {
	case "01d":
		return models.IconClearDay
	case "01n":
		return models.IconClearNight
	}

	switch {
	case strings.HasPrefix(code, "02"), strings.HasPrefix(code, "03"), strings.HasPrefix(code, "04"):
		return models.IconCloud
	case strings.HasPrefix(code, "09"):
		return models.IconDrizzle
	case strings.HasPrefix(code, "10"):
		return models.IconRain
	case strings.HasPrefix(code, "11"):
		return models.IconThunderstorm
	case strings.HasPrefix(code, "13"):
		return models.IconSnow
	case strings.HasPrefix(code, "50"):
		return models.IconMist
	default:
		return models.IconCloud
	}
}
