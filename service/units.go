package service

// MetricUnits is the default units token and the only one with
// special display meaning.
const MetricUnits = "metric"

// ResolveUnits derives the effective units token from the raw query
// parameter value. An absent or empty parameter defaults to metric.
// Any other value is accepted as-is and forwarded verbatim to the
// upstream query; no validation is performed.
func ResolveUnits(raw string) string {
	if raw == "" {
		return MetricUnits
	}
	return raw
}
