package openweather

import (
	"fmt"
	"strings"

	"tokyo-weather/models"

	"golang.org/x/text/language"
)

// Languages the formatter has templates for. Japanese comes first so it is
// the fallback for codes that match neither, keeping the tool's
// Japanese-first output.
var templateLangs = []language.Tag{language.Japanese, language.English}

var templateMatcher = language.NewMatcher(templateLangs)

// labels holds the per-language wording of the formatted report. The
// header receives the city name.
type labels struct {
	header      string
	conditions  string
	temperature string
	feelsLike   string
	tempMin     string
	tempMax     string
	humidity    string
	wind        string
}

var jaLabels = labels{
	header:      "%sの天気情報",
	conditions:  "天気",
	temperature: "気温",
	feelsLike:   "体感温度",
	tempMin:     "最低気温",
	tempMax:     "最高気温",
	humidity:    "湿度",
	wind:        "風速",
}

var enLabels = labels{
	header:      "Current weather in %s",
	conditions:  "Conditions",
	temperature: "Temperature",
	feelsLike:   "Feels like",
	tempMin:     "Min temperature",
	tempMax:     "Max temperature",
	humidity:    "Humidity",
	wind:        "Wind speed",
}

// labelsFor picks the label set for a locale code. Free-form codes such as
// "en-US" match their base language; empty or unmatched codes fall back to
// Japanese.
func labelsFor(lang string) labels {
	_, idx := language.MatchStrings(templateMatcher, lang)
	if idx == 1 {
		return enLabels
	}
	return jaLabels
}

// Format renders a report as a bordered multi-line block in the report's
// language. Every numeric value carries the suffix of the report's unit
// system. The output is deterministic: identical reports format to
// identical strings.
func Format(r models.Report) string {
	l := labelsFor(r.Lang)
	border := strings.Repeat("=", 40)
	tempSuffix := r.Units.TempSuffix()

	var b strings.Builder
	b.WriteString(border + "\n")
	b.WriteString(fmt.Sprintf(l.header, r.City) + "\n")
	b.WriteString(border + "\n")
	fmt.Fprintf(&b, "%s: %s\n", l.conditions, r.Description)
	fmt.Fprintf(&b, "%s: %.1f%s\n", l.temperature, r.Temperature, tempSuffix)
	if r.FeelsLike != nil {
		fmt.Fprintf(&b, "%s: %.1f%s\n", l.feelsLike, *r.FeelsLike, tempSuffix)
	}
	if r.TempMin != nil {
		fmt.Fprintf(&b, "%s: %.1f%s\n", l.tempMin, *r.TempMin, tempSuffix)
	}
	if r.TempMax != nil {
		fmt.Fprintf(&b, "%s: %.1f%s\n", l.tempMax, *r.TempMax, tempSuffix)
	}
	fmt.Fprintf(&b, "%s: %d%%\n", l.humidity, r.Humidity)
	fmt.Fprintf(&b, "%s: %.1f %s\n", l.wind, r.WindSpeed, r.Units.WindSuffix())
	b.WriteString(border)
	return b.String()
}
