package models

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const DefaultIconURLTemplate = "https://openweathermap.org/img/wn/%s@2x.png"

type Weather struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// DisplayDescription upper-cases the first letter of the description.
// The stored value is left as received.
func (w Weather) DisplayDescription() string {
	if w.Description == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(w.Description)
	return string(unicode.ToUpper(r)) + w.Description[size:]
}

// DisplayTemperature keeps one decimal place for whole degrees ("21.0 °C").
func (w Weather) DisplayTemperature() string {
	s := strconv.FormatFloat(w.Temperature, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s + " °C"
}

func (w Weather) IconURL(template string) string {
	if w.Icon == "" {
		return ""
	}
	if template == "" {
		template = DefaultIconURLTemplate
	}
	if !strings.Contains(template, "%s") {
		return template + w.Icon
	}
	return fmt.Sprintf(template, w.Icon)
}
