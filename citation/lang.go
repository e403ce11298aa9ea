package citation

import (
	"errors"
	"fmt"
	"strings"
)

// Lang selects the language of the retrieval date phrase.
type Lang uint8

const (
	English Lang = iota
	Spanish
)

// ErrUnknownLang is returned by ParseLang for unsupported languages.
var ErrUnknownLang = errors.New("unknown language")

// ParseLang parses a language code or name.
func ParseLang(s string) (Lang, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "en", "english":
		return English, nil
	case "es", "spanish", "espa\u00f1ol", "espanol":
		return Spanish, nil
	default:
		return English, fmt.Errorf("%w: %q", ErrUnknownLang, s)
	}
}

// Code returns the two-letter code of l.
func (l Lang) Code() string {
	if l == Spanish {
		return "es"
	}
	return "en"
}

func (l Lang) String() string {
	if l == Spanish {
		return "Espa\u00f1ol"
	}
	return "English"
}

// Toggle returns the other supported language.
func (l Lang) Toggle() Lang {
	if l == Spanish {
		return English
	}
	return Spanish
}

var monthNames = map[Lang][12]string{
	English: {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	Spanish: {
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	},
}

// MonthName returns the name of month (1-12) in l. Months outside the range
// yield an empty string.
func (l Lang) MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	names, ok := monthNames[l]
	if !ok {
		names = monthNames[English]
	}
	return names[month-1]
}
