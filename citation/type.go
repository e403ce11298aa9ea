package citation

import (
	"errors"
	"fmt"
	"strings"
)

// Type identifies a citation format.
type Type uint8

const (
	// TypeNone is the unselected sentinel. It has no fields.
	TypeNone Type = iota
	TypeWebsite
	TypeNewspaper
	TypeDictionary
)

// Types returns the selectable citation types in display order.
func Types() []Type {
	return []Type{TypeWebsite, TypeNewspaper, TypeDictionary}
}

func (t Type) String() string {
	switch t {
	case TypeWebsite:
		return "webpage"
	case TypeNewspaper:
		return "newspaper article"
	case TypeDictionary:
		return "dictionary entry"
	default:
		return "none"
	}
}

// Link returns a page describing the format. It is informational only.
func (t Type) Link() string {
	switch t {
	case TypeWebsite:
		return "https://www.scribbr.com/apa-examples/website/"
	case TypeNewspaper:
		return "https://www.scribbr.com/apa-examples/newspaper-article/"
	case TypeDictionary:
		return "https://www.scribbr.com/apa-examples/dictionary-entry/"
	default:
		return ""
	}
}

// ErrUnknownType is returned by ParseType for unsupported citation types.
var ErrUnknownType = errors.New("unknown citation type")

// ParseType parses a short type name such as "website" or "dictionary".
// An empty name yields TypeNone.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return TypeNone, nil
	case "website", "webpage", "web":
		return TypeWebsite, nil
	case "newspaper", "newspaper article", "news":
		return TypeNewspaper, nil
	case "dictionary", "dictionary entry", "dict":
		return TypeDictionary, nil
	default:
		return TypeNone, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}
