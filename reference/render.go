package reference

import (
	"strings"

	"github.com/iw2rmb/apacite/citation"
)

// Renderer turns a citation instance into its reference string.
type Renderer interface {
	Render(in *citation.Instance) string
}

// Substitution fills the schema template by replacing every field key with
// the field value, or with the field placeholder when the value is empty.
type Substitution struct {
	// Dates supplies the retrieval date. Nil means SystemClock.
	Dates DateProvider
}

var _ Renderer = Substitution{}

func (r Substitution) Render(in *citation.Instance) string {
	if in == nil || in.Type() == citation.TypeNone {
		return ""
	}
	s := in.Schema()
	out := s.Template

	if s.Retrieved {
		dates := r.Dates
		if dates == nil {
			dates = SystemClock{}
		}
		phrase := RetrievedPhrase(in.Lang(), dates.Today())
		out = strings.Replace(out, citation.URLKey, phrase+" "+citation.URLKey, 1)
	}

	for i, f := range s.Fields {
		v := in.Value(i)
		if v == "" {
			v = f.Placeholder
		}
		out = strings.ReplaceAll(out, f.Key, v)
	}
	return out
}
