package citation

import (
	"errors"
	"testing"
)

func TestParseLang(t *testing.T) {
	cases := []struct {
		in   string
		want Lang
	}{
		{in: "", want: English},
		{in: "en", want: English},
		{in: " English ", want: English},
		{in: "es", want: Spanish},
		{in: "ES", want: Spanish},
		{in: "espa\u00f1ol", want: Spanish},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLang(tc.in)
			if err != nil {
				t.Fatalf("ParseLang(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseLang(%q): got %v, want %v", tc.in, got, tc.want)
			}
		})
	}

	if _, err := ParseLang("fr"); !errors.Is(err, ErrUnknownLang) {
		t.Fatalf("ParseLang(fr): got %v, want ErrUnknownLang", err)
	}
}

func TestLang_MonthName(t *testing.T) {
	cases := []struct {
		lang  Lang
		month int
		want  string
	}{
		{lang: English, month: 1, want: "January"},
		{lang: English, month: 2, want: "February"},
		{lang: English, month: 12, want: "December"},
		{lang: Spanish, month: 1, want: "enero"},
		{lang: Spanish, month: 4, want: "abril"},
		{lang: English, month: 0, want: ""},
		{lang: Spanish, month: 13, want: ""},
	}
	for _, tc := range cases {
		if got := tc.lang.MonthName(tc.month); got != tc.want {
			t.Fatalf("%v.MonthName(%d): got %q, want %q", tc.lang, tc.month, got, tc.want)
		}
	}
}

func TestLang_Toggle(t *testing.T) {
	if got := English.Toggle(); got != Spanish {
		t.Fatalf("English.Toggle: got %v, want %v", got, Spanish)
	}
	if got := Spanish.Toggle(); got != English {
		t.Fatalf("Spanish.Toggle: got %v, want %v", got, English)
	}
	if English.Code() != "en" || Spanish.Code() != "es" {
		t.Fatalf("codes: got %q and %q, want en and es", English.Code(), Spanish.Code())
	}
}
