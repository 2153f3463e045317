package domain

import (
	"errors"
	"testing"
)

func TestParseRosterName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: "Doe, Jane", want: "Jane Doe"},
		{name: "no space after comma", raw: "Doe,Jane", want: "Jane Doe"},
		{name: "surrounding whitespace", raw: "  Doe ,  Jane  ", want: "Jane Doe"},
		{name: "internal runs collapsed", raw: "van  Berg,  Anna   Maria", want: "Anna Maria van Berg"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseRosterName(tc.raw)
			if err != nil {
				t.Fatalf("ParseRosterName(%q) err=%v", tc.raw, err)
			}
			if got != tc.want {
				t.Fatalf("ParseRosterName(%q)=%q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseRosterName_Malformed(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"Jane Doe", "Doe, Jane, Jr", "", ", Jane", "Doe, "} {
		_, err := ParseRosterName(raw)
		if err == nil {
			t.Fatalf("ParseRosterName(%q): expected error", raw)
		}
		me := (*MalformedNameError)(nil)
		if !errors.As(err, &me) || me.Raw != raw {
			t.Fatalf("ParseRosterName(%q) err=%v, want MalformedNameError carrying the input", raw, err)
		}
	}
}

func TestNormalizeRoster(t *testing.T) {
	t.Parallel()

	got, err := NormalizeRoster([]string{"Doe, Jane", "Smith, Bob"}, 2)
	if err != nil {
		t.Fatalf("NormalizeRoster err=%v", err)
	}
	if len(got) != 2 || got[0] != "Jane Doe" || got[1] != "Bob Smith" {
		t.Fatalf("got=%v, want [Jane Doe, Bob Smith]", got)
	}
}

func TestNormalizeRoster_CountMismatch(t *testing.T) {
	t.Parallel()

	_, err := NormalizeRoster([]string{"Doe, Jane"}, 3)
	if err == nil {
		t.Fatalf("expected error")
	}
	ce := (*CountMismatchError)(nil)
	if !errors.As(err, &ce) || ce.Expected != 3 || ce.Actual != 1 {
		t.Fatalf("err=%v, want CountMismatchError{Expected:3, Actual:1}", err)
	}
}

func TestNormalizeRoster_SingleEntry(t *testing.T) {
	t.Parallel()

	got, err := NormalizeRoster([]string{"Doe, Jane"}, 1)
	if err != nil {
		t.Fatalf("NormalizeRoster err=%v", err)
	}
	if len(got) != 1 || got[0] != "Jane Doe" {
		t.Fatalf("got=%v, want [Jane Doe]", got)
	}
}
