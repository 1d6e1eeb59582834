package scrub_test

import (
	"testing"

	"github.com/shashiranjanraj/shallerhub/pkg/scrub"
)

func TestQuotes(t *testing.T) {
	cases := map[string]string{
		`"MyShop"`:     "MyShop",
		`'MyShop'`:     "MyShop",
		`  "MyShop" `:  "MyShop",
		`MyShop`:       "MyShop",
		`"MyShop`:      "MyShop",
		``:             "",
		`""`:           "",
		`"Shop "Two""`: `Shop "Two"`, // only one quote stripped per side
	}
	for in, want := range cases {
		if got := scrub.Quotes(in); got != want {
			t.Errorf("Quotes(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCoordinates(t *testing.T) {
	lng, lat := scrub.Coordinates(`"[12.9,  77.6]"`)
	if lng != 12.9 || lat != 77.6 {
		t.Errorf("got (%v, %v), want (12.9, 77.6)", lng, lat)
	}

	lng, lat = scrub.Coordinates("[0.0,-90.5]")
	if lng != 0 || lat != -90.5 {
		t.Errorf("got (%v, %v), want (0, -90.5)", lng, lat)
	}
}

// Malformed geodata must silently degrade to (0,0) — clients depend on the
// request still succeeding.
func TestCoordinatesDegradeNotFail(t *testing.T) {
	for _, in := range []string{"abc", "", "[1.0]", "[a, b]", "[1,2,3]"} {
		lng, lat := scrub.Coordinates(in)
		if lng != 0 || lat != 0 {
			t.Errorf("Coordinates(%q) = (%v, %v), want (0, 0)", in, lng, lat)
		}
	}
}

func TestNumericDefaults(t *testing.T) {
	if got := scrub.Float(`"4.5"`); got != 4.5 {
		t.Errorf("Float = %v, want 4.5", got)
	}
	if got := scrub.Float("not-a-number"); got != 0 {
		t.Errorf("Float on junk = %v, want 0", got)
	}
	if got := scrub.Int(`'120'`); got != 120 {
		t.Errorf("Int = %v, want 120", got)
	}
	if got := scrub.Int(""); got != 0 {
		t.Errorf("Int on empty = %v, want 0", got)
	}
}
