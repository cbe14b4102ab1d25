package booking

import (
	"testing"
	"time"
)

func at(hour int) time.Time {
	return time.Date(2024, 6, 1, hour, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                         string
		aStart, aEnd, bStart, bEnd   time.Time
		want                         bool
	}{
		{"identical", at(9), at(10), at(9), at(10), true},
		{"partial overlap", at(9), at(11), at(10), at(12), true},
		{"contained", at(9), at(12), at(10), at(11), true},
		{"touching end to start", at(9), at(10), at(10), at(11), false},
		{"touching start to end", at(10), at(11), at(9), at(10), false},
		{"disjoint", at(9), at(10), at(14), at(15), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Overlaps(c.aStart, c.aEnd, c.bStart, c.bEnd); got != c.want {
				t.Errorf("Overlaps() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestConflictsWith(t *testing.T) {
	a := Booking{RoomID: "r1", StartTime: at(9), EndTime: at(11)}
	b := Booking{RoomID: "r1", StartTime: at(10), EndTime: at(12)}
	c := Booking{RoomID: "r2", StartTime: at(10), EndTime: at(12)}

	if !a.ConflictsWith(&b) {
		t.Error("same room overlapping times should conflict")
	}
	if a.ConflictsWith(&c) {
		t.Error("different rooms never conflict")
	}
}

func TestParseVisibility(t *testing.T) {
	for _, s := range []string{"all_companies", "owner_company", "private"} {
		if _, ok := ParseVisibility(s); !ok {
			t.Errorf("ParseVisibility(%q) rejected a valid value", s)
		}
	}
	if _, ok := ParseVisibility("public"); ok {
		t.Error("ParseVisibility should reject unknown values")
	}
}

func TestIsPublic(t *testing.T) {
	if !(&Booking{Visibility: VisibilityAllCompanies}).IsPublic() {
		t.Error("all_companies should read as public")
	}
	if !(&Booking{Visibility: VisibilityOwnerCompany}).IsPublic() {
		t.Error("owner_company should read as public")
	}
	if (&Booking{Visibility: VisibilityPrivate}).IsPublic() {
		t.Error("private should not read as public")
	}
}
