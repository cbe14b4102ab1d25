package room

import (
	"testing"
	"time"
)

func strptr(s string) *string { return &s }

func TestVisibleToCompany(t *testing.T) {
	cases := []struct {
		name      string
		room      Room
		companyID string
		want      bool
	}{
		{"owner always sees", Room{CompanyID: "c1", VisibilityType: VisibilityCompany}, "c1", true},
		{"company-only hides from outsiders", Room{CompanyID: "c1", VisibilityType: VisibilityCompany}, "c2", false},
		{"public open to everyone", Room{CompanyID: "c1", VisibilityType: VisibilityPublic}, "c2", true},
		{"listed company sees", Room{CompanyID: "c1", VisibilityType: VisibilitySpecificCompanies, VisibleCompanies: []string{"c2", "c3"}}, "c2", true},
		{"unlisted company does not", Room{CompanyID: "c1", VisibilityType: VisibilitySpecificCompanies, VisibleCompanies: []string{"c2"}}, "c4", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.room.VisibleToCompany(c.companyID); got != c.want {
				t.Errorf("VisibleToCompany(%q) = %v, want %v", c.companyID, got, c.want)
			}
		})
	}
}

func TestVisibleToAny(t *testing.T) {
	r := Room{CompanyID: "host-co", VisibilityType: VisibilityCompany}

	if !r.VisibleToAny("own-co", "host-co") {
		t.Error("room should be visible when any listed company sees it")
	}
	if r.VisibleToAny("own-co", "other-co") {
		t.Error("room should stay hidden when no listed company sees it")
	}
	if r.VisibleToAny() {
		t.Error("no companies means no visibility")
	}
}

func TestIsBookable(t *testing.T) {
	if !(&Room{Status: StatusAvailable}).IsBookable() {
		t.Error("available room should be bookable")
	}
	if (&Room{Status: StatusMaintenance}).IsBookable() {
		t.Error("room under maintenance should not be bookable")
	}
	if (&Room{Status: StatusOutOfService}).IsBookable() {
		t.Error("out-of-service room should not be bookable")
	}
}

func TestWithinOperatingHours(t *testing.T) {
	slot := func(startHour, endHour int) (time.Time, time.Time) {
		day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		return day.Add(time.Duration(startHour) * time.Hour), day.Add(time.Duration(endHour) * time.Hour)
	}

	unrestricted := Room{}
	start, end := slot(2, 3)
	if !unrestricted.WithinOperatingHours(start, end) {
		t.Error("room without a window accepts any slot")
	}

	office := Room{OperatingHoursStart: strptr("09:00"), OperatingHoursEnd: strptr("18:00")}

	start, end = slot(10, 11)
	if !office.WithinOperatingHours(start, end) {
		t.Error("slot inside the window should pass")
	}

	start, end = slot(9, 18)
	if !office.WithinOperatingHours(start, end) {
		t.Error("slot exactly filling the window should pass")
	}

	start, end = slot(8, 10)
	if office.WithinOperatingHours(start, end) {
		t.Error("slot starting before opening should fail")
	}

	start, end = slot(17, 19)
	if office.WithinOperatingHours(start, end) {
		t.Error("slot ending after closing should fail")
	}

	// 09:00 day one until 09:30 day two keeps the room overnight
	start, _ = slot(9, 10)
	end = start.Add(24*time.Hour + 30*time.Minute)
	if office.WithinOperatingHours(start, end) {
		t.Error("slot spanning midnight should fail")
	}

	start, _ = slot(2, 3)
	end = start.Add(48 * time.Hour)
	if !unrestricted.WithinOperatingHours(start, end) {
		t.Error("room without a window accepts multi-day slots")
	}
}
